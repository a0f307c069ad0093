package postgres

import (
	"context"
	"fmt"

	"github.com/fifahub/liga-tracker/internal/domain/ban"
	qb "github.com/fifahub/liga-tracker/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type BanRepository struct {
	db *sqlx.DB
}

func NewBanRepository(db *sqlx.DB) *BanRepository {
	return &BanRepository{db: db}
}

func (r *BanRepository) List(ctx context.Context) ([]ban.Ban, error) {
	query, args, err := qb.Select("*").
		From("bans").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list bans query: %w", err)
	}

	var rows []banTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list bans: %w", err)
	}
	return bansFromRows(rows), nil
}

func (r *BanRepository) ListActive(ctx context.Context) ([]ban.Ban, error) {
	query, args, err := qb.Select("*").
		From("bans").
		Where(qb.Expr("matches_served < total_matches")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active bans query: %w", err)
	}

	var rows []banTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active bans: %w", err)
	}
	return bansFromRows(rows), nil
}

func (r *BanRepository) GetByID(ctx context.Context, id int64) (ban.Ban, bool, error) {
	query, args, err := qb.Select("*").
		From("bans").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return ban.Ban{}, false, fmt.Errorf("build get ban query: %w", err)
	}

	var row banTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return ban.Ban{}, false, nil
		}
		return ban.Ban{}, false, fmt.Errorf("get ban: %w", err)
	}
	return banFromRow(row), true, nil
}

func (r *BanRepository) Insert(ctx context.Context, b ban.Ban) (ban.Ban, error) {
	query, args, err := qb.InsertModel("bans", banInsertModel{
		PlayerID:      b.PlayerID,
		Team:          b.Team,
		Type:          b.Type,
		TotalMatches:  b.TotalMatches,
		MatchesServed: b.MatchesServed,
		Reason:        b.Reason,
	}, "RETURNING id")
	if err != nil {
		return ban.Ban{}, fmt.Errorf("build insert ban query: %w", err)
	}

	var banID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&banID); err != nil {
		return ban.Ban{}, fmt.Errorf("insert ban: %w", err)
	}

	b.ID = banID
	return b, nil
}

func (r *BanRepository) Update(ctx context.Context, b ban.Ban) error {
	query, args, err := qb.Update("bans").
		Set("player_id", b.PlayerID).
		Set("team", b.Team).
		Set("ban_type", b.Type).
		Set("total_matches", b.TotalMatches).
		Set("matches_served", b.MatchesServed).
		Set("reason", b.Reason).
		Where(qb.Eq("id", b.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update ban query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update ban: %w", err)
	}
	return nil
}

func (r *BanRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("bans").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete ban query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete ban: %w", err)
	}
	return nil
}

func bansFromRows(rows []banTableModel) []ban.Ban {
	out := make([]ban.Ban, 0, len(rows))
	for _, row := range rows {
		out = append(out, banFromRow(row))
	}
	return out
}

func banFromRow(row banTableModel) ban.Ban {
	return ban.Ban{
		ID:            row.ID,
		PlayerID:      row.PlayerID,
		Team:          row.Team,
		Type:          row.Type,
		TotalMatches:  row.TotalMatches,
		MatchesServed: row.MatchesServed,
		Reason:        row.Reason,
	}
}

package postgres

import (
	"context"
	"fmt"

	"github.com/fifahub/liga-tracker/internal/domain/motm"
	qb "github.com/fifahub/liga-tracker/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type MotmRepository struct {
	db *sqlx.DB
}

func NewMotmRepository(db *sqlx.DB) *MotmRepository {
	return &MotmRepository{db: db}
}

func (r *MotmRepository) List(ctx context.Context) ([]motm.Count, error) {
	query, args, err := qb.Select("*").
		From("award_counts").
		OrderBy("player", "team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list award counts query: %w", err)
	}

	var rows []awardCountTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list award counts: %w", err)
	}

	out := make([]motm.Count, 0, len(rows))
	for _, row := range rows {
		out = append(out, motm.Count{Player: row.Player, Team: row.Team, Count: row.Count})
	}
	return out, nil
}

func (r *MotmRepository) GetByPlayerTeam(ctx context.Context, player, team string) (motm.Count, bool, error) {
	query, args, err := qb.Select("*").
		From("award_counts").
		Where(qb.Eq("player", player), qb.Eq("team", team)).
		ToSQL()
	if err != nil {
		return motm.Count{}, false, fmt.Errorf("build get award count query: %w", err)
	}

	var row awardCountTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return motm.Count{}, false, nil
		}
		return motm.Count{}, false, fmt.Errorf("get award count: %w", err)
	}
	return motm.Count{Player: row.Player, Team: row.Team, Count: row.Count}, true, nil
}

func (r *MotmRepository) Upsert(ctx context.Context, c motm.Count) error {
	query, args, err := qb.InsertModel("award_counts", awardCountTableModel{
		Player: c.Player,
		Team:   c.Team,
		Count:  c.Count,
	}, `ON CONFLICT (player, team)
DO UPDATE SET
    award_count = EXCLUDED.award_count`)
	if err != nil {
		return fmt.Errorf("build upsert award count query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert award count: %w", err)
	}
	return nil
}

func (r *MotmRepository) Delete(ctx context.Context, player, team string) error {
	query, args, err := qb.DeleteFrom("award_counts").
		Where(qb.Eq("player", player), qb.Eq("team", team)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete award count query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete award count: %w", err)
	}
	return nil
}

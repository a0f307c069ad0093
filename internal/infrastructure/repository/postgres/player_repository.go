package postgres

import (
	"context"
	"fmt"

	"github.com/fifahub/liga-tracker/internal/domain/player"
	qb "github.com/fifahub/liga-tracker/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").
		From("players").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return playersFromRows(rows), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, team string) ([]player.Player, error) {
	query, args, err := qb.Select("*").
		From("players").
		Where(qb.Eq("team", team)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return playersFromRows(rows), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id), "get player by id")
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("name", name), "get player by name")
}

func (r *PlayerRepository) getOne(ctx context.Context, cond qb.Condition, op string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").
		From("players").
		Where(cond).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerInsertModel{
		Name:     p.Name,
		Team:     p.Team,
		Position: p.Position,
		Value:    p.Value,
		Goals:    p.Goals,
	}, "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var playerID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&playerID); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	p.ID = playerID
	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("team", p.Team).
		Set("position", p.Position).
		Set("value", p.Value).
		Set("goals", p.Goals).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.ID,
		Name:     row.Name,
		Team:     row.Team,
		Position: row.Position,
		Value:    row.Value,
		Goals:    row.Goals,
	}
}

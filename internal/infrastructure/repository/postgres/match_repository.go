package postgres

import (
	"context"
	"fmt"

	"github.com/fifahub/liga-tracker/internal/domain/match"
	qb "github.com/fifahub/liga-tracker/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

// MatchRepository persists matches with their scorer rows in a child table.
// Every write that touches both tables runs inside one transaction.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").
		From("matches").
		OrderBy("played_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if len(rows) == 0 {
		return []match.Match{}, nil
	}

	scorerQuery, scorerArgs, err := qb.Select("*").
		From("match_scorers").
		OrderBy("match_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match scorers query: %w", err)
	}

	var scorerRows []matchScorerTableModel
	if err := r.db.SelectContext(ctx, &scorerRows, scorerQuery, scorerArgs...); err != nil {
		return nil, fmt.Errorf("list match scorers: %w", err)
	}

	scorersByMatch := make(map[int64][]matchScorerTableModel, len(rows))
	for _, row := range scorerRows {
		scorersByMatch[row.MatchID] = append(scorersByMatch[row.MatchID], row)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRows(row, scorersByMatch[row.ID]))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").
		From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	scorerQuery, scorerArgs, err := qb.Select("*").
		From("match_scorers").
		Where(qb.Eq("match_id", id)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match scorers query: %w", err)
	}

	var scorerRows []matchScorerTableModel
	if err := r.db.SelectContext(ctx, &scorerRows, scorerQuery, scorerArgs...); err != nil {
		return match.Match{}, false, fmt.Errorf("get match scorers: %w", err)
	}

	return matchFromRows(row, scorerRows), true, nil
}

func (r *MatchRepository) Insert(ctx context.Context, m match.Match) (match.Match, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, fmt.Errorf("begin tx insert match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("matches", matchInsertFromDomain(m), "RETURNING id")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var matchID int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&matchID); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	if err := insertScorers(ctx, tx, matchID, m); err != nil {
		return match.Match{}, err
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, fmt.Errorf("commit insert match: %w", err)
	}

	m.ID = matchID
	return m, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update("matches").
		Set("played_at", m.Date).
		Set("team_a", m.TeamA).
		Set("team_b", m.TeamB).
		Set("score_a", m.ScoreA).
		Set("score_b", m.ScoreB).
		Set("yellow_a", m.YellowA).
		Set("red_a", m.RedA).
		Set("yellow_b", m.YellowB).
		Set("red_b", m.RedB).
		Set("man_of_the_match", m.ManOfTheMatch).
		Set("prize_a", m.PrizeA).
		Set("prize_b", m.PrizeB).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match: %w", err)
	}

	clearQuery, clearArgs, err := qb.DeleteFrom("match_scorers").
		Where(qb.Eq("match_id", m.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear match scorers query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear match scorers: %w", err)
	}

	if err := insertScorers(ctx, tx, m.ID, m); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	scorerQuery, scorerArgs, err := qb.DeleteFrom("match_scorers").
		Where(qb.Eq("match_id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match scorers query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, scorerQuery, scorerArgs...); err != nil {
		return fmt.Errorf("delete match scorers: %w", err)
	}

	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete match: %w", err)
	}
	return nil
}

func insertScorers(ctx context.Context, tx *sqlx.Tx, matchID int64, m match.Match) error {
	insert := func(side string, scorers []match.Scorer) error {
		for _, s := range scorers {
			if s.Player == "" {
				continue
			}
			query, args, err := qb.InsertModel("match_scorers", matchScorerInsertModel{
				MatchID: matchID,
				Side:    side,
				Player:  s.Player,
				Goals:   s.Goals,
			}, "")
			if err != nil {
				return fmt.Errorf("build insert match scorer query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert match scorer: %w", err)
			}
		}
		return nil
	}

	if err := insert(scorerSideA, m.ScorersA); err != nil {
		return err
	}
	return insert(scorerSideB, m.ScorersB)
}

func matchInsertFromDomain(m match.Match) matchInsertModel {
	return matchInsertModel{
		PlayedAt:      m.Date,
		TeamA:         m.TeamA,
		TeamB:         m.TeamB,
		ScoreA:        m.ScoreA,
		ScoreB:        m.ScoreB,
		YellowA:       m.YellowA,
		RedA:          m.RedA,
		YellowB:       m.YellowB,
		RedB:          m.RedB,
		ManOfTheMatch: m.ManOfTheMatch,
		PrizeA:        m.PrizeA,
		PrizeB:        m.PrizeB,
	}
}

func matchFromRows(row matchTableModel, scorerRows []matchScorerTableModel) match.Match {
	m := match.Match{
		ID:            row.ID,
		Date:          row.PlayedAt,
		TeamA:         row.TeamA,
		TeamB:         row.TeamB,
		ScoreA:        row.ScoreA,
		ScoreB:        row.ScoreB,
		YellowA:       row.YellowA,
		RedA:          row.RedA,
		YellowB:       row.YellowB,
		RedB:          row.RedB,
		ManOfTheMatch: row.ManOfTheMatch,
		PrizeA:        row.PrizeA,
		PrizeB:        row.PrizeB,
	}
	for _, s := range scorerRows {
		scorer := match.Scorer{Player: s.Player, Goals: s.Goals}
		if s.Side == scorerSideA {
			m.ScorersA = append(m.ScorersA, scorer)
		} else {
			m.ScorersB = append(m.ScorersB, scorer)
		}
	}
	return m
}

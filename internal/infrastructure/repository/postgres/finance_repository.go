package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fifahub/liga-tracker/internal/domain/finance"
	qb "github.com/fifahub/liga-tracker/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

// FinanceRepository keeps the per-team ledger heads and the transaction log.
// Ledger heads are upserted by team name so a fresh database works without a
// seeding step.
type FinanceRepository struct {
	db *sqlx.DB
}

func NewFinanceRepository(db *sqlx.DB) *FinanceRepository {
	return &FinanceRepository{db: db}
}

func (r *FinanceRepository) GetByTeam(ctx context.Context, team string) (finance.TeamFinance, bool, error) {
	query, args, err := qb.Select("*").
		From("team_finances").
		Where(qb.Eq("team", team)).
		ToSQL()
	if err != nil {
		return finance.TeamFinance{}, false, fmt.Errorf("build get team finance query: %w", err)
	}

	var row teamFinanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return finance.TeamFinance{}, false, nil
		}
		return finance.TeamFinance{}, false, fmt.Errorf("get team finance: %w", err)
	}
	return finance.TeamFinance{Team: row.Team, Balance: row.Balance, Debt: row.Debt}, true, nil
}

func (r *FinanceRepository) ListFinances(ctx context.Context) ([]finance.TeamFinance, error) {
	query, args, err := qb.Select("*").
		From("team_finances").
		OrderBy("team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team finances query: %w", err)
	}

	var rows []teamFinanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team finances: %w", err)
	}

	out := make([]finance.TeamFinance, 0, len(rows))
	for _, row := range rows {
		out = append(out, finance.TeamFinance{Team: row.Team, Balance: row.Balance, Debt: row.Debt})
	}
	return out, nil
}

func (r *FinanceRepository) UpdateFinance(ctx context.Context, f finance.TeamFinance) error {
	query, args, err := qb.InsertModel("team_finances", teamFinanceTableModel{
		Team:    f.Team,
		Balance: f.Balance,
		Debt:    f.Debt,
	}, `ON CONFLICT (team)
DO UPDATE SET
    balance = EXCLUDED.balance,
    debt = EXCLUDED.debt`)
	if err != nil {
		return fmt.Errorf("build upsert team finance query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team finance: %w", err)
	}
	return nil
}

func (r *FinanceRepository) ListTransactions(ctx context.Context) ([]finance.Transaction, error) {
	query, args, err := qb.Select("*").
		From("transactions").
		OrderBy("recorded_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list transactions query: %w", err)
	}

	var rows []transactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactionsFromRows(rows), nil
}

func (r *FinanceRepository) ListTransactionsByMatch(ctx context.Context, matchID int64) ([]finance.Transaction, error) {
	query, args, err := qb.Select("*").
		From("transactions").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list transactions by match query: %w", err)
	}

	var rows []transactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list transactions by match: %w", err)
	}
	return transactionsFromRows(rows), nil
}

func (r *FinanceRepository) InsertTransaction(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	query, args, err := qb.InsertModel("transactions", transactionInsertModel{
		Team:       t.Team,
		Type:       t.Type,
		Amount:     t.Amount,
		RecordedAt: t.Date,
		MatchID:    nullableMatchID(t.MatchID),
		Info:       t.Info,
	}, "RETURNING id")
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("build insert transaction query: %w", err)
	}

	var txID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&txID); err != nil {
		return finance.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	t.ID = txID
	return t, nil
}

func (r *FinanceRepository) DeleteTransactionsByMatch(ctx context.Context, matchID int64, types []string) error {
	typeValues := make([]any, 0, len(types))
	for _, t := range types {
		typeValues = append(typeValues, t)
	}

	query, args, err := qb.DeleteFrom("transactions").
		Where(
			qb.Eq("match_id", matchID),
			qb.In("tx_type", typeValues),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete transactions by match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete transactions by match: %w", err)
	}
	return nil
}

func transactionsFromRows(rows []transactionTableModel) []finance.Transaction {
	out := make([]finance.Transaction, 0, len(rows))
	for _, row := range rows {
		t := finance.Transaction{
			ID:     row.ID,
			Team:   row.Team,
			Type:   row.Type,
			Amount: row.Amount,
			Date:   row.RecordedAt,
			Info:   row.Info,
		}
		if row.MatchID.Valid {
			matchID := row.MatchID.Int64
			t.MatchID = &matchID
		}
		out = append(out, t)
	}
	return out
}

func nullableMatchID(matchID *int64) sql.NullInt64 {
	if matchID == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *matchID, Valid: true}
}

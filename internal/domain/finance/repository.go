package finance

import "context"

type Repository interface {
	GetByTeam(ctx context.Context, team string) (TeamFinance, bool, error)
	ListFinances(ctx context.Context) ([]TeamFinance, error)
	UpdateFinance(ctx context.Context, f TeamFinance) error

	ListTransactions(ctx context.Context) ([]Transaction, error)
	ListTransactionsByMatch(ctx context.Context, matchID int64) ([]Transaction, error)
	InsertTransaction(ctx context.Context, t Transaction) (Transaction, error)
	DeleteTransactionsByMatch(ctx context.Context, matchID int64, types []string) error
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/domain/match"
)

type FinanceRepository struct {
	mu       sync.RWMutex
	finances map[string]finance.TeamFinance
	nextTxID int64
	txRows   map[int64]finance.Transaction
}

// NewFinanceRepository seeds zeroed ledger heads for both fixed teams.
func NewFinanceRepository() *FinanceRepository {
	return &FinanceRepository{
		finances: map[string]finance.TeamFinance{
			match.TeamAEK:  {Team: match.TeamAEK},
			match.TeamReal: {Team: match.TeamReal},
		},
		nextTxID: 1,
		txRows:   make(map[int64]finance.Transaction),
	}
}

func (r *FinanceRepository) GetByTeam(_ context.Context, team string) (finance.TeamFinance, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.finances[team]
	if !ok {
		return finance.TeamFinance{}, false, nil
	}

	return f, true, nil
}

func (r *FinanceRepository) ListFinances(_ context.Context) ([]finance.TeamFinance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]finance.TeamFinance, 0, len(r.finances))
	for _, f := range r.finances {
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Team < out[j].Team
	})

	return out, nil
}

func (r *FinanceRepository) UpdateFinance(_ context.Context, f finance.TeamFinance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.finances[f.Team]; !ok {
		return nil
	}
	r.finances[f.Team] = f

	return nil
}

func (r *FinanceRepository) ListTransactions(_ context.Context) ([]finance.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]finance.Transaction, 0, len(r.txRows))
	for _, tx := range r.txRows {
		out = append(out, tx)
	}
	sortTransactions(out)

	return out, nil
}

func (r *FinanceRepository) ListTransactionsByMatch(_ context.Context, matchID int64) ([]finance.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]finance.Transaction, 0)
	for _, tx := range r.txRows {
		if tx.MatchID != nil && *tx.MatchID == matchID {
			out = append(out, tx)
		}
	}
	sortTransactions(out)

	return out, nil
}

func (r *FinanceRepository) InsertTransaction(_ context.Context, t finance.Transaction) (finance.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextTxID
	r.nextTxID++
	r.txRows[t.ID] = t

	return t, nil
}

func (r *FinanceRepository) DeleteTransactionsByMatch(_ context.Context, matchID int64, types []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	typeSet := make(map[string]struct{}, len(types))
	for _, t := range types {
		typeSet[t] = struct{}{}
	}

	for id, tx := range r.txRows {
		if tx.MatchID == nil || *tx.MatchID != matchID {
			continue
		}
		if len(typeSet) > 0 {
			if _, ok := typeSet[tx.Type]; !ok {
				continue
			}
		}
		delete(r.txRows, id)
	}

	return nil
}

func sortTransactions(transactions []finance.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].ID < transactions[j].ID
	})
}

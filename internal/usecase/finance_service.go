package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fifahub/liga-tracker/internal/domain/finance"
)

// FinanceService serves the ledger views and manual corrections. Settlement
// transactions carry a match reference and are owned by the settlement
// engine; manual entries never do.
type FinanceService struct {
	financeRepo finance.Repository
	now         func() time.Time
}

func NewFinanceService(financeRepo finance.Repository) *FinanceService {
	return &FinanceService{
		financeRepo: financeRepo,
		now:         time.Now,
	}
}

func (s *FinanceService) ListFinances(ctx context.Context) ([]finance.TeamFinance, error) {
	ctx, span := serviceSpan(ctx, "usecase.FinanceService.ListFinances")
	defer span.End()

	finances, err := s.financeRepo.ListFinances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finances: %w", err)
	}
	return finances, nil
}

func (s *FinanceService) GetFinance(ctx context.Context, team string) (finance.TeamFinance, error) {
	ctx, span := serviceSpan(ctx, "usecase.FinanceService.GetFinance")
	defer span.End()

	f, exists, err := s.financeRepo.GetByTeam(ctx, team)
	if err != nil {
		return finance.TeamFinance{}, fmt.Errorf("get finance: %w", err)
	}
	if !exists {
		return finance.TeamFinance{}, fmt.Errorf("%w: finance record for %q", ErrNotFound, team)
	}
	return f, nil
}

func (s *FinanceService) ListTransactions(ctx context.Context) ([]finance.Transaction, error) {
	ctx, span := serviceSpan(ctx, "usecase.FinanceService.ListTransactions")
	defer span.End()

	transactions, err := s.financeRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

// AddTransaction books a manual ledger entry and applies it to the team
// balance, floored at zero.
func (s *FinanceService) AddTransaction(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	ctx, span := serviceSpan(ctx, "usecase.FinanceService.AddTransaction")
	defer span.End()

	if err := t.Validate(); err != nil {
		return finance.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if t.MatchID != nil {
		return finance.Transaction{}, fmt.Errorf("%w: manual transactions cannot reference a match", ErrInvalidInput)
	}
	if t.Date.IsZero() {
		t.Date = s.now()
	}

	f, exists, err := s.financeRepo.GetByTeam(ctx, t.Team)
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("get finance: %w", err)
	}
	if !exists {
		return finance.Transaction{}, fmt.Errorf("%w: finance record for %q", ErrNotFound, t.Team)
	}

	saved, err := s.financeRepo.InsertTransaction(ctx, t)
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	f.Balance += saved.Amount
	if f.Balance < 0 {
		f.Balance = 0
	}
	if err := s.financeRepo.UpdateFinance(ctx, f); err != nil {
		return saved, fmt.Errorf("update balance: %w", err)
	}
	return saved, nil
}

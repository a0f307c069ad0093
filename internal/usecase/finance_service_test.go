package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/infrastructure/repository/memory"
)

func TestFinanceService_AddTransaction_AppliesFlooredBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	financeRepo := memory.NewFinanceRepository()
	service := NewFinanceService(financeRepo)

	if _, err := service.AddTransaction(ctx, finance.Transaction{
		Team: match.TeamAEK, Type: finance.TypeOther, Amount: 250_000, Info: "Startkapital",
	}); err != nil {
		t.Fatalf("add credit: %v", err)
	}

	if _, err := service.AddTransaction(ctx, finance.Transaction{
		Team: match.TeamAEK, Type: finance.TypePenalty, Amount: -400_000, Info: "Strafe",
	}); err != nil {
		t.Fatalf("add debit: %v", err)
	}

	f, err := service.GetFinance(ctx, match.TeamAEK)
	if err != nil {
		t.Fatalf("get finance: %v", err)
	}
	if f.Balance != 0 {
		t.Fatalf("balance must floor at zero, got %d", f.Balance)
	}

	transactions, err := service.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(transactions))
	}
}

func TestFinanceService_AddTransaction_RejectsMatchReference(t *testing.T) {
	t.Parallel()

	service := NewFinanceService(memory.NewFinanceRepository())
	matchID := int64(3)

	_, err := service.AddTransaction(context.Background(), finance.Transaction{
		Team: match.TeamReal, Type: finance.TypeOther, Amount: 1, MatchID: &matchID,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFinanceService_GetFinance_UnknownTeam(t *testing.T) {
	t.Parallel()

	service := NewFinanceService(memory.NewFinanceRepository())
	if _, err := service.GetFinance(context.Background(), "Barca"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/player"
	"github.com/fifahub/liga-tracker/internal/infrastructure/repository/memory"
)

func TestPlayerService_BuyPlayer_ChargesBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	financeRepo := memory.NewFinanceRepository()
	if err := financeRepo.UpdateFinance(ctx, finance.TeamFinance{Team: match.TeamAEK, Balance: 800_000}); err != nil {
		t.Fatalf("seed finance: %v", err)
	}
	service := NewPlayerService(memory.NewPlayerRepository(nil), financeRepo)

	bought, err := service.BuyPlayer(ctx, player.Player{
		Name: "Giakoumakis", Team: match.TeamAEK, Position: "ST", Value: 300_000,
	})
	if err != nil {
		t.Fatalf("buy player: %v", err)
	}
	if bought.ID == 0 {
		t.Fatal("expected assigned id")
	}

	f, _, err := financeRepo.GetByTeam(ctx, match.TeamAEK)
	if err != nil {
		t.Fatalf("get finance: %v", err)
	}
	if f.Balance != 500_000 {
		t.Fatalf("unexpected balance after purchase: %d", f.Balance)
	}

	transactions, err := financeRepo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(transactions) != 1 || transactions[0].Type != finance.TypePlayerPurchase || transactions[0].Amount != -300_000 {
		t.Fatalf("unexpected purchase transaction: %+v", transactions)
	}
}

func TestPlayerService_BuyPlayer_RejectsDuplicateName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), memory.NewFinanceRepository())

	_, err := service.BuyPlayer(ctx, player.Player{Name: "Pavlidis", Team: match.TeamAEK, Value: 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_SellPlayer_MovesToFormerAndCreditsBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	financeRepo := memory.NewFinanceRepository()
	service := NewPlayerService(playerRepo, financeRepo)

	p, exists, err := playerRepo.GetByName(ctx, "Jovic")
	if err != nil || !exists {
		t.Fatalf("seed player missing: exists=%v err=%v", exists, err)
	}

	sold, err := service.SellPlayer(ctx, p.ID)
	if err != nil {
		t.Fatalf("sell player: %v", err)
	}
	if sold.Team != TeamFormer {
		t.Fatalf("player must move to former roster, got %s", sold.Team)
	}

	f, _, err := financeRepo.GetByTeam(ctx, match.TeamAEK)
	if err != nil {
		t.Fatalf("get finance: %v", err)
	}
	if f.Balance != p.Value {
		t.Fatalf("sale must credit the selling team: %d", f.Balance)
	}

	if _, err := service.SellPlayer(ctx, p.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("selling twice must fail, got %v", err)
	}
}

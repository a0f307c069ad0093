package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/infrastructure/repository/memory"
	"github.com/fifahub/liga-tracker/internal/platform/logging"
)

func TestStatsService_GetOverview(t *testing.T) {
	t.Parallel()

	f := newSettlementFixture(t)
	ctx := context.Background()

	if _, err := f.service.SettleMatch(ctx, testMatch()); err != nil {
		t.Fatalf("settle match: %v", err)
	}

	draw := testMatch()
	draw.Date = draw.Date.AddDate(0, 0, 7)
	draw.ScoreA, draw.ScoreB = 1, 1
	draw.ScorersA = []match.Scorer{{Player: "Pavlidis", Goals: 1}}
	draw.ScorersB = []match.Scorer{{Player: "Vinicius", Goals: 1}}
	draw.YellowA, draw.YellowB, draw.RedB = 0, 0, 0
	if _, err := f.service.SettleMatch(ctx, draw); err != nil {
		t.Fatalf("settle draw: %v", err)
	}

	stats := NewStatsService(f.matchRepo, f.playerRepo, f.motmRepo, time.Minute)
	overview, err := stats.GetOverview(ctx)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}

	if overview.Matches != 2 || overview.WinsAEK != 1 || overview.Draws != 1 {
		t.Fatalf("unexpected record: %+v", overview)
	}
	if overview.GoalsAEK != 4 || overview.GoalsReal != 2 {
		t.Fatalf("unexpected goal totals: %+v", overview)
	}
	if len(overview.Scorers) == 0 || overview.Scorers[0].Player != "Pavlidis" || overview.Scorers[0].Goals != 3 {
		t.Fatalf("unexpected top scorer: %+v", overview.Scorers)
	}
}

func TestStatsService_InvalidateDropsCachedOverview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := memory.NewMatchRepository()
	stats := NewStatsService(matchRepo, memory.NewPlayerRepository(nil), memory.NewMotmRepository(), time.Hour)

	before, err := stats.GetOverview(ctx)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}
	if before.Matches != 0 {
		t.Fatalf("expected empty overview, got %+v", before)
	}

	service := NewSettlementService(
		matchRepo,
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewBanRepository(),
		memory.NewFinanceRepository(),
		memory.NewMotmRepository(),
		nil, nil, logging.NewNop(),
	)
	if _, err := service.SettleMatch(ctx, testMatch()); err != nil {
		t.Fatalf("settle match: %v", err)
	}

	// Still served from cache until invalidated.
	cached, err := stats.GetOverview(ctx)
	if err != nil {
		t.Fatalf("get cached overview: %v", err)
	}
	if cached.Matches != 0 {
		t.Fatalf("expected cached overview, got %+v", cached)
	}

	stats.Invalidate(ctx)
	fresh, err := stats.GetOverview(ctx)
	if err != nil {
		t.Fatalf("get fresh overview: %v", err)
	}
	if fresh.Matches != 1 {
		t.Fatalf("expected recomputed overview, got %+v", fresh)
	}
}

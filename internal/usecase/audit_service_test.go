package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestAuditService_CleanStatePasses(t *testing.T) {
	t.Parallel()

	f := newSettlementFixture(t)
	ctx := context.Background()

	if _, err := f.service.SettleMatch(ctx, testMatch()); err != nil {
		t.Fatalf("settle match: %v", err)
	}

	audit := NewAuditService(f.matchRepo, f.playerRepo, f.financeRepo, f.motmRepo)
	result, err := audit.Run(ctx, AuditInput{MaxWorkers: 3})
	if err != nil {
		t.Fatalf("run audit: %v", err)
	}

	if result.CheckCount != 5 || result.PassedCount != 5 || result.FailedCount != 0 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
	if len(result.Findings) != 0 {
		t.Fatalf("expected no findings, got %+v", result.Findings)
	}
}

func TestAuditService_FlagsDriftedPrizeAndOrphanTransaction(t *testing.T) {
	t.Parallel()

	f := newSettlementFixture(t)
	ctx := context.Background()

	settled, err := f.service.SettleMatch(ctx, testMatch())
	if err != nil {
		t.Fatalf("settle match: %v", err)
	}

	// Corrupt the persisted prize so the recompute check trips.
	stored, exists, err := f.matchRepo.GetByID(ctx, settled.ID)
	if err != nil || !exists {
		t.Fatalf("fetch match: exists=%v err=%v", exists, err)
	}
	stored.PrizeA += 1
	if err := f.matchRepo.Update(ctx, stored); err != nil {
		t.Fatalf("corrupt match: %v", err)
	}

	// Delete the match row but keep its transactions to orphan the links.
	second := testMatch()
	second.Date = second.Date.AddDate(0, 0, 7)
	orphan, err := f.service.SettleMatch(ctx, second)
	if err != nil {
		t.Fatalf("settle second match: %v", err)
	}
	if err := f.matchRepo.Delete(ctx, orphan.ID); err != nil {
		t.Fatalf("delete match row: %v", err)
	}

	audit := NewAuditService(f.matchRepo, f.playerRepo, f.financeRepo, f.motmRepo)
	result, err := audit.Run(ctx, AuditInput{})
	if err != nil {
		t.Fatalf("run audit: %v", err)
	}

	if result.FailedCount == 0 {
		t.Fatalf("expected failed checks, got %+v", result)
	}
	var sawPrize, sawOrphan bool
	for _, row := range result.Findings {
		switch row.Check {
		case "match_prizes":
			sawPrize = true
		case "transaction_links":
			sawOrphan = true
		}
	}
	if !sawPrize {
		t.Fatalf("expected a match_prizes finding, got %+v", result.Findings)
	}
	if !sawOrphan {
		t.Fatalf("expected a transaction_links finding, got %+v", result.Findings)
	}
}

func TestAuditService_SelectedChecksOnly(t *testing.T) {
	t.Parallel()

	f := newSettlementFixture(t)
	audit := NewAuditService(f.matchRepo, f.playerRepo, f.financeRepo, f.motmRepo)

	result, err := audit.Run(context.Background(), AuditInput{Checks: []string{"balances"}})
	if err != nil {
		t.Fatalf("run audit: %v", err)
	}
	if result.CheckCount != 1 || result.WorkerCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.CheckedNames) != 1 || result.CheckedNames[0] != "balances" {
		t.Fatalf("unexpected checked names: %+v", result.CheckedNames)
	}
}

func TestAuditService_RejectsUnknownCheck(t *testing.T) {
	t.Parallel()

	f := newSettlementFixture(t)
	audit := NewAuditService(f.matchRepo, f.playerRepo, f.financeRepo, f.motmRepo)

	_, err := audit.Run(context.Background(), AuditInput{Checks: []string{"vibes"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "vibes") {
		t.Fatalf("error should name the check: %v", err)
	}
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/motm"
	"github.com/fifahub/liga-tracker/internal/domain/player"
	"github.com/fifahub/liga-tracker/internal/domain/settlement"
	"github.com/panjf2000/ants/v2"
)

// AuditService cross-checks the stored data against the settlement rules.
// Settlement runs without transactions, so a failed run can leave prizes,
// goals, or balances drifted; the audit reports those spots for manual
// correction via edit or delete.
type AuditService struct {
	matchRepo   match.Repository
	playerRepo  player.Repository
	financeRepo finance.Repository
	motmRepo    motm.Repository
}

type AuditInput struct {
	MaxWorkers int
	Checks     []string
}

type AuditResult struct {
	CheckCount   int           `json:"check_count"`
	PassedCount  int           `json:"passed_count"`
	FailedCount  int           `json:"failed_count"`
	WorkerCount  int           `json:"worker_count"`
	Findings     []AuditRow    `json:"findings"`
	Duration     time.Duration `json:"-"`
	DurationMs   int64         `json:"duration_ms"`
	CheckedNames []string      `json:"checked_names"`
}

type AuditRow struct {
	Check   string `json:"check"`
	Subject string `json:"subject"`
	Detail  string `json:"detail"`
}

const (
	auditCheckPrizes       = "match_prizes"
	auditCheckBalances     = "balances"
	auditCheckGoals        = "player_goals"
	auditCheckTransactions = "transaction_links"
	auditCheckAwards       = "award_counters"
)

var auditCheckNames = []string{
	auditCheckPrizes,
	auditCheckBalances,
	auditCheckGoals,
	auditCheckTransactions,
	auditCheckAwards,
}

func NewAuditService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	financeRepo finance.Repository,
	motmRepo motm.Repository,
) *AuditService {
	return &AuditService{
		matchRepo:   matchRepo,
		playerRepo:  playerRepo,
		financeRepo: financeRepo,
		motmRepo:    motmRepo,
	}
}

// Run executes the requested checks on a bounded worker pool and collects
// every finding. An empty Checks list runs all of them.
func (s *AuditService) Run(ctx context.Context, input AuditInput) (AuditResult, error) {
	ctx, span := serviceSpan(ctx, "usecase.AuditService.Run")
	defer span.End()

	checks, err := normalizeAuditChecks(input.Checks)
	if err != nil {
		return AuditResult{}, err
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = 2
	}
	if workerCount > len(checks) {
		workerCount = len(checks)
	}

	start := time.Now()
	result := AuditResult{
		CheckCount:   len(checks),
		WorkerCount:  workerCount,
		CheckedNames: checks,
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return AuditResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	findings := make(chan []AuditRow, len(checks))
	errs := make(chan error, len(checks))
	var passed atomic.Int32
	var failed atomic.Int32

	var workers sync.WaitGroup
	for _, check := range checks {
		check := check
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			rows, runErr := s.runCheck(ctx, check)
			if runErr != nil {
				errs <- fmt.Errorf("audit check %s: %w", check, runErr)
				return
			}
			if len(rows) == 0 {
				passed.Add(1)
				return
			}
			failed.Add(1)
			findings <- rows
		}); err != nil {
			workers.Done()
			return AuditResult{}, fmt.Errorf("submit audit check: %w", err)
		}
	}

	workers.Wait()
	close(findings)
	close(errs)

	for err := range errs {
		return AuditResult{}, err
	}
	for rows := range findings {
		result.Findings = append(result.Findings, rows...)
	}
	sort.SliceStable(result.Findings, func(i, j int) bool {
		if result.Findings[i].Check != result.Findings[j].Check {
			return result.Findings[i].Check < result.Findings[j].Check
		}
		return result.Findings[i].Subject < result.Findings[j].Subject
	})

	result.PassedCount = int(passed.Load())
	result.FailedCount = int(failed.Load())
	result.Duration = time.Since(start)
	result.DurationMs = result.Duration.Milliseconds()
	return result, nil
}

func (s *AuditService) runCheck(ctx context.Context, check string) ([]AuditRow, error) {
	switch check {
	case auditCheckPrizes:
		return s.checkMatchPrizes(ctx)
	case auditCheckBalances:
		return s.checkBalances(ctx)
	case auditCheckGoals:
		return s.checkPlayerGoals(ctx)
	case auditCheckTransactions:
		return s.checkTransactionLinks(ctx)
	case auditCheckAwards:
		return s.checkAwardCounters(ctx)
	default:
		return nil, fmt.Errorf("%w: unsupported check %q", ErrInvalidInput, check)
	}
}

// checkMatchPrizes recomputes every match's prizes from its score and
// discipline counts and flags drift from the persisted values.
func (s *AuditService) checkMatchPrizes(ctx context.Context) ([]AuditRow, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	var rows []AuditRow
	for _, m := range matches {
		want := settlement.ComputePrizes(m.ScoreA, m.ScoreB, m.YellowA, m.RedA, m.YellowB, m.RedB)
		if want.PrizeA != m.PrizeA || want.PrizeB != m.PrizeB {
			rows = append(rows, AuditRow{
				Check:   auditCheckPrizes,
				Subject: fmt.Sprintf("match %d", m.ID),
				Detail:  fmt.Sprintf("persisted prizes %d/%d, formula yields %d/%d", m.PrizeA, m.PrizeB, want.PrizeA, want.PrizeB),
			})
		}
	}
	return rows, nil
}

func (s *AuditService) checkBalances(ctx context.Context) ([]AuditRow, error) {
	finances, err := s.financeRepo.ListFinances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finances: %w", err)
	}

	var rows []AuditRow
	for _, f := range finances {
		if f.Balance < 0 {
			rows = append(rows, AuditRow{
				Check:   auditCheckBalances,
				Subject: f.Team,
				Detail:  fmt.Sprintf("negative balance %d", f.Balance),
			})
		}
		if f.Debt < 0 {
			rows = append(rows, AuditRow{
				Check:   auditCheckBalances,
				Subject: f.Team,
				Detail:  fmt.Sprintf("negative debt %d", f.Debt),
			})
		}
	}
	return rows, nil
}

func (s *AuditService) checkPlayerGoals(ctx context.Context) ([]AuditRow, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	var rows []AuditRow
	for _, p := range players {
		if p.Goals < 0 {
			rows = append(rows, AuditRow{
				Check:   auditCheckGoals,
				Subject: p.Name,
				Detail:  fmt.Sprintf("negative goal tally %d", p.Goals),
			})
		}
	}
	return rows, nil
}

// checkTransactionLinks flags settlement-typed transactions whose match no
// longer exists: leftovers of a partially failed reversal.
func (s *AuditService) checkTransactionLinks(ctx context.Context) ([]AuditRow, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	known := make(map[int64]struct{}, len(matches))
	for _, m := range matches {
		known[m.ID] = struct{}{}
	}

	transactions, err := s.financeRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var rows []AuditRow
	for _, tx := range transactions {
		if tx.MatchID == nil {
			continue
		}
		if _, ok := known[*tx.MatchID]; !ok {
			rows = append(rows, AuditRow{
				Check:   auditCheckTransactions,
				Subject: fmt.Sprintf("transaction %d", tx.ID),
				Detail:  fmt.Sprintf("%s entry references deleted match %d", tx.Type, *tx.MatchID),
			})
		}
	}
	return rows, nil
}

func (s *AuditService) checkAwardCounters(ctx context.Context) ([]AuditRow, error) {
	awards, err := s.motmRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list award counters: %w", err)
	}

	var rows []AuditRow
	for _, a := range awards {
		if a.Count < 0 {
			rows = append(rows, AuditRow{
				Check:   auditCheckAwards,
				Subject: a.Player,
				Detail:  fmt.Sprintf("negative award count %d", a.Count),
			})
		}
	}
	return rows, nil
}

func normalizeAuditChecks(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return append([]string(nil), auditCheckNames...), nil
	}

	valid := make(map[string]struct{}, len(auditCheckNames))
	for _, name := range auditCheckNames {
		valid[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		if _, ok := valid[name]; !ok {
			return nil, fmt.Errorf("%w: unsupported check %q", ErrInvalidInput, name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fifahub/liga-tracker/internal/domain/ban"
	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/motm"
	"github.com/fifahub/liga-tracker/internal/domain/player"
	"github.com/fifahub/liga-tracker/internal/domain/settlement"
	"github.com/fifahub/liga-tracker/internal/platform/id"
	"github.com/fifahub/liga-tracker/internal/platform/logging"
)

// reversalTypes is the transaction type set removed when a match is
// reversed. Debt-ledger effects are intentionally not undone.
var reversalTypes = []string{
	finance.TypePrize,
	finance.TypeBonus,
	finance.TypeRealMoney,
	finance.TypeRealMoneyDebt,
}

// SettlementService runs the match settlement and reversal orchestrations.
// All writes are serialized through a single mutex so two settlements can
// never interleave their read-modify-write cycles on balances and debts.
// Steps run strictly in order with no compensating rollback: a failed step
// is reported and everything already applied stays applied.
type SettlementService struct {
	matchRepo   match.Repository
	playerRepo  player.Repository
	banRepo     ban.Repository
	financeRepo finance.Repository
	motmRepo    motm.Repository

	notifier Notifier
	idGen    id.Generator
	logger   *logging.Logger
	now      func() time.Time

	mu sync.Mutex
}

func NewSettlementService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	banRepo ban.Repository,
	financeRepo finance.Repository,
	motmRepo motm.Repository,
	notifier Notifier,
	idGen id.Generator,
	logger *logging.Logger,
) *SettlementService {
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SettlementService{
		matchRepo:   matchRepo,
		playerRepo:  playerRepo,
		banRepo:     banRepo,
		financeRepo: financeRepo,
		motmRepo:    motmRepo,
		notifier:    notifier,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// SettleMatch validates the payload, persists the match, and applies every
// financial and statistical side effect.
func (s *SettlementService) SettleMatch(ctx context.Context, m match.Match) (match.Match, error) {
	ctx, span := serviceSpan(ctx, "usecase.SettlementService.SettleMatch")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settleLocked(ctx, m)
}

// EditMatch replaces a settled match: the previous version is fully reversed
// using its persisted prizes, then the new payload is settled forward. The
// replacement is validated up front; an invalid payload must leave the
// original match and its ledger entries untouched.
func (s *SettlementService) EditMatch(ctx context.Context, matchID int64, m match.Match) (match.Match, error) {
	ctx, span := serviceSpan(ctx, "usecase.SettlementService.EditMatch")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match for edit: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	if _, _, err := s.validateForSettlement(ctx, m); err != nil {
		return match.Match{}, err
	}

	if err := s.reverseLocked(ctx, previous); err != nil {
		return match.Match{}, err
	}

	return s.settleLocked(ctx, m)
}

// DeleteMatch reverses and removes a settled match.
func (s *SettlementService) DeleteMatch(ctx context.Context, matchID int64) error {
	ctx, span := serviceSpan(ctx, "usecase.SettlementService.DeleteMatch")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match for delete: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	if err := s.reverseLocked(ctx, m); err != nil {
		return err
	}

	s.notifier.Success(ctx, "match.deleted", fmt.Sprintf("match %d deleted and reversed", matchID))
	return nil
}

// validateForSettlement runs every blocking check before anything is
// written: the fixed team pairing, payload shape, scorer sums, and the
// man-of-the-match roster resolution. It returns the payload with the
// prize fields filled in.
func (s *SettlementService) validateForSettlement(ctx context.Context, m match.Match) (match.Match, settlement.Bonuses, error) {
	m.TeamA = match.TeamAEK
	m.TeamB = match.TeamReal

	if err := m.Validate(); err != nil {
		return match.Match{}, settlement.Bonuses{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := settlement.ValidateScorers(m.TeamA, m.ScorersA, m.ScoreA); err != nil {
		return match.Match{}, settlement.Bonuses{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := settlement.ValidateScorers(m.TeamB, m.ScorersB, m.ScoreB); err != nil {
		return match.Match{}, settlement.Bonuses{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bonuses, err := s.computeBonus(ctx, m.ManOfTheMatch)
	if err != nil {
		return match.Match{}, settlement.Bonuses{}, err
	}

	prizes := settlement.ComputePrizes(m.ScoreA, m.ScoreB, m.YellowA, m.RedA, m.YellowB, m.RedB)
	m.PrizeA = prizes.PrizeA
	m.PrizeB = prizes.PrizeB

	return m, bonuses, nil
}

func (s *SettlementService) settleLocked(ctx context.Context, m match.Match) (match.Match, error) {
	runID, err := s.idGen.NewID()
	if err != nil {
		runID = "unknown"
	}
	logger := s.logger.With("settlement_run", runID)

	m, bonuses, err := s.validateForSettlement(ctx, m)
	if err != nil {
		return match.Match{}, err
	}

	saved, err := s.matchRepo.Insert(ctx, m)
	if err != nil {
		return match.Match{}, s.fail(ctx, logger, "match.settle", "insert match", err)
	}
	logger = logger.With("match_id", saved.ID)

	// Re-read the authoritative list so the success message carries the
	// store's ordering, not the client's assumption.
	all, err := s.matchRepo.List(ctx)
	if err != nil {
		return saved, s.fail(ctx, logger, "match.settle", "list matches after insert", err)
	}
	matchNumber := matchNumberOf(all, saved.ID)

	if err := s.applyScorerGoals(ctx, logger, saved, 1); err != nil {
		return saved, s.fail(ctx, logger, "match.settle", "apply scorer goals", err)
	}

	if err := s.sweepBans(ctx); err != nil {
		return saved, s.fail(ctx, logger, "match.settle", "sweep bans", err)
	}

	if err := s.applyBonus(ctx, saved, bonuses); err != nil {
		return saved, s.fail(ctx, logger, "match.settle", "apply bonus", err)
	}

	if err := s.applyPrizes(ctx, saved); err != nil {
		return saved, s.fail(ctx, logger, "match.settle", "apply prizes", err)
	}

	if !saved.Draw() {
		if err := s.settleDebt(ctx, logger, saved, bonuses); err != nil {
			return saved, s.fail(ctx, logger, "match.settle", "settle debt", err)
		}
	}

	logger.InfoContext(ctx, "match settled",
		"match_number", matchNumber,
		"score", fmt.Sprintf("%d:%d", saved.ScoreA, saved.ScoreB),
		"prize_aek", saved.PrizeA,
		"prize_real", saved.PrizeB,
	)
	s.notifier.Success(ctx, "match.settled",
		fmt.Sprintf("match %d (%s %d:%d %s) settled", matchNumber, saved.TeamA, saved.ScoreA, saved.ScoreB, saved.TeamB))

	return saved, nil
}

// reverseLocked undoes a settled match. The persisted prize fields are the
// authoritative amounts; nothing is recomputed here. Debt stays untouched.
func (s *SettlementService) reverseLocked(ctx context.Context, m match.Match) error {
	logger := s.logger.With("match_id", m.ID)

	// The bonus amounts have to be read back before the transactions are
	// deleted; the match record itself does not store them.
	transactions, err := s.financeRepo.ListTransactionsByMatch(ctx, m.ID)
	if err != nil {
		return s.fail(ctx, logger, "match.reverse", "list match transactions", err)
	}
	bonusByTeam := make(map[string]int64, 2)
	for _, tx := range transactions {
		if tx.Type == finance.TypeBonus {
			bonusByTeam[tx.Team] += tx.Amount
		}
	}

	if err := s.financeRepo.DeleteTransactionsByMatch(ctx, m.ID, reversalTypes); err != nil {
		return s.fail(ctx, logger, "match.reverse", "delete match transactions", err)
	}

	if err := s.adjustBalance(ctx, m.TeamA, -m.PrizeA); err != nil {
		return s.fail(ctx, logger, "match.reverse", "revert prize", err)
	}
	if err := s.adjustBalance(ctx, m.TeamB, -m.PrizeB); err != nil {
		return s.fail(ctx, logger, "match.reverse", "revert prize", err)
	}

	for team, amount := range bonusByTeam {
		if err := s.adjustBalance(ctx, team, -amount); err != nil {
			return s.fail(ctx, logger, "match.reverse", "revert bonus", err)
		}
	}

	if err := s.applyScorerGoals(ctx, logger, m, -1); err != nil {
		return s.fail(ctx, logger, "match.reverse", "revert scorer goals", err)
	}

	if m.ManOfTheMatch != "" {
		if err := s.decrementAward(ctx, logger, m); err != nil {
			return s.fail(ctx, logger, "match.reverse", "revert award counter", err)
		}
	}

	if err := s.matchRepo.Delete(ctx, m.ID); err != nil {
		return s.fail(ctx, logger, "match.reverse", "delete match", err)
	}

	logger.InfoContext(ctx, "match reversed", "prize_aek", m.PrizeA, "prize_real", m.PrizeB)
	return nil
}

func (s *SettlementService) computeBonus(ctx context.Context, manOfTheMatch string) (settlement.Bonuses, error) {
	if manOfTheMatch == "" {
		return settlement.Bonuses{}, nil
	}

	rosterA, err := s.rosterNames(ctx, match.TeamAEK)
	if err != nil {
		return settlement.Bonuses{}, err
	}
	rosterB, err := s.rosterNames(ctx, match.TeamReal)
	if err != nil {
		return settlement.Bonuses{}, err
	}

	bonuses := settlement.ComputeBonus(manOfTheMatch, rosterA, rosterB)
	if bonuses.BonusTeam() == "" {
		return settlement.Bonuses{}, fmt.Errorf("%w: man of the match %q is on neither roster", ErrInvalidInput, manOfTheMatch)
	}
	return bonuses, nil
}

func (s *SettlementService) rosterNames(ctx context.Context, team string) ([]string, error) {
	players, err := s.playerRepo.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list %s roster: %w", team, err)
	}
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return names, nil
}

// applyScorerGoals adds direction*goals to each named scorer's career tally,
// floored at zero. Unknown scorer names are skipped with a warning.
func (s *SettlementService) applyScorerGoals(ctx context.Context, logger *logging.Logger, m match.Match, direction int) error {
	apply := func(scorers []match.Scorer) error {
		for _, scorer := range scorers {
			if scorer.Player == "" {
				continue
			}
			p, exists, err := s.playerRepo.GetByName(ctx, scorer.Player)
			if err != nil {
				return fmt.Errorf("look up scorer %s: %w", scorer.Player, err)
			}
			if !exists {
				logger.WarnContext(ctx, "scorer not on any roster, skipping", "player", scorer.Player)
				continue
			}
			p.Goals += direction * scorer.Goals
			if p.Goals < 0 {
				p.Goals = 0
			}
			if err := s.playerRepo.Update(ctx, p); err != nil {
				return fmt.Errorf("update goals for %s: %w", p.Name, err)
			}
		}
		return nil
	}

	if err := apply(m.ScorersA); err != nil {
		return err
	}
	return apply(m.ScorersB)
}

// sweepBans advances every active ban by one match, independent of who
// played.
func (s *SettlementService) sweepBans(ctx context.Context) error {
	active, err := s.banRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active bans: %w", err)
	}
	for _, b := range active {
		b.MatchesServed++
		if err := s.banRepo.Update(ctx, b); err != nil {
			return fmt.Errorf("advance ban %d: %w", b.ID, err)
		}
	}
	return nil
}

func (s *SettlementService) applyBonus(ctx context.Context, m match.Match, bonuses settlement.Bonuses) error {
	team := bonuses.BonusTeam()
	if team == "" {
		return nil
	}

	count, _, err := s.motmRepo.GetByPlayerTeam(ctx, m.ManOfTheMatch, team)
	if err != nil {
		return fmt.Errorf("get award counter: %w", err)
	}
	count.Player = m.ManOfTheMatch
	count.Team = team
	count.Count++
	if err := s.motmRepo.Upsert(ctx, count); err != nil {
		return fmt.Errorf("upsert award counter: %w", err)
	}

	amount := bonuses.BonusA + bonuses.BonusB
	matchID := m.ID
	if _, err := s.financeRepo.InsertTransaction(ctx, finance.Transaction{
		Team:    team,
		Type:    finance.TypeBonus,
		Amount:  amount,
		Date:    s.now(),
		MatchID: &matchID,
		Info:    m.ManOfTheMatch,
	}); err != nil {
		return fmt.Errorf("insert bonus transaction: %w", err)
	}

	return s.adjustBalance(ctx, team, amount)
}

func (s *SettlementService) applyPrizes(ctx context.Context, m match.Match) error {
	matchID := m.ID
	for _, side := range []struct {
		team  string
		prize int64
	}{
		{m.TeamA, m.PrizeA},
		{m.TeamB, m.PrizeB},
	} {
		if side.prize == 0 {
			continue
		}
		if err := s.adjustBalance(ctx, side.team, side.prize); err != nil {
			return err
		}
		if _, err := s.financeRepo.InsertTransaction(ctx, finance.Transaction{
			Team:    side.team,
			Type:    finance.TypePrize,
			Amount:  side.prize,
			Date:    s.now(),
			MatchID: &matchID,
		}); err != nil {
			return fmt.Errorf("insert prize transaction for %s: %w", side.team, err)
		}
	}
	return nil
}

// settleDebt converts the loser's prize swing into real-money units,
// amortizing the winner's outstanding debt before the loser takes on new
// debt. Balances are read after prize and bonus were applied.
func (s *SettlementService) settleDebt(ctx context.Context, logger *logging.Logger, m match.Match, bonuses settlement.Bonuses) error {
	winner := m.Winner()
	loser := match.TeamReal
	loserPrize := m.PrizeB
	loserHadBonus := bonuses.BonusB > 0
	if winner == match.TeamReal {
		loser = match.TeamAEK
		loserPrize = m.PrizeA
		loserHadBonus = bonuses.BonusA > 0
	}

	winnerFinance, exists, err := s.financeRepo.GetByTeam(ctx, winner)
	if err != nil {
		return fmt.Errorf("get winner finance: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: finance record for %s", ErrNotFound, winner)
	}
	loserFinance, exists, err := s.financeRepo.GetByTeam(ctx, loser)
	if err != nil {
		return fmt.Errorf("get loser finance: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: finance record for %s", ErrNotFound, loser)
	}

	outcome := settlement.SettleDebt(settlement.DebtInput{
		LoserPrize:       loserPrize,
		LoserBalance:     loserFinance.Balance,
		LoserHadBonus:    loserHadBonus,
		WinnerDebtBefore: winnerFinance.Debt,
	})

	matchID := m.ID
	if outcome.Amortized > 0 {
		winnerFinance.Debt = outcome.WinnerDebtAfter
		if err := s.financeRepo.UpdateFinance(ctx, winnerFinance); err != nil {
			return fmt.Errorf("update winner debt: %w", err)
		}
		if _, err := s.financeRepo.InsertTransaction(ctx, finance.Transaction{
			Team:    winner,
			Type:    finance.TypeRealMoneyDebt,
			Amount:  -outcome.Amortized,
			Date:    s.now(),
			MatchID: &matchID,
		}); err != nil {
			return fmt.Errorf("insert amortization transaction: %w", err)
		}
	}

	if outcome.LoserDebtAdded > 0 {
		loserFinance.Debt += outcome.LoserDebtAdded
		if err := s.financeRepo.UpdateFinance(ctx, loserFinance); err != nil {
			return fmt.Errorf("update loser debt: %w", err)
		}
		if _, err := s.financeRepo.InsertTransaction(ctx, finance.Transaction{
			Team:    loser,
			Type:    finance.TypeRealMoney,
			Amount:  outcome.LoserDebtAdded,
			Date:    s.now(),
			MatchID: &matchID,
		}); err != nil {
			return fmt.Errorf("insert equalization transaction: %w", err)
		}
	}

	logger.InfoContext(ctx, "debt settled",
		"loser_amount", outcome.LoserAmount,
		"amortized", outcome.Amortized,
		"winner_debt_after", outcome.WinnerDebtAfter,
		"loser_debt_added", outcome.LoserDebtAdded,
	)
	return nil
}

// decrementAward lowers the award counter for the match's best player. Team
// resolution prefers the scorer lists, then the current roster; an
// unresolvable team skips the step instead of failing the reversal.
func (s *SettlementService) decrementAward(ctx context.Context, logger *logging.Logger, m match.Match) error {
	team := ""
	for _, scorer := range m.ScorersA {
		if scorer.Player == m.ManOfTheMatch {
			team = match.TeamAEK
			break
		}
	}
	if team == "" {
		for _, scorer := range m.ScorersB {
			if scorer.Player == m.ManOfTheMatch {
				team = match.TeamReal
				break
			}
		}
	}
	if team == "" {
		p, exists, err := s.playerRepo.GetByName(ctx, m.ManOfTheMatch)
		if err != nil {
			return fmt.Errorf("look up award player: %w", err)
		}
		if !exists {
			logger.WarnContext(ctx, "cannot resolve team for award reversal, skipping", "player", m.ManOfTheMatch)
			return nil
		}
		team = p.Team
	}

	count, exists, err := s.motmRepo.GetByPlayerTeam(ctx, m.ManOfTheMatch, team)
	if err != nil {
		return fmt.Errorf("get award counter: %w", err)
	}
	if !exists {
		return nil
	}
	count.Count--
	if count.Count < 0 {
		count.Count = 0
	}
	if err := s.motmRepo.Upsert(ctx, count); err != nil {
		return fmt.Errorf("update award counter: %w", err)
	}
	return nil
}

// adjustBalance applies a signed delta to a team balance, floored at zero.
func (s *SettlementService) adjustBalance(ctx context.Context, team string, delta int64) error {
	if delta == 0 {
		return nil
	}
	f, exists, err := s.financeRepo.GetByTeam(ctx, team)
	if err != nil {
		return fmt.Errorf("get %s finance: %w", team, err)
	}
	if !exists {
		return fmt.Errorf("%w: finance record for %s", ErrNotFound, team)
	}
	f.Balance += delta
	if f.Balance < 0 {
		f.Balance = 0
	}
	if err := s.financeRepo.UpdateFinance(ctx, f); err != nil {
		return fmt.Errorf("update %s balance: %w", team, err)
	}
	return nil
}

func (s *SettlementService) fail(ctx context.Context, logger *logging.Logger, event, step string, err error) error {
	logger.ErrorContext(ctx, "settlement step failed", "step", step, "error", err)
	s.notifier.Error(ctx, event, fmt.Sprintf("%s failed: %v", step, err))
	return fmt.Errorf("%s: %w", step, err)
}

func matchNumberOf(all []match.Match, id int64) int {
	for i, m := range all {
		if m.ID == id {
			return i + 1
		}
	}
	return len(all)
}

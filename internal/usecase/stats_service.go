package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/motm"
	"github.com/fifahub/liga-tracker/internal/domain/player"
	"github.com/fifahub/liga-tracker/internal/platform/cache"
)

const statsCacheKey = "stats:overview"

// Overview is the dashboard aggregate: the head-to-head record, goal
// totals, discipline counts, top scorers, and the award leaderboard.
type Overview struct {
	Matches   int
	WinsAEK   int
	WinsReal  int
	Draws     int
	GoalsAEK  int
	GoalsReal int
	CardsAEK  DisciplineCount
	CardsReal DisciplineCount
	Scorers   []ScorerRank
	Awards    []motm.Count
}

type DisciplineCount struct {
	Yellow int
	Red    int
}

type ScorerRank struct {
	Player string
	Team   string
	Goals  int
}

// StatsService computes the dashboard aggregates over the full match list.
// Results are cached with a short TTL; concurrent misses share one
// computation.
type StatsService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	motmRepo   motm.Repository
	store      *cache.Store
}

func NewStatsService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	motmRepo motm.Repository,
	ttl time.Duration,
) *StatsService {
	return &StatsService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		motmRepo:   motmRepo,
		store:      cache.NewStore(ttl),
	}
}

func (s *StatsService) GetOverview(ctx context.Context) (Overview, error) {
	ctx, span := serviceSpan(ctx, "usecase.StatsService.GetOverview")
	defer span.End()

	value, err := s.store.GetOrLoad(ctx, statsCacheKey, func(ctx context.Context) (any, error) {
		return s.computeOverview(ctx)
	})
	if err != nil {
		return Overview{}, err
	}

	overview, ok := value.(Overview)
	if !ok {
		return Overview{}, fmt.Errorf("unexpected cached overview type %T", value)
	}
	return overview, nil
}

// Invalidate drops the cached overview. Called after every settlement,
// reversal, and transfer.
func (s *StatsService) Invalidate(ctx context.Context) {
	s.store.Delete(ctx, statsCacheKey)
}

func (s *StatsService) computeOverview(ctx context.Context) (Overview, error) {
	var (
		matches []match.Match
		players []player.Player
		awards  []motm.Count
	)

	group := pool.New().WithContext(ctx).WithCancelOnError()
	group.Go(func(ctx context.Context) error {
		var err error
		if matches, err = s.matchRepo.List(ctx); err != nil {
			return fmt.Errorf("list matches for overview: %w", err)
		}
		return nil
	})
	group.Go(func(ctx context.Context) error {
		var err error
		if players, err = s.playerRepo.List(ctx); err != nil {
			return fmt.Errorf("list players for overview: %w", err)
		}
		return nil
	})
	group.Go(func(ctx context.Context) error {
		var err error
		if awards, err = s.motmRepo.List(ctx); err != nil {
			return fmt.Errorf("list awards for overview: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return Overview{}, err
	}

	out := Overview{Matches: len(matches)}
	for _, m := range matches {
		switch m.Winner() {
		case match.TeamAEK:
			out.WinsAEK++
		case match.TeamReal:
			out.WinsReal++
		default:
			out.Draws++
		}
		out.GoalsAEK += m.ScoreA
		out.GoalsReal += m.ScoreB
		out.CardsAEK.Yellow += m.YellowA
		out.CardsAEK.Red += m.RedA
		out.CardsReal.Yellow += m.YellowB
		out.CardsReal.Red += m.RedB
	}

	scorers := make([]ScorerRank, 0, len(players))
	for _, p := range players {
		if p.Goals == 0 {
			continue
		}
		scorers = append(scorers, ScorerRank{Player: p.Name, Team: p.Team, Goals: p.Goals})
	}
	sort.SliceStable(scorers, func(i, j int) bool {
		if scorers[i].Goals != scorers[j].Goals {
			return scorers[i].Goals > scorers[j].Goals
		}
		return scorers[i].Player < scorers[j].Player
	})
	out.Scorers = scorers

	sort.SliceStable(awards, func(i, j int) bool {
		if awards[i].Count != awards[j].Count {
			return awards[i].Count > awards[j].Count
		}
		return awards[i].Player < awards[j].Player
	})
	out.Awards = awards

	return out, nil
}

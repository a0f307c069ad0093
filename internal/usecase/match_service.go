package usecase

import (
	"context"
	"fmt"

	"github.com/fifahub/liga-tracker/internal/domain/match"
)

// MatchService serves the read side of matches; all writes go through the
// SettlementService.
type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := serviceSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) GetMatch(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := serviceSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	m, exists, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %d", ErrNotFound, id)
	}
	return m, nil
}

// Package settlement holds the pure calculators behind match settlement:
// scorer aggregation, prize money, the man-of-the-match bonus, and the
// real-money debt equalization. Nothing in this package touches storage.
package settlement

import (
	"errors"
	"fmt"

	"github.com/fifahub/liga-tracker/internal/domain/match"
)

var ErrScorerSumExceedsScore = errors.New("scorer goals exceed team score")

// TallyScorers drops rows without a selected player and sums the rest.
func TallyScorers(scorers []match.Scorer) int {
	total := 0
	for _, s := range scorers {
		if s.Player == "" {
			continue
		}
		total += s.Goals
	}

	return total
}

// ValidateScorers enforces the scorer-sum rule for one side: the attributed
// goals may fall short of the declared score (unknown scorer) but never
// exceed it.
func ValidateScorers(team string, scorers []match.Scorer, score int) error {
	total := TallyScorers(scorers)
	if total > score {
		return fmt.Errorf("%w: %s has %d attributed goals but scored %d", ErrScorerSumExceedsScore, team, total, score)
	}

	return nil
}

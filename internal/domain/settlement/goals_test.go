package settlement

import (
	"errors"
	"testing"

	"github.com/fifahub/liga-tracker/internal/domain/match"
)

func TestTallyScorers_SkipsEmptyRows(t *testing.T) {
	t.Parallel()

	scorers := []match.Scorer{
		{Player: "Mueller", Goals: 2},
		{Player: "", Goals: 5},
		{Player: "Sani", Goals: 1},
	}
	if got := TallyScorers(scorers); got != 3 {
		t.Fatalf("unexpected tally: got=%d want=3", got)
	}
}

func TestValidateScorers_AllowsUndistributedGoals(t *testing.T) {
	t.Parallel()

	scorers := []match.Scorer{{Player: "Mueller", Goals: 1}}
	if err := ValidateScorers(match.TeamAEK, scorers, 3); err != nil {
		t.Fatalf("undistributed goals must be accepted: %v", err)
	}
}

func TestValidateScorers_RejectsExcess(t *testing.T) {
	t.Parallel()

	scorers := []match.Scorer{
		{Player: "Mueller", Goals: 2},
		{Player: "Sani", Goals: 2},
	}
	err := ValidateScorers(match.TeamReal, scorers, 3)
	if !errors.Is(err, ErrScorerSumExceedsScore) {
		t.Fatalf("expected ErrScorerSumExceedsScore, got %v", err)
	}
}

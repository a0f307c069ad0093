package settlement

import (
	"testing"

	"github.com/fifahub/liga-tracker/internal/domain/match"
)

func TestComputeBonus_Exclusivity(t *testing.T) {
	t.Parallel()

	rosterA := []string{"Mueller", "Sani"}
	rosterB := []string{"Vidal", "Costa"}

	got := ComputeBonus("Vidal", rosterA, rosterB)
	if got.BonusA != 0 || got.BonusB != BonusAmount {
		t.Fatalf("bonus must go to the player's side only: got=%+v", got)
	}
	if got.BonusTeam() != match.TeamReal {
		t.Fatalf("unexpected bonus team: got=%s", got.BonusTeam())
	}
}

func TestComputeBonus_NoAward(t *testing.T) {
	t.Parallel()

	rosterA := []string{"Mueller"}
	rosterB := []string{"Vidal"}

	if got := ComputeBonus("", rosterA, rosterB); got != (Bonuses{}) {
		t.Fatalf("empty name must award nothing: got=%+v", got)
	}
	if got := ComputeBonus("Unknown", rosterA, rosterB); got != (Bonuses{}) {
		t.Fatalf("unrostered player must award nothing: got=%+v", got)
	}
}

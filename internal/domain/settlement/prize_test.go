package settlement

import "testing"

func TestComputePrizes_Draw(t *testing.T) {
	t.Parallel()

	got := ComputePrizes(2, 2, 3, 1, 0, 0)
	if got.PrizeA != 0 || got.PrizeB != 0 {
		t.Fatalf("draw must pay nothing: got=%+v", got)
	}
}

func TestComputePrizes_WinnerAndLoserFormula(t *testing.T) {
	t.Parallel()

	// 3:1 with one yellow for the winner, two yellows and a red for the
	// loser.
	got := ComputePrizes(3, 1, 1, 0, 2, 1)
	if got.PrizeA != 930_000 {
		t.Fatalf("unexpected winner prize: got=%d want=930000", got.PrizeA)
	}
	if got.PrizeB != -740_000 {
		t.Fatalf("unexpected loser prize: got=%d want=-740000", got.PrizeB)
	}
}

func TestComputePrizes_Mirrored(t *testing.T) {
	t.Parallel()

	got := ComputePrizes(1, 3, 2, 1, 1, 0)
	if got.PrizeB != 930_000 {
		t.Fatalf("unexpected winner prize: got=%d want=930000", got.PrizeB)
	}
	if got.PrizeA != -740_000 {
		t.Fatalf("unexpected loser prize: got=%d want=-740000", got.PrizeA)
	}
}

func TestComputePrizes_LoserNeverAboveBaseStake(t *testing.T) {
	t.Parallel()

	for winnerGoals := 1; winnerGoals <= 6; winnerGoals++ {
		got := ComputePrizes(winnerGoals, 0, 0, 0, 0, 0)
		if got.PrizeB > -500_000 {
			t.Fatalf("loser prize above base stake at %d:0: got=%d", winnerGoals, got.PrizeB)
		}
	}
}

func TestComputePrizes_WinnerCanGoNegative(t *testing.T) {
	t.Parallel()

	// A narrow win with a heavy card haul drags the winner below zero.
	got := ComputePrizes(6, 5, 10, 12, 0, 0)
	if got.PrizeA >= 0 {
		t.Fatalf("expected negative winner prize, got=%d", got.PrizeA)
	}
}

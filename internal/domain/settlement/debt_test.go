package settlement

import "testing"

func TestSettlementAmount_BaseStakeWhenAbsorbed(t *testing.T) {
	t.Parallel()

	// The balance fully covers the prize swing, so only the base stake
	// remains.
	got := settlementAmount(-600_000, 900_000, false)
	if got != 5 {
		t.Fatalf("unexpected amount: got=%d want=5", got)
	}
}

func TestSettlementAmount_BonusCushionsShortfall(t *testing.T) {
	t.Parallel()

	// Shortfall of 200,000 without the bonus, 100,000 with it.
	without := settlementAmount(-700_000, 500_000, false)
	with := settlementAmount(-700_000, 500_000, true)
	if without != 7 {
		t.Fatalf("unexpected amount without bonus: got=%d want=7", without)
	}
	if with != 6 {
		t.Fatalf("unexpected amount with bonus: got=%d want=6", with)
	}
}

func TestSettlementAmount_RoundsHalfUnits(t *testing.T) {
	t.Parallel()

	// 150,000 shortfall rounds to two units.
	got := settlementAmount(-650_000, 500_000, false)
	if got != 7 {
		t.Fatalf("unexpected amount: got=%d want=7", got)
	}
}

func TestSettleDebt_FullAmortization(t *testing.T) {
	t.Parallel()

	out := SettleDebt(DebtInput{
		LoserPrize:       -2_000_000,
		LoserBalance:     500_000,
		WinnerDebtBefore: 30,
	})
	if out.LoserAmount != 20 {
		t.Fatalf("unexpected loser amount: got=%d want=20", out.LoserAmount)
	}
	if out.Amortized != 20 {
		t.Fatalf("unexpected amortized: got=%d want=20", out.Amortized)
	}
	if out.WinnerDebtAfter != 10 {
		t.Fatalf("unexpected winner debt: got=%d want=10", out.WinnerDebtAfter)
	}
	if out.LoserDebtAdded != 0 {
		t.Fatalf("loser must gain no new debt: got=%d", out.LoserDebtAdded)
	}
}

func TestSettleDebt_PartialAmortization(t *testing.T) {
	t.Parallel()

	out := SettleDebt(DebtInput{
		LoserPrize:       -2_000_000,
		LoserBalance:     500_000,
		WinnerDebtBefore: 10,
	})
	if out.Amortized != 10 {
		t.Fatalf("unexpected amortized: got=%d want=10", out.Amortized)
	}
	if out.WinnerDebtAfter != 0 {
		t.Fatalf("winner debt must be cleared: got=%d", out.WinnerDebtAfter)
	}
	if out.LoserDebtAdded != 10 {
		t.Fatalf("unexpected new loser debt: got=%d want=10", out.LoserDebtAdded)
	}
}

func TestSettleDebt_NoPriorDebt(t *testing.T) {
	t.Parallel()

	out := SettleDebt(DebtInput{
		LoserPrize:   -740_000,
		LoserBalance: 140_000,
	})
	if out.Amortized != 0 {
		t.Fatalf("nothing to amortize: got=%d", out.Amortized)
	}
	if out.LoserDebtAdded != out.LoserAmount {
		t.Fatalf("full amount must become loser debt: got=%d want=%d", out.LoserDebtAdded, out.LoserAmount)
	}
	if out.LoserAmount != 11 {
		t.Fatalf("unexpected loser amount: got=%d want=11", out.LoserAmount)
	}
}

package settlement

import "math"

const (
	debtBaseUnits = 5
	debtUnitSize  = 100_000
)

// DebtInput carries the loser-side figures the equalization formula needs,
// taken after prize and bonus have been applied to the balance, plus the
// winner's outstanding debt.
type DebtInput struct {
	LoserPrize       int64
	LoserBalance     int64
	LoserHadBonus    bool
	WinnerDebtBefore int64
}

// DebtOutcome is the resolved equalization: how much of the winner's old
// debt is wiped, what the winner owes afterwards, and what fresh debt the
// loser takes on.
type DebtOutcome struct {
	LoserAmount     int64
	Amortized       int64
	WinnerDebtAfter int64
	LoserDebtAdded  int64
}

// settlementAmount converts the in-game shortfall into real-money units: a
// fixed stake plus one unit per 100,000 the balance (and bonus, if any)
// could not absorb of the prize swing.
func settlementAmount(prize, balance int64, hadBonus bool) int64 {
	cushion := balance
	if hadBonus {
		cushion += BonusAmount
	}
	shortfall := float64(abs(prize)-cushion) / float64(debtUnitSize)
	if shortfall < 0 {
		shortfall = 0
	}

	return debtBaseUnits + int64(math.Round(shortfall))
}

// SettleDebt amortizes the winner's pre-existing debt against the loser's
// obligation first; only the remainder becomes new debt for the loser.
func SettleDebt(in DebtInput) DebtOutcome {
	loserAmount := settlementAmount(in.LoserPrize, in.LoserBalance, in.LoserHadBonus)

	amortized := min(in.WinnerDebtBefore, loserAmount)

	return DebtOutcome{
		LoserAmount:     loserAmount,
		Amortized:       amortized,
		WinnerDebtAfter: in.WinnerDebtBefore - amortized,
		LoserDebtAdded:  loserAmount - amortized,
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

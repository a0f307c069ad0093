package settlement

const (
	winnerBase = 1_000_000
	loserBase  = 500_000

	goalPenalty   = 50_000
	yellowPenalty = 20_000
	redPenalty    = 50_000
)

// Prizes holds the signed prize-money deltas for both sides. Values are not
// clamped here; flooring at zero happens only when applied to balances.
type Prizes struct {
	PrizeA int64
	PrizeB int64
}

// ComputePrizes maps the final score and disciplinary counts to each team's
// prize delta. A draw pays nothing to either side. The winner starts from a
// fixed pot and is docked for goals conceded and cards; the loser is charged
// a fixed stake plus surcharges for the winner's goals and its own cards.
func ComputePrizes(scoreA, scoreB, yellowA, redA, yellowB, redB int) Prizes {
	if scoreA == scoreB {
		return Prizes{}
	}

	winner := func(conceded, yellow, red int) int64 {
		return int64(winnerBase - goalPenalty*conceded - yellowPenalty*yellow - redPenalty*red)
	}
	loser := func(winnerGoals, yellow, red int) int64 {
		return -int64(loserBase + goalPenalty*winnerGoals + yellowPenalty*yellow + redPenalty*red)
	}

	if scoreA > scoreB {
		return Prizes{
			PrizeA: winner(scoreB, yellowA, redA),
			PrizeB: loser(scoreA, yellowB, redB),
		}
	}

	return Prizes{
		PrizeA: loser(scoreB, yellowA, redA),
		PrizeB: winner(scoreA, yellowB, redB),
	}
}

package settlement

import "github.com/fifahub/liga-tracker/internal/domain/match"

// BonusAmount is the fixed man-of-the-match award credited to the player's
// team.
const BonusAmount int64 = 100_000

// Bonuses holds the per-team bonus split. At most one side is non-zero.
type Bonuses struct {
	BonusA int64
	BonusB int64
}

// ComputeBonus awards the bonus to whichever roster contains the named
// player. An empty name or a player on neither roster awards nothing.
func ComputeBonus(manOfTheMatch string, rosterA, rosterB []string) Bonuses {
	if manOfTheMatch == "" {
		return Bonuses{}
	}
	for _, name := range rosterA {
		if name == manOfTheMatch {
			return Bonuses{BonusA: BonusAmount}
		}
	}
	for _, name := range rosterB {
		if name == manOfTheMatch {
			return Bonuses{BonusB: BonusAmount}
		}
	}

	return Bonuses{}
}

// BonusTeam resolves the bonus to a team label, or "" when neither side won
// it.
func (b Bonuses) BonusTeam() string {
	switch {
	case b.BonusA > 0:
		return match.TeamAEK
	case b.BonusB > 0:
		return match.TeamReal
	default:
		return ""
	}
}

package ban

import "fmt"

// Ban suspends a player for a number of matches. A ban is active while
// MatchesServed < TotalMatches; every settled match advances all active bans
// by one, regardless of which team the banned player belongs to.
type Ban struct {
	ID            int64
	PlayerID      int64
	Team          string
	Type          string
	TotalMatches  int
	MatchesServed int
	Reason        string
}

func (b Ban) Validate() error {
	if b.PlayerID == 0 {
		return fmt.Errorf("ban player is required")
	}
	if b.TotalMatches < 1 {
		return fmt.Errorf("ban must span at least one match")
	}
	if b.MatchesServed < 0 || b.MatchesServed > b.TotalMatches {
		return fmt.Errorf("served matches out of range: %d of %d", b.MatchesServed, b.TotalMatches)
	}

	return nil
}

// Active reports whether the ban still blocks the player.
func (b Ban) Active() bool {
	return b.MatchesServed < b.TotalMatches
}

package player

import "fmt"

// Player is one roster entry. Value is the transfer value in the virtual
// currency; Goals is the running career tally maintained by settlements.
type Player struct {
	ID       int64
	Name     string
	Team     string
	Position string
	Value    int64
	Goals    int
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Team == "" {
		return fmt.Errorf("player team is required")
	}
	if p.Value < 0 {
		return fmt.Errorf("player value cannot be negative")
	}

	return nil
}

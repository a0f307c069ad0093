package match

import (
	"fmt"
	"time"
)

const (
	TeamAEK  = "AEK"
	TeamReal = "Real"
)

// Scorer is one goal-scorer row of a match side.
type Scorer struct {
	Player string
	Goals  int
}

// Match is one completed head-to-head fixture between AEK and Real.
// PrizeA/PrizeB are computed at settlement time and persisted; they are the
// authoritative amounts used to undo the match's financial effect later.
type Match struct {
	ID            int64
	Date          time.Time
	TeamA         string
	TeamB         string
	ScoreA        int
	ScoreB        int
	ScorersA      []Scorer
	ScorersB      []Scorer
	YellowA       int
	RedA          int
	YellowB       int
	RedB          int
	ManOfTheMatch string
	PrizeA        int64
	PrizeB        int64
}

func (m Match) Validate() error {
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.TeamA != TeamAEK || m.TeamB != TeamReal {
		return fmt.Errorf("invalid team pairing: %s vs %s", m.TeamA, m.TeamB)
	}
	if m.ScoreA < 0 || m.ScoreB < 0 {
		return fmt.Errorf("scores cannot be negative: %d:%d", m.ScoreA, m.ScoreB)
	}
	if m.YellowA < 0 || m.RedA < 0 || m.YellowB < 0 || m.RedB < 0 {
		return fmt.Errorf("card counts cannot be negative")
	}
	for _, s := range append(append([]Scorer(nil), m.ScorersA...), m.ScorersB...) {
		if s.Player == "" {
			continue
		}
		if s.Goals < 1 {
			return fmt.Errorf("scorer %s must have at least one goal", s.Player)
		}
	}

	return nil
}

// Draw reports whether the match ended level.
func (m Match) Draw() bool {
	return m.ScoreA == m.ScoreB
}

// Winner returns the winning team label, or "" on a draw.
func (m Match) Winner() string {
	switch {
	case m.ScoreA > m.ScoreB:
		return TeamAEK
	case m.ScoreB > m.ScoreA:
		return TeamReal
	default:
		return ""
	}
}

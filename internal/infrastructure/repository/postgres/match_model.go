package postgres

import "time"

const (
	scorerSideA = "A"
	scorerSideB = "B"
)

type matchTableModel struct {
	ID            int64     `db:"id"`
	PlayedAt      time.Time `db:"played_at"`
	TeamA         string    `db:"team_a"`
	TeamB         string    `db:"team_b"`
	ScoreA        int       `db:"score_a"`
	ScoreB        int       `db:"score_b"`
	YellowA       int       `db:"yellow_a"`
	RedA          int       `db:"red_a"`
	YellowB       int       `db:"yellow_b"`
	RedB          int       `db:"red_b"`
	ManOfTheMatch string    `db:"man_of_the_match"`
	PrizeA        int64     `db:"prize_a"`
	PrizeB        int64     `db:"prize_b"`
}

type matchInsertModel struct {
	PlayedAt      time.Time `db:"played_at"`
	TeamA         string    `db:"team_a"`
	TeamB         string    `db:"team_b"`
	ScoreA        int       `db:"score_a"`
	ScoreB        int       `db:"score_b"`
	YellowA       int       `db:"yellow_a"`
	RedA          int       `db:"red_a"`
	YellowB       int       `db:"yellow_b"`
	RedB          int       `db:"red_b"`
	ManOfTheMatch string    `db:"man_of_the_match"`
	PrizeA        int64     `db:"prize_a"`
	PrizeB        int64     `db:"prize_b"`
}

type matchScorerTableModel struct {
	ID      int64  `db:"id"`
	MatchID int64  `db:"match_id"`
	Side    string `db:"side"`
	Player  string `db:"player"`
	Goals   int    `db:"goals"`
}

type matchScorerInsertModel struct {
	MatchID int64  `db:"match_id"`
	Side    string `db:"side"`
	Player  string `db:"player"`
	Goals   int    `db:"goals"`
}

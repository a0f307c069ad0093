package postgres

type banTableModel struct {
	ID            int64  `db:"id"`
	PlayerID      int64  `db:"player_id"`
	Team          string `db:"team"`
	Type          string `db:"ban_type"`
	TotalMatches  int    `db:"total_matches"`
	MatchesServed int    `db:"matches_served"`
	Reason        string `db:"reason"`
}

type banInsertModel struct {
	PlayerID      int64  `db:"player_id"`
	Team          string `db:"team"`
	Type          string `db:"ban_type"`
	TotalMatches  int    `db:"total_matches"`
	MatchesServed int    `db:"matches_served"`
	Reason        string `db:"reason"`
}

package postgres

type awardCountTableModel struct {
	Player string `db:"player"`
	Team   string `db:"team"`
	Count  int    `db:"award_count"`
}

package postgres

type playerTableModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Team     string `db:"team"`
	Position string `db:"position"`
	Value    int64  `db:"value"`
	Goals    int    `db:"goals"`
}

type playerInsertModel struct {
	Name     string `db:"name"`
	Team     string `db:"team"`
	Position string `db:"position"`
	Value    int64  `db:"value"`
	Goals    int    `db:"goals"`
}

package postgres

import (
	"database/sql"
	"time"
)

type teamFinanceTableModel struct {
	Team    string `db:"team"`
	Balance int64  `db:"balance"`
	Debt    int64  `db:"debt"`
}

type transactionTableModel struct {
	ID         int64         `db:"id"`
	Team       string        `db:"team"`
	Type       string        `db:"tx_type"`
	Amount     int64         `db:"amount"`
	RecordedAt time.Time     `db:"recorded_at"`
	MatchID    sql.NullInt64 `db:"match_id"`
	Info       string        `db:"info"`
}

type transactionInsertModel struct {
	Team       string        `db:"team"`
	Type       string        `db:"tx_type"`
	Amount     int64         `db:"amount"`
	RecordedAt time.Time     `db:"recorded_at"`
	MatchID    sql.NullInt64 `db:"match_id"`
	Info       string        `db:"info"`
}

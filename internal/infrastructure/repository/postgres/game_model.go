package postgres

import (
	"database/sql"
	"time"
)

type gameTableModel struct {
	ID        int64        `db:"id"`
	PublicID  string       `db:"public_id"`
	Week      int          `db:"week"`
	Season    int          `db:"season"`
	HomeTeam  string       `db:"home_team"`
	AwayTeam  string       `db:"away_team"`
	Winner    string       `db:"winner"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

type gameInsertModel struct {
	PublicID  string    `db:"public_id"`
	Week      int       `db:"week"`
	Season    int       `db:"season"`
	HomeTeam  string    `db:"home_team"`
	AwayTeam  string    `db:"away_team"`
	Winner    string    `db:"winner"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

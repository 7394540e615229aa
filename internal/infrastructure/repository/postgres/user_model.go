package postgres

import (
	"database/sql"
	"time"
)

type userTableModel struct {
	ID           int64        `db:"id"`
	PublicID     string       `db:"public_id"`
	Username     string       `db:"username"`
	PasswordHash string       `db:"password_hash"`
	IsAdmin      bool         `db:"is_admin"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
}

type userInsertModel struct {
	PublicID     string    `db:"public_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type userPickTableModel struct {
	UserID    string    `db:"user_public_id"`
	GameID    string    `db:"game_public_id"`
	Label     string    `db:"label"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

type userPickInsertModel struct {
	UserID   string `db:"user_public_id"`
	GameID   string `db:"game_public_id"`
	Label    string `db:"label"`
	Position int    `db:"position"`
}

package postgres

import "time"

type weeklyScoreTableModel struct {
	ID           int64     `db:"id"`
	UserID       string    `db:"user_public_id"`
	Week         int       `db:"week"`
	Season       int       `db:"season"`
	Score        int       `db:"score"`
	CalculatedAt time.Time `db:"calculated_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type weeklyScoreUpsertModel struct {
	UserID       string    `db:"user_public_id"`
	Week         int       `db:"week"`
	Season       int       `db:"season"`
	Score        int       `db:"score"`
	CalculatedAt time.Time `db:"calculated_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type seasonTotalTableModel struct {
	ID           int64     `db:"id"`
	UserID       string    `db:"user_public_id"`
	Season       int       `db:"season"`
	TotalScore   int       `db:"total_score"`
	CalculatedAt time.Time `db:"calculated_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type seasonTotalUpsertModel struct {
	UserID       string    `db:"user_public_id"`
	Season       int       `db:"season"`
	TotalScore   int       `db:"total_score"`
	CalculatedAt time.Time `db:"calculated_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

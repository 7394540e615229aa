package score

import (
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
)

// WeeklyScore is the number of correct picks a user made in one period.
// There is at most one per (user, week, season).
type WeeklyScore struct {
	UserID       string
	Week         int
	Season       int
	Score        int
	CalculatedAt time.Time
}

func (s WeeklyScore) Period() period.Period {
	return period.Period{Week: s.Week, Season: s.Season}
}

// SeasonTotal caches the sum of a user's weekly scores for a season.
type SeasonTotal struct {
	UserID       string
	Season       int
	TotalScore   int
	CalculatedAt time.Time
}

// Standing is one ranked leaderboard row.
type Standing struct {
	Rank        int
	UserID      string
	Username    string
	TotalScore  int
	WeeksScored int
}

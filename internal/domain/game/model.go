package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
)

// Game is one matchup on a week's slate. An empty Winner means the result
// has not been recorded yet.
type Game struct {
	ID        string
	Week      int
	Season    int
	HomeTeam  string
	AwayTeam  string
	Winner    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g Game) HasWinner() bool {
	return g.Winner != ""
}

func (g Game) Period() period.Period {
	return period.Period{Week: g.Week, Season: g.Season}
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("game id is required")
	}
	if strings.TrimSpace(g.HomeTeam) == "" {
		return fmt.Errorf("game home team is required")
	}
	if strings.TrimSpace(g.AwayTeam) == "" {
		return fmt.Errorf("game away team is required")
	}
	if strings.EqualFold(strings.TrimSpace(g.HomeTeam), strings.TrimSpace(g.AwayTeam)) {
		return fmt.Errorf("game home and away team must differ")
	}
	return nil
}

package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
)

var demoMatchups = [][2]string{
	{"Bears", "Packers"},
	{"Chiefs", "Raiders"},
	{"Cowboys", "Eagles"},
	{"49ers", "Seahawks"},
}

// SeedGames returns an unplayed demo slate for p so a fresh memory store
// has something to pick.
func SeedGames(p period.Period, now time.Time) []game.Game {
	out := make([]game.Game, 0, len(demoMatchups))
	for i, m := range demoMatchups {
		created := now.UTC().Add(time.Duration(i) * time.Second)
		out = append(out, game.Game{
			ID:        fmt.Sprintf("seed-%d-w%d-%d", p.Season, p.Week, i+1),
			Week:      p.Week,
			Season:    p.Season,
			HomeTeam:  m[0],
			AwayTeam:  m[1],
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return out
}

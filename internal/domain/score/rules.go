package score

import (
	"sort"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
)

// Tally is the outcome of matching one user's picks against a week's games.
type Tally struct {
	Points int
	// Unmatched counts picks whose game is not on the slate being scored.
	Unmatched int
}

// TallyWeek walks games and scores the first pick found for each one, so a
// game counts at most once. Games without a winner never match, not even a
// pick with an empty label.
func TallyWeek(picks []user.Pick, games []game.Game) Tally {
	firstPick := make(map[string]user.Pick, len(picks))
	for _, p := range picks {
		if _, seen := firstPick[p.GameID]; !seen {
			firstPick[p.GameID] = p
		}
	}

	var t Tally
	inScope := make(map[string]struct{}, len(games))
	for _, g := range games {
		inScope[g.ID] = struct{}{}
		p, ok := firstPick[g.ID]
		if !ok {
			continue
		}
		if g.HasWinner() && p.Label == g.Winner {
			t.Points++
		}
	}
	for _, p := range picks {
		if _, ok := inScope[p.GameID]; !ok {
			t.Unmatched++
		}
	}
	return t
}

// SumWeekly adds up every weekly score in scores.
func SumWeekly(scores []WeeklyScore) int {
	total := 0
	for _, s := range scores {
		total += s.Score
	}
	return total
}

// RankStandings sorts by total descending then username and assigns dense
// ranks: tied totals share a rank and the next distinct total takes the
// following rank.
func RankStandings(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalScore != standings[j].TotalScore {
			return standings[i].TotalScore > standings[j].TotalScore
		}
		if standings[i].Username != standings[j].Username {
			return standings[i].Username < standings[j].Username
		}
		return standings[i].UserID < standings[j].UserID
	})

	lastTotal := 0
	rank := 0
	for idx := range standings {
		if idx == 0 || standings[idx].TotalScore != lastTotal {
			rank++
			lastTotal = standings[idx].TotalScore
		}
		standings[idx].Rank = rank
	}
}

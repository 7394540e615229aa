package httpapi

import (
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/usecase"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type submitPicksRequest struct {
	Picks []pickDTO `json:"picks" validate:"dive"`
}

type addGameRequest struct {
	HomeTeam string `json:"home_team" validate:"required,max=64"`
	AwayTeam string `json:"away_team" validate:"required,max=64"`
	Week     int    `json:"week" validate:"omitempty"`
	Season   int    `json:"season" validate:"omitempty,gte=1900"`
}

type recordWinnerRequest struct {
	Winner string `json:"winner" validate:"required,max=64"`
}

type recomputeRequest struct {
	Week   int `json:"week"`
	Season int `json:"season" validate:"omitempty,gte=1900"`
}

type userDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type loginDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        userDTO   `json:"user"`
}

type periodDTO struct {
	Week   int `json:"week"`
	Season int `json:"season"`
}

type gameDTO struct {
	ID       string `json:"id"`
	Week     int    `json:"week"`
	Season   int    `json:"season"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Winner   string `json:"winner,omitempty"`
}

type pickDTO struct {
	GameID string `json:"game_id" validate:"required"`
	Label  string `json:"label"`
}

type currentPicksDTO struct {
	Period periodDTO `json:"period"`
	Games  []gameDTO `json:"games"`
	Picks  []pickDTO `json:"picks"`
}

type boardEntryDTO struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Picks    []pickDTO `json:"picks"`
	Score    *int      `json:"score,omitempty"`
}

type weekBoardDTO struct {
	Period  periodDTO       `json:"period"`
	Games   []gameDTO       `json:"games"`
	Entries []boardEntryDTO `json:"entries"`
}

type standingDTO struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	TotalScore  int    `json:"total_score"`
	WeeksScored int    `json:"weeks_scored"`
}

type seasonTotalDTO struct {
	UserID       string    `json:"user_id"`
	Season       int       `json:"season"`
	TotalScore   int       `json:"total_score"`
	CalculatedAt time.Time `json:"calculated_at"`
}

type seasonSummaryDTO struct {
	Season        int     `json:"season"`
	TotalScore    int     `json:"total_score"`
	WeeksScored   int     `json:"weeks_scored"`
	BestWeek      int     `json:"best_week,omitempty"`
	BestWeekScore int     `json:"best_week_score"`
	AverageScore  float64 `json:"average_score"`
	StoredTotal   *int    `json:"stored_total,omitempty"`
}

type gameListDTO struct {
	Period periodDTO `json:"period"`
	Games  []gameDTO `json:"games"`
}

type recomputeDTO struct {
	Period         periodDTO `json:"period"`
	UsersProcessed int       `json:"users_processed"`
	UnmatchedPicks int       `json:"unmatched_picks"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func periodToDTO(p period.Period) periodDTO {
	return periodDTO{Week: p.Week, Season: p.Season}
}

func gameToDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:       g.ID,
		Week:     g.Week,
		Season:   g.Season,
		HomeTeam: g.HomeTeam,
		AwayTeam: g.AwayTeam,
		Winner:   g.Winner,
	}
}

func gamesToDTO(games []game.Game) []gameDTO {
	out := make([]gameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, gameToDTO(g))
	}
	return out
}

func picksToDTO(picks []user.Pick) []pickDTO {
	out := make([]pickDTO, 0, len(picks))
	for _, p := range picks {
		out = append(out, pickDTO{GameID: p.GameID, Label: p.Label})
	}
	return out
}

func picksFromDTO(items []pickDTO) []user.Pick {
	out := make([]user.Pick, 0, len(items))
	for _, item := range items {
		out = append(out, user.Pick{GameID: item.GameID, Label: item.Label})
	}
	return out
}

func boardToDTO(board usecase.WeekBoard) weekBoardDTO {
	entries := make([]boardEntryDTO, 0, len(board.Entries))
	for _, entry := range board.Entries {
		item := boardEntryDTO{
			UserID:   entry.UserID,
			Username: entry.Username,
			Picks:    picksToDTO(entry.Picks),
		}
		if entry.Scored {
			points := entry.Score
			item.Score = &points
		}
		entries = append(entries, item)
	}

	return weekBoardDTO{
		Period:  periodToDTO(board.Period),
		Games:   gamesToDTO(board.Games),
		Entries: entries,
	}
}

func standingsToDTO(standings []score.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		out = append(out, standingDTO{
			Rank:        s.Rank,
			UserID:      s.UserID,
			Username:    s.Username,
			TotalScore:  s.TotalScore,
			WeeksScored: s.WeeksScored,
		})
	}
	return out
}

func seasonTotalsToDTO(totals []score.SeasonTotal) []seasonTotalDTO {
	out := make([]seasonTotalDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, seasonTotalDTO{
			UserID:       t.UserID,
			Season:       t.Season,
			TotalScore:   t.TotalScore,
			CalculatedAt: t.CalculatedAt,
		})
	}
	return out
}

func summaryToDTO(summary usecase.UserSeasonSummary) seasonSummaryDTO {
	out := seasonSummaryDTO{
		Season:        summary.Season,
		TotalScore:    summary.TotalScore,
		WeeksScored:   summary.WeeksScored,
		BestWeek:      summary.BestWeek,
		BestWeekScore: summary.BestWeekScore,
		AverageScore:  summary.AverageScore,
	}
	if summary.HasStoredTotal {
		stored := summary.StoredTotal
		out.StoredTotal = &stored
	}
	return out
}

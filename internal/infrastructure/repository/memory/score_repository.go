package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
)

type ScoreRepository struct {
	mu     sync.RWMutex
	weekly map[string]score.WeeklyScore
	totals map[string]score.SeasonTotal
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{
		weekly: make(map[string]score.WeeklyScore),
		totals: make(map[string]score.SeasonTotal),
	}
}

func (r *ScoreRepository) UpsertWeekly(_ context.Context, s score.WeeklyScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.weekly[weeklyKey(s.UserID, s.Week, s.Season)] = s
	return nil
}

func (r *ScoreRepository) ListWeeklyByUserSeason(_ context.Context, userID string, season int) ([]score.WeeklyScore, error) {
	return r.filterWeekly(func(s score.WeeklyScore) bool {
		return s.UserID == userID && s.Season == season
	}), nil
}

func (r *ScoreRepository) ListWeeklyByPeriod(_ context.Context, p period.Period) ([]score.WeeklyScore, error) {
	return r.filterWeekly(func(s score.WeeklyScore) bool {
		return s.Week == p.Week && s.Season == p.Season
	}), nil
}

func (r *ScoreRepository) ListWeeklyBySeason(_ context.Context, season int) ([]score.WeeklyScore, error) {
	return r.filterWeekly(func(s score.WeeklyScore) bool {
		return s.Season == season
	}), nil
}

func (r *ScoreRepository) UpsertSeasonTotal(_ context.Context, t score.SeasonTotal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totals[totalKey(t.UserID, t.Season)] = t
	return nil
}

func (r *ScoreRepository) GetSeasonTotal(_ context.Context, userID string, season int) (score.SeasonTotal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.totals[totalKey(userID, season)]
	return t, ok, nil
}

// ListSeasonTotals returns totals for season, highest first.
func (r *ScoreRepository) ListSeasonTotals(_ context.Context, season int) ([]score.SeasonTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]score.SeasonTotal, 0)
	for _, t := range r.totals {
		if t.Season == season {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (r *ScoreRepository) filterWeekly(keep func(score.WeeklyScore) bool) []score.WeeklyScore {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]score.WeeklyScore, 0)
	for _, s := range r.weekly {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

func weeklyKey(userID string, week, season int) string {
	return userID + "::" + strconv.Itoa(season) + "::" + strconv.Itoa(week)
}

func totalKey(userID string, season int) string {
	return userID + "::" + strconv.Itoa(season)
}

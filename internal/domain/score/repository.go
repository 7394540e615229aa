package score

import (
	"context"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
)

type Repository interface {
	UpsertWeekly(ctx context.Context, s WeeklyScore) error
	ListWeeklyByUserSeason(ctx context.Context, userID string, season int) ([]WeeklyScore, error)
	ListWeeklyByPeriod(ctx context.Context, p period.Period) ([]WeeklyScore, error)
	ListWeeklyBySeason(ctx context.Context, season int) ([]WeeklyScore, error)

	UpsertSeasonTotal(ctx context.Context, t SeasonTotal) error
	GetSeasonTotal(ctx context.Context, userID string, season int) (SeasonTotal, bool, error)
	ListSeasonTotals(ctx context.Context, season int) ([]SeasonTotal, error)
}

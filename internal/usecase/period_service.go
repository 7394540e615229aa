package usecase

import (
	"context"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
)

// PeriodService answers "which week is it" for the rest of the use cases.
type PeriodService struct {
	resolver period.Resolver
	clock    period.Clock
}

func NewPeriodService(resolver period.Resolver, clock period.Clock) *PeriodService {
	if clock == nil {
		clock = period.SystemClock{}
	}
	return &PeriodService{resolver: resolver, clock: clock}
}

func (s *PeriodService) Current(ctx context.Context) period.Period {
	_, span := startUsecaseSpan(ctx, "usecase.PeriodService.Current")
	defer span.End()

	return s.resolver.Current(s.clock)
}

// SeasonOrCurrent returns season, or the current season when season is not
// positive.
func (s *PeriodService) SeasonOrCurrent(ctx context.Context, season int) int {
	if season > 0 {
		return season
	}
	return s.Current(ctx).Season
}

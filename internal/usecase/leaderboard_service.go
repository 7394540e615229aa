package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/platform/cache"
)

type UserSeasonSummary struct {
	UserID         string
	Season         int
	TotalScore     int
	WeeksScored    int
	BestWeek       int
	BestWeekScore  int
	AverageScore   float64
	StoredTotal    int
	HasStoredTotal bool
}

// LeaderboardService reads standings. Standings are derived from weekly
// scores; stored season totals are exposed separately and treated as a cache.
type LeaderboardService struct {
	userRepo  user.Repository
	scoreRepo score.Repository
	periods   *PeriodService
	cache     *cache.Store
}

func NewLeaderboardService(
	userRepo user.Repository,
	scoreRepo score.Repository,
	periods *PeriodService,
	cacheStore *cache.Store,
) *LeaderboardService {
	return &LeaderboardService{
		userRepo:  userRepo,
		scoreRepo: scoreRepo,
		periods:   periods,
		cache:     cacheStore,
	}
}

// GetSeasonLeaderboard ranks every registered user for season. A season of
// zero means the current one.
func (s *LeaderboardService) GetSeasonLeaderboard(ctx context.Context, season int) ([]score.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetSeasonLeaderboard")
	defer span.End()

	if season < 0 {
		return nil, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}
	season = s.periods.SeasonOrCurrent(ctx, season)

	standings, err := cache.Load(ctx, s.cache, leaderboardCacheKey(season), func(ctx context.Context) ([]score.Standing, error) {
		return s.buildStandings(ctx, season)
	})
	if err != nil {
		return nil, err
	}
	return append([]score.Standing(nil), standings...), nil
}

func (s *LeaderboardService) GetSeasonTotals(ctx context.Context, season int) ([]score.SeasonTotal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetSeasonTotals")
	defer span.End()

	if season < 0 {
		return nil, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}
	season = s.periods.SeasonOrCurrent(ctx, season)

	totals, err := s.scoreRepo.ListSeasonTotals(ctx, season)
	if err != nil {
		return nil, storeFailure("list season totals", err)
	}
	return totals, nil
}

func (s *LeaderboardService) GetUserSeasonSummary(ctx context.Context, userID string, season int) (UserSeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetUserSeasonSummary")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return UserSeasonSummary{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if season < 0 {
		return UserSeasonSummary{}, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}
	season = s.periods.SeasonOrCurrent(ctx, season)

	weekly, err := s.scoreRepo.ListWeeklyByUserSeason(ctx, userID, season)
	if err != nil {
		return UserSeasonSummary{}, storeFailure("list weekly scores", err)
	}

	out := UserSeasonSummary{
		UserID:      userID,
		Season:      season,
		TotalScore:  score.SumWeekly(weekly),
		WeeksScored: len(weekly),
	}
	for idx, row := range weekly {
		if idx == 0 || row.Score > out.BestWeekScore {
			out.BestWeek = row.Week
			out.BestWeekScore = row.Score
		}
	}
	if out.WeeksScored > 0 {
		out.AverageScore = float64(out.TotalScore) / float64(out.WeeksScored)
	}

	stored, ok, err := s.scoreRepo.GetSeasonTotal(ctx, userID, season)
	if err != nil {
		return UserSeasonSummary{}, storeFailure("get season total", err)
	}
	out.StoredTotal = stored.TotalScore
	out.HasStoredTotal = ok
	return out, nil
}

func (s *LeaderboardService) buildStandings(ctx context.Context, season int) ([]score.Standing, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, storeFailure("list users", err)
	}
	weekly, err := s.scoreRepo.ListWeeklyBySeason(ctx, season)
	if err != nil {
		return nil, storeFailure("list weekly scores by season", err)
	}

	byUser := make(map[string]*score.Standing, len(users))
	standings := make([]score.Standing, len(users))
	for idx, u := range users {
		standings[idx] = score.Standing{UserID: u.ID, Username: u.Username}
		byUser[u.ID] = &standings[idx]
	}
	for _, row := range weekly {
		st, ok := byUser[row.UserID]
		if !ok {
			// Scores of deleted users are kept but not ranked.
			continue
		}
		st.TotalScore += row.Score
		st.WeeksScored++
	}

	score.RankStandings(standings)
	return standings, nil
}

func seasonCachePrefix(season int) string {
	return fmt.Sprintf("season:%d:", season)
}

func leaderboardCacheKey(season int) string {
	return seasonCachePrefix(season) + "leaderboard"
}

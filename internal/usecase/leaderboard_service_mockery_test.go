package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
	scoremock "github.com/riskibarqy/pickem-league/internal/mocks/domain/score"
	usermock "github.com/riskibarqy/pickem-league/internal/mocks/domain/user"
	"github.com/riskibarqy/pickem-league/internal/platform/cache"
)

func newMockLeaderboard(users *usermock.Repository, scores *scoremock.Repository, store *cache.Store) *LeaderboardService {
	return NewLeaderboardService(users, scores, fixedPeriods(time.Date(2024, 9, 18, 10, 0, 0, 0, time.UTC)), store)
}

func TestLeaderboardService_GetSeasonLeaderboard_DefaultsToCurrentSeasonUsingMockery(t *testing.T) {
	t.Parallel()

	users := usermock.NewRepository(t)
	scores := scoremock.NewRepository(t)
	users.On("List", mock.Anything).
		Return([]user.User{{ID: "u1", Username: "alice"}, {ID: "u2", Username: "bob"}}, nil).
		Once()
	scores.On("ListWeeklyBySeason", mock.Anything, 2024).
		Return([]score.WeeklyScore{
			{UserID: "u2", Week: 1, Season: 2024, Score: 3},
			{UserID: "ghost", Week: 1, Season: 2024, Score: 9},
		}, nil).
		Once()

	got, err := newMockLeaderboard(users, scores, nil).GetSeasonLeaderboard(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "u2", got[0].UserID)
	require.Equal(t, 1, got[0].Rank)
	require.Equal(t, 0, got[1].TotalScore)
}

func TestLeaderboardService_GetSeasonLeaderboard_StoreFailureIsNotCachedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := usermock.NewRepository(t)
	scores := scoremock.NewRepository(t)
	store := cache.NewStore(time.Minute)
	users.On("List", mock.Anything).Return([]user.User(nil), errors.New("conn reset")).Once()

	_, err := newMockLeaderboard(users, scores, store).GetSeasonLeaderboard(ctx, 2024)
	require.True(t, IsStoreFailure(err), "expected store failure, got %v", err)

	_, cached := store.Get(ctx, leaderboardCacheKey(2024))
	require.False(t, cached)
}

func TestLeaderboardService_GetSeasonTotals_StoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	scores := scoremock.NewRepository(t)
	scores.On("ListSeasonTotals", mock.Anything, 2023).
		Return([]score.SeasonTotal(nil), errors.New("timeout")).
		Once()

	_, err := newMockLeaderboard(usermock.NewRepository(t), scores, nil).GetSeasonTotals(context.Background(), 2023)
	require.True(t, IsStoreFailure(err), "expected store failure, got %v", err)
}

func TestLeaderboardService_GetUserSeasonSummary_ReportsStoredTotalUsingMockery(t *testing.T) {
	t.Parallel()

	scores := scoremock.NewRepository(t)
	scores.On("ListWeeklyByUserSeason", mock.Anything, "u1", 2024).
		Return([]score.WeeklyScore{{UserID: "u1", Week: 2, Season: 2024, Score: 4}}, nil).
		Once()
	scores.On("GetSeasonTotal", mock.Anything, "u1", 2024).
		Return(score.SeasonTotal{UserID: "u1", Season: 2024, TotalScore: 7}, true, nil).
		Once()

	got, err := newMockLeaderboard(usermock.NewRepository(t), scores, nil).GetUserSeasonSummary(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Equal(t, 4, got.TotalScore)
	require.Equal(t, 7, got.StoredTotal)
	require.True(t, got.HasStoredTotal)
}

func TestLeaderboardService_RejectsNegativeSeason(t *testing.T) {
	t.Parallel()

	svc := newMockLeaderboard(usermock.NewRepository(t), scoremock.NewRepository(t), nil)
	_, err := svc.GetSeasonLeaderboard(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.GetSeasonTotals(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pickem-league/internal/platform/cache"
)

func seedLeaderboard(t *testing.T) (*memory.UserRepository, *memory.ScoreRepository) {
	t.Helper()

	ctx := context.Background()
	users := memory.NewUserRepository(
		user.User{ID: "u1", Username: "carol", PasswordHash: "h", Picks: []user.Pick{{GameID: "g1", Label: "Bears"}}},
		user.User{ID: "u2", Username: "alice", PasswordHash: "h"},
		user.User{ID: "u3", Username: "bob", PasswordHash: "h"},
	)
	scores := memory.NewScoreRepository()
	rows := []score.WeeklyScore{
		{UserID: "u1", Week: 3, Season: 2024, Score: 2},
		{UserID: "u1", Week: 4, Season: 2024, Score: 1},
		{UserID: "u2", Week: 3, Season: 2024, Score: 3},
		{UserID: "u3", Week: 3, Season: 2024, Score: 1},
		{UserID: "u3", Week: 3, Season: 2023, Score: 9},
	}
	for _, row := range rows {
		if err := scores.UpsertWeekly(ctx, row); err != nil {
			t.Fatalf("seed weekly: %v", err)
		}
	}
	return users, scores
}

func TestLeaderboardService_GetSeasonLeaderboard_DenseRankFromWeeklyScores(t *testing.T) {
	t.Parallel()

	users, scores := seedLeaderboard(t)
	svc := NewLeaderboardService(users, scores, fixedPeriods(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)), cache.NewStore(time.Minute))

	got, err := svc.GetSeasonLeaderboard(context.Background(), 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	want := []score.Standing{
		{Rank: 1, UserID: "u2", Username: "alice", TotalScore: 3, WeeksScored: 1},
		{Rank: 1, UserID: "u1", Username: "carol", TotalScore: 3, WeeksScored: 2},
		{Rank: 2, UserID: "u3", Username: "bob", TotalScore: 1, WeeksScored: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("standings mismatch (-want +got):\n%s", diff)
	}
}

func TestLeaderboardService_GetSeasonLeaderboard_CachedUntilInvalidated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users, scores := seedLeaderboard(t)
	store := cache.NewStore(time.Minute)
	svc := NewLeaderboardService(users, scores, fixedPeriods(time.Now()), store)

	if _, err := svc.GetSeasonLeaderboard(ctx, 2024); err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	_ = scores.UpsertWeekly(ctx, score.WeeklyScore{UserID: "u3", Week: 5, Season: 2024, Score: 10})

	cached, _ := svc.GetSeasonLeaderboard(ctx, 2024)
	if cached[0].UserID == "u3" {
		t.Fatalf("expected cached standings before invalidation")
	}

	store.DeletePrefix(ctx, seasonCachePrefix(2024))
	fresh, _ := svc.GetSeasonLeaderboard(ctx, 2024)
	if fresh[0].UserID != "u3" || fresh[0].TotalScore != 11 {
		t.Fatalf("expected fresh standings after invalidation, got %+v", fresh[0])
	}
}

func TestLeaderboardService_GetUserSeasonSummary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users, scores := seedLeaderboard(t)
	_ = scores.UpsertSeasonTotal(ctx, score.SeasonTotal{UserID: "u1", Season: 2024, TotalScore: 3})
	svc := NewLeaderboardService(users, scores, fixedPeriods(time.Now()), nil)

	got, err := svc.GetUserSeasonSummary(ctx, "u1", 2024)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := UserSeasonSummary{
		UserID:         "u1",
		Season:         2024,
		TotalScore:     3,
		WeeksScored:    2,
		BestWeek:       3,
		BestWeekScore:  2,
		AverageScore:   1.5,
		StoredTotal:    3,
		HasStoredTotal: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	if _, err := svc.GetUserSeasonSummary(ctx, " ", 2024); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBoardService_GetWeekBoard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users, scores := seedLeaderboard(t)
	games := memory.NewGameRepository(
		game.Game{ID: "g1", Week: 3, Season: 2024, HomeTeam: "Bears", AwayTeam: "Packers", Winner: "Bears"},
		game.Game{ID: "g9", Week: 9, Season: 2024, HomeTeam: "Jets", AwayTeam: "Bills"},
	)
	svc := NewBoardService(users, games, scores, fixedPeriods(time.Date(2024, 9, 19, 0, 0, 0, 0, time.UTC)))

	board, err := svc.GetWeekBoard(ctx)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if board.Period != (period.Period{Week: 3, Season: 2024}) {
		t.Fatalf("unexpected period: %s", board.Period)
	}
	if len(board.Games) != 1 || len(board.Entries) != 3 {
		t.Fatalf("unexpected board shape: games=%d entries=%d", len(board.Games), len(board.Entries))
	}

	byUser := make(map[string]BoardEntry, len(board.Entries))
	for _, entry := range board.Entries {
		byUser[entry.UserID] = entry
	}
	carol := byUser["u1"]
	if len(carol.Picks) != 1 || carol.Score != 2 || !carol.Scored {
		t.Fatalf("unexpected entry for carol: %+v", carol)
	}
}

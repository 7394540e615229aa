package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pickem-league/internal/platform/cache"
	"github.com/riskibarqy/pickem-league/internal/platform/logging"
)

// slowSeasonScores snapshots weekly scores, then holds the first season read
// open until release is closed.
type slowSeasonScores struct {
	score.Repository
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (s *slowSeasonScores) ListWeeklyBySeason(ctx context.Context, season int) ([]score.WeeklyScore, error) {
	rows, err := s.Repository.ListWeeklyBySeason(ctx, season)
	first := false
	s.once.Do(func() { first = true })
	if first {
		close(s.started)
		<-s.release
	}
	return rows, err
}

func TestLeaderboardService_LoadSpanningRecomputeIsNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := memory.NewUserRepository(user.User{ID: "u1", Username: "alice", PasswordHash: "h", Picks: []user.Pick{{GameID: "g1", Label: "Bears"}}})
	games := memory.NewGameRepository(game.Game{ID: "g1", Week: 3, Season: 2024, HomeTeam: "Bears", AwayTeam: "Packers", Winner: "Bears"})
	base := memory.NewScoreRepository()
	slow := &slowSeasonScores{Repository: base, started: make(chan struct{}), release: make(chan struct{})}
	store := cache.NewStore(time.Minute)

	board := NewLeaderboardService(users, slow, fixedPeriods(time.Date(2024, 9, 18, 10, 0, 0, 0, time.UTC)), store)
	scorer := NewScoringService(users, games, base, nil, store, nil, ScoringConfig{}, logging.NewNop())

	early := make(chan []score.Standing, 1)
	go func() {
		standings, _ := board.GetSeasonLeaderboard(ctx, 2024)
		early <- standings
	}()
	<-slow.started

	if _, err := scorer.RecomputeScores(ctx, week3); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	close(slow.release)
	if got := <-early; len(got) != 1 || got[0].TotalScore != 0 {
		t.Fatalf("expected the early read to see pre-recompute standings, got %+v", got)
	}

	got, err := board.GetSeasonLeaderboard(ctx, 2024)
	if err != nil {
		t.Fatalf("leaderboard after recompute: %v", err)
	}
	if len(got) != 1 || got[0].TotalScore != 1 {
		t.Fatalf("expected recomputed standings, got %+v", got)
	}
}

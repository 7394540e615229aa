package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
)

func TestUserRepository_CreateRejectsDuplicateUsername(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository()
	if err := repo.Create(ctx, user.User{ID: "u1", Username: "alice", PasswordHash: "h"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, user.User{ID: "u2", Username: "alice", PasswordHash: "h"})
	if !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserRepository_ReplacePicksClones(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(user.User{ID: "u1", Username: "alice", PasswordHash: "h", Picks: []user.Pick{{GameID: "old", Label: "x"}}})

	picks := []user.Pick{{GameID: "g1", Label: "Bears"}}
	if err := repo.ReplacePicks(ctx, "u1", picks); err != nil {
		t.Fatalf("replace picks: %v", err)
	}
	picks[0].Label = "mutated"

	got, ok, err := repo.GetByID(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("get user: ok=%t err=%v", ok, err)
	}
	if len(got.Picks) != 1 || got.Picks[0].Label != "Bears" {
		t.Fatalf("unexpected picks: %+v", got.Picks)
	}
}

func TestGameRepository_ListByPeriodAndSetWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := period.Period{Week: 3, Season: 2024}
	repo := NewGameRepository(SeedGames(p, time.Date(2024, 9, 17, 0, 0, 0, 0, time.UTC))...)

	games, err := repo.ListByPeriod(ctx, p)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != len(demoMatchups) {
		t.Fatalf("unexpected game count: got=%d want=%d", len(games), len(demoMatchups))
	}

	ok, err := repo.SetWinner(ctx, games[0].ID, games[0].HomeTeam)
	if err != nil || !ok {
		t.Fatalf("set winner: ok=%t err=%v", ok, err)
	}
	updated, _, _ := repo.GetByID(ctx, games[0].ID)
	if updated.Winner != games[0].HomeTeam {
		t.Fatalf("unexpected winner: %q", updated.Winner)
	}

	ok, err = repo.SetWinner(ctx, "missing", "x")
	if err != nil || ok {
		t.Fatalf("expected missing game to report false, ok=%t err=%v", ok, err)
	}

	other, _ := repo.ListByPeriod(ctx, period.Period{Week: 4, Season: 2024})
	if len(other) != 0 {
		t.Fatalf("expected no games in week 4, got %d", len(other))
	}
}

func TestScoreRepository_UpsertIsKeyedByPeriod(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository()
	_ = repo.UpsertWeekly(ctx, score.WeeklyScore{UserID: "u1", Week: 3, Season: 2024, Score: 1})
	_ = repo.UpsertWeekly(ctx, score.WeeklyScore{UserID: "u1", Week: 3, Season: 2024, Score: 2})
	_ = repo.UpsertWeekly(ctx, score.WeeklyScore{UserID: "u1", Week: 4, Season: 2024, Score: 1})
	_ = repo.UpsertWeekly(ctx, score.WeeklyScore{UserID: "u1", Week: 3, Season: 2025, Score: 9})

	rows, err := repo.ListWeeklyByUserSeason(ctx, "u1", 2024)
	if err != nil {
		t.Fatalf("list weekly: %v", err)
	}
	if len(rows) != 2 || rows[0].Score != 2 || rows[1].Week != 4 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

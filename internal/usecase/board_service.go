package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
)

// WeekBoard is everyone's picks for the current slate.
type WeekBoard struct {
	Period  period.Period
	Games   []game.Game
	Entries []BoardEntry
}

type BoardEntry struct {
	UserID   string
	Username string
	// Picks holds only picks for games on the board, in board order.
	Picks  []user.Pick
	Score  int
	Scored bool
}

type BoardService struct {
	userRepo  user.Repository
	gameRepo  game.Repository
	scoreRepo score.Repository
	periods   *PeriodService
}

func NewBoardService(
	userRepo user.Repository,
	gameRepo game.Repository,
	scoreRepo score.Repository,
	periods *PeriodService,
) *BoardService {
	return &BoardService{
		userRepo:  userRepo,
		gameRepo:  gameRepo,
		scoreRepo: scoreRepo,
		periods:   periods,
	}
}

func (s *BoardService) GetWeekBoard(ctx context.Context) (WeekBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.GetWeekBoard")
	defer span.End()

	current := s.periods.Current(ctx)

	var (
		games  []game.Game
		users  []user.User
		weekly []score.WeeklyScore
	)
	reads := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	reads.Go(func(ctx context.Context) error {
		var err error
		games, err = s.gameRepo.ListByPeriod(ctx, current)
		return storeFailure("list games by period", err)
	})
	reads.Go(func(ctx context.Context) error {
		var err error
		users, err = s.userRepo.List(ctx)
		return storeFailure("list users", err)
	})
	reads.Go(func(ctx context.Context) error {
		var err error
		weekly, err = s.scoreRepo.ListWeeklyByPeriod(ctx, current)
		return storeFailure("list weekly scores by period", err)
	})
	if err := reads.Wait(); err != nil {
		return WeekBoard{}, err
	}

	scores := make(map[string]int, len(weekly))
	for _, row := range weekly {
		scores[row.UserID] = row.Score
	}

	board := WeekBoard{
		Period:  current,
		Games:   games,
		Entries: make([]BoardEntry, 0, len(users)),
	}
	for _, u := range users {
		entry := BoardEntry{UserID: u.ID, Username: u.Username}
		for _, g := range games {
			if p, ok := u.PickFor(g.ID); ok {
				entry.Picks = append(entry.Picks, p)
			}
		}
		entry.Score, entry.Scored = scores[u.ID]
		board.Entries = append(board.Entries, entry)
	}
	return board, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/platform/id"
	"github.com/riskibarqy/pickem-league/internal/platform/logging"
)

// ScoreRecomputer reruns scoring for one period.
type ScoreRecomputer interface {
	RecomputeScores(ctx context.Context, p period.Period) (RecomputeResult, error)
}

type AddGameInput struct {
	HomeTeam string
	AwayTeam string
	// Week and Season default to the current period when both are zero.
	Week   int
	Season int
}

type GameService struct {
	gameRepo game.Repository
	scorer   ScoreRecomputer
	periods  *PeriodService
	ids      id.Generator
	policy   period.WeekPolicy
	logger   *logging.Logger
	now      func() time.Time
}

func NewGameService(
	gameRepo game.Repository,
	scorer ScoreRecomputer,
	periods *PeriodService,
	ids id.Generator,
	policy period.WeekPolicy,
	logger *logging.Logger,
) *GameService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &GameService{
		gameRepo: gameRepo,
		scorer:   scorer,
		periods:  periods,
		ids:      ids,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *GameService) AddGame(ctx context.Context, input AddGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.AddGame")
	defer span.End()

	target, err := s.resolvePeriod(ctx, input.Week, input.Season)
	if err != nil {
		return game.Game{}, err
	}
	if err := s.policy.Validate(target); err != nil {
		return game.Game{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	gameID, err := s.ids.NewID()
	if err != nil {
		return game.Game{}, fmt.Errorf("generate game id: %w", err)
	}
	now := s.now().UTC()
	g := game.Game{
		ID:        gameID,
		Week:      target.Week,
		Season:    target.Season,
		HomeTeam:  strings.TrimSpace(input.HomeTeam),
		AwayTeam:  strings.TrimSpace(input.AwayTeam),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := g.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.gameRepo.Create(ctx, g); err != nil {
		return game.Game{}, storeFailure("create game", err)
	}
	return g, nil
}

// ListGames lists the slate of one period. Zero week and season mean the
// current period.
func (s *GameService) ListGames(ctx context.Context, week, season int) (period.Period, []game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	target, err := s.resolvePeriod(ctx, week, season)
	if err != nil {
		return period.Period{}, nil, err
	}
	games, err := s.gameRepo.ListByPeriod(ctx, target)
	if err != nil {
		return period.Period{}, nil, storeFailure("list games by period", err)
	}
	return target, games, nil
}

// DeleteGame removes a game. When the game already had a winner its period
// is rescored so totals stop counting it.
func (s *GameService) DeleteGame(ctx context.Context, gameID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.DeleteGame")
	defer span.End()

	g, err := s.loadGame(ctx, gameID)
	if err != nil {
		return err
	}

	deleted, err := s.gameRepo.Delete(ctx, g.ID)
	if err != nil {
		return storeFailure("delete game", err)
	}
	if !deleted {
		return fmt.Errorf("%w: game=%s", ErrNotFound, g.ID)
	}

	if g.HasWinner() {
		if _, err := s.scorer.RecomputeScores(ctx, g.Period()); err != nil {
			return fmt.Errorf("recompute scores after delete: %w", err)
		}
	}
	return nil
}

// RecordWinner stores the winning label of a game and rescores the game's
// period. Failures from either step are returned as is.
func (s *GameService) RecordWinner(ctx context.Context, gameID, winner string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.RecordWinner")
	defer span.End()

	winner = strings.TrimSpace(winner)
	if winner == "" {
		return fmt.Errorf("%w: winner is required", ErrInvalidInput)
	}
	g, err := s.loadGame(ctx, gameID)
	if err != nil {
		return err
	}

	updated, err := s.gameRepo.SetWinner(ctx, g.ID, winner)
	if err != nil {
		return storeFailure("set game winner", err)
	}
	if !updated {
		return fmt.Errorf("%w: game=%s", ErrNotFound, g.ID)
	}

	result, err := s.scorer.RecomputeScores(ctx, g.Period())
	if err != nil {
		s.logger.WarnContext(ctx, "recompute after winner recorded failed",
			"game_id", g.ID,
			"week", g.Week,
			"season", g.Season,
			"error", err,
		)
		return fmt.Errorf("recompute scores: %w", err)
	}

	s.logger.InfoContext(ctx, "game winner recorded",
		"game_id", g.ID,
		"winner", winner,
		"users_processed", result.UsersProcessed,
		"unmatched_picks", result.UnmatchedPicks,
	)
	return nil
}

// Recompute rescores an explicit period on operator request.
func (s *GameService) Recompute(ctx context.Context, week, season int) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Recompute")
	defer span.End()

	target, err := s.resolvePeriod(ctx, week, season)
	if err != nil {
		return RecomputeResult{}, err
	}
	return s.scorer.RecomputeScores(ctx, target)
}

func (s *GameService) loadGame(ctx context.Context, gameID string) (game.Game, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	g, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, storeFailure("get game", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}
	return g, nil
}

func (s *GameService) resolvePeriod(ctx context.Context, week, season int) (period.Period, error) {
	switch {
	case week == 0 && season == 0:
		return s.periods.Current(ctx), nil
	case season <= 0:
		return period.Period{}, fmt.Errorf("%w: season is required with week", ErrInvalidInput)
	default:
		return period.Period{Week: week, Season: season}, nil
	}
}

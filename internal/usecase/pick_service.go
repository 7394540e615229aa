package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
)

type CurrentPicks struct {
	Period period.Period
	Games  []game.Game
	// Picks are the caller's picks for Games, in game order.
	Picks []user.Pick
}

type PickService struct {
	userRepo user.Repository
	gameRepo game.Repository
	periods  *PeriodService
}

func NewPickService(userRepo user.Repository, gameRepo game.Repository, periods *PeriodService) *PickService {
	return &PickService{
		userRepo: userRepo,
		gameRepo: gameRepo,
		periods:  periods,
	}
}

func (s *PickService) GetCurrentPicks(ctx context.Context, userID string) (CurrentPicks, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.GetCurrentPicks")
	defer span.End()

	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return CurrentPicks{}, err
	}

	current := s.periods.Current(ctx)
	games, err := s.gameRepo.ListByPeriod(ctx, current)
	if err != nil {
		return CurrentPicks{}, storeFailure("list games by period", err)
	}

	out := CurrentPicks{Period: current, Games: games, Picks: make([]user.Pick, 0, len(games))}
	for _, g := range games {
		if p, ok := u.PickFor(g.ID); ok {
			out.Picks = append(out.Picks, p)
		}
	}
	return out, nil
}

// SubmitPicks replaces every stored pick of the user with picks. Picks with
// an empty label are dropped, matching a form where unanswered games are
// simply not sent.
func (s *PickService) SubmitPicks(ctx context.Context, userID string, picks []user.Pick) ([]user.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.SubmitPicks")
	defer span.End()

	cleaned := make([]user.Pick, 0, len(picks))
	for _, p := range picks {
		p.GameID = strings.TrimSpace(p.GameID)
		p.Label = strings.TrimSpace(p.Label)
		if p.Label == "" {
			continue
		}
		cleaned = append(cleaned, p)
	}
	if err := user.ValidatePicks(cleaned); err != nil {
		if errors.Is(err, user.ErrDuplicatePick) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.loadUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.userRepo.ReplacePicks(ctx, strings.TrimSpace(userID), cleaned); err != nil {
		return nil, storeFailure("replace picks", err)
	}
	return cleaned, nil
}

func (s *PickService) loadUser(ctx context.Context, userID string) (user.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, storeFailure("get user", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return u, nil
}

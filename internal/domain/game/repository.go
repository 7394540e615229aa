package game

import (
	"context"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
)

type Repository interface {
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	ListByPeriod(ctx context.Context, p period.Period) ([]Game, error)
	Create(ctx context.Context, g Game) error
	// SetWinner reports false when the game does not exist.
	SetWinner(ctx context.Context, gameID, winner string) (bool, error)
	Delete(ctx context.Context, gameID string) (bool, error)
}

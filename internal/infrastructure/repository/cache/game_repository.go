package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	basecache "github.com/riskibarqy/pickem-league/internal/platform/cache"
)

const gameKeyPrefix = "game:"

// GameRepository serves slate reads from the shared store. Single game
// lookups are not cached. Any write drops every cached game entry.
type GameRepository struct {
	next  game.Repository
	cache *basecache.Store
}

func NewGameRepository(next game.Repository, cache *basecache.Store) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

// GetByID always reads the backing repository.
func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	return r.next.GetByID(ctx, gameID)
}

func (r *GameRepository) ListByPeriod(ctx context.Context, p period.Period) ([]game.Game, error) {
	key := gameKeyPrefix + "period:" + strconv.Itoa(p.Season) + ":" + strconv.Itoa(p.Week)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]game.Game, error) {
		items, err := r.next.ListByPeriod(ctx, p)
		if err != nil {
			return nil, err
		}
		return append([]game.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]game.Game(nil), items...), nil
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) error {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, g)
}

func (r *GameRepository) SetWinner(ctx context.Context, gameID, winner string) (bool, error) {
	defer r.invalidate(ctx)
	return r.next.SetWinner(ctx, gameID, winner)
}

func (r *GameRepository) Delete(ctx context.Context, gameID string) (bool, error) {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, gameID)
}

func (r *GameRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, gameKeyPrefix)
}

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
)

type GameRepository struct {
	mu    sync.RWMutex
	items map[string]game.Game
	now   func() time.Time
}

func NewGameRepository(seed ...game.Game) *GameRepository {
	r := &GameRepository{
		items: make(map[string]game.Game, len(seed)),
		now:   time.Now,
	}
	for _, g := range seed {
		r.items[g.ID] = g
	}
	return r
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[gameID]
	return g, ok, nil
}

func (r *GameRepository) ListByPeriod(_ context.Context, p period.Period) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, g := range r.items {
		if g.Week == p.Week && g.Season == p.Season {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *GameRepository) Create(_ context.Context, g game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[g.ID]; exists {
		return fmt.Errorf("game id %s already exists", g.ID)
	}
	r.items[g.ID] = g
	return nil
}

func (r *GameRepository) SetWinner(_ context.Context, gameID, winner string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.items[gameID]
	if !ok {
		return false, nil
	}
	g.Winner = winner
	g.UpdatedAt = r.now().UTC()
	r.items[gameID] = g
	return true, nil
}

func (r *GameRepository) Delete(_ context.Context, gameID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[gameID]; !ok {
		return false, nil
	}
	delete(r.items, gameID)
	return true, nil
}

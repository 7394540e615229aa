package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/pickem-league/internal/domain/user"
)

type UserRepository struct {
	mu         sync.RWMutex
	items      map[string]user.User
	byUsername map[string]string
}

func NewUserRepository(seed ...user.User) *UserRepository {
	r := &UserRepository{
		items:      make(map[string]user.User),
		byUsername: make(map[string]string),
	}
	for _, u := range seed {
		r.items[u.ID] = cloneUser(u)
		r.byUsername[u.Username] = u.ID
	}
	return r
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(u), true, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byUsername[username]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(r.items[userID]), true, nil
}

// List returns users in registration order.
func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[u.Username]; exists {
		return fmt.Errorf("%w: %s", user.ErrUsernameTaken, u.Username)
	}
	if _, exists := r.items[u.ID]; exists {
		return fmt.Errorf("user id %s already exists", u.ID)
	}

	r.items[u.ID] = cloneUser(u)
	r.byUsername[u.Username] = u.ID
	return nil
}

func (r *UserRepository) ReplacePicks(_ context.Context, userID string, picks []user.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	u.Picks = append([]user.Pick(nil), picks...)
	r.items[userID] = u
	return nil
}

func (r *UserRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[userID]
	if !ok {
		return nil
	}
	delete(r.byUsername, u.Username)
	delete(r.items, userID)
	return nil
}

func cloneUser(u user.User) user.User {
	copied := u
	copied.Picks = append([]user.Pick(nil), u.Picks...)
	return copied
}

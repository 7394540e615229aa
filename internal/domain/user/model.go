package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrDuplicatePick = errors.New("duplicate pick for game")

// User is a registered player of the pick'em league.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
	Picks        []Pick
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Pick is a user's predicted winner label for one game. Picks are not
// scoped to a period; a pick referencing a game outside the scored period
// is simply never matched.
type Pick struct {
	GameID string
	Label  string
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID   string
	Username string
	IsAdmin  bool
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	return ValidatePicks(u.Picks)
}

// PickFor returns the user's pick for gameID.
func (u User) PickFor(gameID string) (Pick, bool) {
	for _, p := range u.Picks {
		if p.GameID == gameID {
			return p, true
		}
	}
	return Pick{}, false
}

// ValidatePicks enforces at most one pick per game.
func ValidatePicks(picks []Pick) error {
	seen := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		if strings.TrimSpace(p.GameID) == "" {
			return fmt.Errorf("pick game id is required")
		}
		if _, exists := seen[p.GameID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicatePick, p.GameID)
		}
		seen[p.GameID] = struct{}{}
	}
	return nil
}

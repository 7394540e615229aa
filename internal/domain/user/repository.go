package user

import (
	"context"
	"errors"
)

var ErrUsernameTaken = errors.New("username already taken")

type Repository interface {
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	// Create returns ErrUsernameTaken when the username already exists.
	Create(ctx context.Context, u User) error
	// ReplacePicks overwrites the user's picks wholesale.
	ReplacePicks(ctx context.Context, userID string, picks []Pick) error
	Delete(ctx context.Context, userID string) error
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pickem-league/internal/platform/id"
	"github.com/riskibarqy/pickem-league/internal/platform/logging"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "plain:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "plain:"+password {
		return fmt.Errorf("%w: password mismatch", ErrUnauthorized)
	}
	return nil
}

type stubIssuer struct{}

func (stubIssuer) Issue(p user.Principal) (AccessToken, error) {
	return AccessToken{Token: "token-" + p.UserID, ExpiresAt: time.Unix(100, 0)}, nil
}

func newTestAuthService(repo user.Repository) *AuthService {
	return NewAuthService(repo, plainHasher{}, stubIssuer{}, id.NewSequenceGenerator("user"), []string{" Commish "}, logging.NewNop())
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewUserRepository()
	svc := newTestAuthService(repo)

	u, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID != "user-1" || u.IsAdmin || u.PasswordHash != "plain:secret1" {
		t.Fatalf("unexpected user: %+v", u)
	}

	got, err := svc.Login(ctx, "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Token != "token-user-1" || got.Principal.Username != "alice" {
		t.Fatalf("unexpected login result: %+v", got)
	}

	if _, err := svc.Login(ctx, "alice", "wrong-pass"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody", "secret1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}
}

func TestAuthService_Register_AdminAndConflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestAuthService(memory.NewUserRepository())

	admin, err := svc.Register(ctx, RegisterInput{Username: "commish", Password: "secret1"})
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatalf("expected configured username to become admin")
	}

	_, err = svc.Register(ctx, RegisterInput{Username: "commish", Password: "another1"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(memory.NewUserRepository())
	cases := []RegisterInput{
		{Username: "al", Password: "secret1"},
		{Username: strings.Repeat("a", 33), Password: "secret1"},
		{Username: "bad name", Password: "secret1"},
		{Username: "alice", Password: "123"},
	}
	for _, input := range cases {
		if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/platform/id"
	"github.com/riskibarqy/pickem-league/internal/platform/logging"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,32}$`)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrUnauthorized when password does not match hash.
	Compare(hash, password string) error
}

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(principal user.Principal) (AccessToken, error)
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken
	Principal user.Principal
}

type AuthService struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	ids      id.Generator
	admins   map[string]struct{}
	logger   *logging.Logger
	now      func() time.Time
}

func NewAuthService(
	userRepo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	ids id.Generator,
	adminUsernames []string,
	logger *logging.Logger,
) *AuthService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	admins := make(map[string]struct{}, len(adminUsernames))
	for _, name := range adminUsernames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			admins[name] = struct{}{}
		}
	}

	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		ids:      ids,
		admins:   admins,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	username := strings.TrimSpace(input.Username)
	if !usernamePattern.MatchString(username) {
		return user.User{}, fmt.Errorf("%w: username must be 3-32 letters, digits, '.', '_' or '-'", ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength || len(input.Password) > maxPasswordLength {
		return user.User{}, fmt.Errorf("%w: password must be %d-%d characters", ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}

	_, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, storeFailure("get user by username", err)
	}
	if exists {
		return user.User{}, fmt.Errorf("%w: username %s is taken", ErrConflict, username)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}
	userID, err := s.ids.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	_, isAdmin := s.admins[strings.ToLower(username)]
	u := user.User{
		ID:           userID,
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return user.User{}, fmt.Errorf("%w: username %s is taken", ErrConflict, username)
		}
		return user.User{}, storeFailure("create user", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", u.ID, "admin", u.IsAdmin)
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, storeFailure("get user by username", err)
	}
	if !exists {
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return LoginResult{}, fmt.Errorf("compare password: %w", err)
	}

	principal := user.Principal{UserID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
	token, err := s.issuer.Issue(principal)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue access token: %w", err)
	}
	return LoginResult{AccessToken: token, Principal: principal}, nil
}

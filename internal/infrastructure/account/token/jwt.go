package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/usecase"
)

const defaultIssuer = "pickem-league"

type accessClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Admin    bool   `json:"admin,omitempty"`
}

// Provider issues and verifies HS256 access tokens.
type Provider struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewProvider(secret string, ttl time.Duration) (*Provider, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &Provider{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: defaultIssuer,
		now:    time.Now,
	}, nil
}

func (p *Provider) Issue(principal user.Principal) (usecase.AccessToken, error) {
	now := p.now().UTC()
	expiresAt := now.Add(p.ttl)
	claims := &accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    p.issuer,
			Subject:   principal.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: principal.Username,
		Admin:    principal.IsAdmin,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return usecase.AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}
	return usecase.AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyAccessToken returns the principal carried by a valid token. Every
// rejection is reported as usecase.ErrUnauthorized.
func (p *Provider) VerifyAccessToken(_ context.Context, raw string) (user.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	parsed, err := jwt.ParseWithClaims(raw, &accessClaims{}, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return user.Principal{}, fmt.Errorf("%w: token expired", usecase.ErrUnauthorized)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return user.Principal{}, fmt.Errorf("%w: invalid token signature", usecase.ErrUnauthorized)
		default:
			return user.Principal{}, fmt.Errorf("%w: invalid token", usecase.ErrUnauthorized)
		}
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return user.Principal{}, fmt.Errorf("%w: invalid token claims", usecase.ErrUnauthorized)
	}

	return user.Principal{
		UserID:   claims.Subject,
		Username: claims.Username,
		IsAdmin:  claims.Admin,
	}, nil
}

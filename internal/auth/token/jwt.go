package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blogapi/internal/domain"
)

type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func New(secret string, issuer string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// internal shape for signing/parsing with jwt.RegisteredClaims
type jwtClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

var _ domain.TokenManager = (*Manager)(nil)

// Issue signs a token carrying the user's email and expiry. No side effects:
// recording it as the active token is the caller's job.
func (m *Manager) Issue(_ context.Context, email string) (domain.Token, domain.TokenClaims, error) {
	now := time.Now().UTC()

	cl := jwtClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			// Unique per issue: two logins in the same second must still
			// produce distinct tokens, or the single-slot comparison could
			// not tell them apart.
			ID: uuid.NewString(),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	tokenStr, err := t.SignedString(m.secret)
	if err != nil {
		return "", domain.TokenClaims{}, err
	}

	return tokenStr, domain.TokenClaims{
		Email:     cl.Email,
		IssuedAt:  cl.IssuedAt.Time,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}

// Parse validates signature and expiry only; it never consults a store.
// Expiry maps to domain.ErrTokenExpired, everything else to ErrInvalidToken.
func (m *Manager) Parse(_ context.Context, raw domain.Token) (domain.TokenClaims, error) {
	var out jwtClaims
	tkn, err := jwt.ParseWithClaims(string(raw), &out, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
		}
		return domain.TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tkn.Valid {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}

	claims := domain.TokenClaims{Email: out.Email}
	if out.IssuedAt != nil {
		claims.IssuedAt = out.IssuedAt.Time
	}
	if out.ExpiresAt != nil {
		claims.ExpiresAt = out.ExpiresAt.Time
	}
	return claims, nil
}

package domain

import (
	"context"
	"time"
)

type Token = string

// TokenClaims embeds the user's email and validity window. The token is not
// persisted on its own: the only stored copy lives in users.active_token.
type TokenClaims struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encodedHash string) (bool, error)
}

// TokenManager issues and verifies signed tokens. Issue has no side effects;
// persisting the token as the active one is the caller's job. Parse checks
// signature and expiry only and reports ErrTokenExpired or ErrInvalidToken.
type TokenManager interface {
	Issue(ctx context.Context, email string) (Token, TokenClaims, error)
	Parse(ctx context.Context, t Token) (TokenClaims, error)
}

// Package session is the single source of truth for "is this request
// authenticated": it reconciles a presented token against the user's
// stored active token.
package session

import (
	"context"
	"errors"
	"log"
	"strings"

	"blogapi/internal/domain"
)

type Authority struct {
	Log    *log.Logger
	Tokens domain.TokenManager
	Users  domain.UsersRepo
}

func New(logger *log.Logger, tokens domain.TokenManager, users domain.UsersRepo) *Authority {
	return &Authority{Log: logger, Tokens: tokens, Users: users}
}

// Authenticate resolves the Authorization header value to a user identity.
//
// A token authorizes a request only when it is cryptographically valid,
// unexpired AND byte-equal to the non-empty active token stored for the user
// it names. Logging in elsewhere overwrites that slot, so the older token
// fails the comparison and the session is effectively kicked out.
func (a *Authority) Authenticate(ctx context.Context, authHeader string) (domain.User, error) {
	raw := ExtractToken(authHeader)
	if raw == "" {
		return domain.User{}, domain.ErrNoLogin
	}

	claims, err := a.Tokens.Parse(ctx, raw)
	if err != nil {
		// Parse already classifies: expired vs malformed.
		return domain.User{}, err
	}

	u, err := a.Users.UserByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Token names an account that no longer exists: clean rejection,
			// not a fault.
			return domain.User{}, domain.ErrNoLogin
		}
		a.Log.Printf("lvl=error op=session.authenticate msg=\"user lookup failed\" err=%q", err)
		return domain.User{}, domain.ErrUnexpected
	}

	if u.ActiveToken == "" || u.ActiveToken != raw {
		return domain.User{}, domain.ErrStaleToken
	}
	return u, nil
}

// ExtractToken accepts both "Bearer <token>" and a bare token value.
func ExtractToken(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}

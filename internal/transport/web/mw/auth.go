package mw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"blogapi/internal/domain"
)

// Authenticator resolves the Authorization header to an identity.
// Implemented by the session authority.
type Authenticator interface {
	Authenticate(ctx context.Context, authHeader string) (domain.User, error)
}

// RequireAuth gates protected endpoints: every request passes through the
// session authority and the resolved user is threaded via the context.
func RequireAuth(auth Authenticator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			writeAuthError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(domain.WithUser(r.Context(), u)))
	})
}

func UserFromCtx(ctx context.Context) (domain.User, bool) {
	return domain.UserFromCtx(ctx)
}

// writeAuthError mirrors the envelope writer without importing v1
// (v1 depends on this package).
func writeAuthError(w http.ResponseWriter, err error) {
	status := http.StatusUnauthorized
	msg := domain.MsgNoLogin
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		msg = domain.MsgInvalidToken
	case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrStaleToken):
		msg = domain.MsgTokenExpired
	case errors.Is(err, domain.ErrNoLogin):
		msg = domain.MsgNoLogin
	case errors.Is(err, domain.ErrUnexpected):
		status = http.StatusInternalServerError
		msg = domain.MsgServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.APIEnvelope{Message: msg})
}

package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/mw"
)

// MapDomainError resolves the HTTP status + message for the envelope.
// The table is fixed: 200/400/401/404/409/500, nothing else.
func MapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingData):
		return http.StatusBadRequest, domain.MsgMissingData
	case errors.Is(err, domain.ErrMissingCreds):
		return http.StatusBadRequest, domain.MsgInvalidEmailPswd
	case errors.Is(err, domain.ErrDuplicateEmail):
		// Duplicate email is a 400, not a 409; clients depend on it.
		return http.StatusBadRequest, domain.MsgDuplicateEmail
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, domain.MsgUserNotFound
	case errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized, domain.MsgInvalidCredentials
	case errors.Is(err, domain.ErrNoLogin):
		return http.StatusUnauthorized, domain.MsgNoLogin
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, domain.MsgInvalidToken
	case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrStaleToken):
		return http.StatusUnauthorized, domain.MsgTokenExpired
	case errors.Is(err, domain.ErrNotLoggedIn):
		return http.StatusUnauthorized, domain.MsgNotLoggedIn
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusUnauthorized, domain.MsgUnauthorized
	case errors.Is(err, domain.ErrAuthorComment):
		return http.StatusUnauthorized, domain.MsgAuthorComment
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.MsgNotFound
	case errors.Is(err, domain.ErrDuplicateData), errors.Is(err, domain.ErrEditConflict):
		return http.StatusConflict, domain.MsgDuplicateData
	default:
		// Timeouts/cancellations and everything unexpected: generic 500,
		// details stay in the server log.
		return http.StatusInternalServerError, domain.MsgServerError
	}
}

// WriteEnvelope writes the envelope; HEAD gets headers only.
func WriteEnvelope(w http.ResponseWriter, r *http.Request, status int, env any) {
	w.Header().Set("Content-Type", "application/json")
	if id := mw.RequestIDFromCtx(r.Context()); id != "" {
		w.Header().Set("X-Request-ID", id)
	}
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(env)
}

func WriteOK(w http.ResponseWriter, r *http.Request, msg string, data any) {
	WriteEnvelope(w, r, http.StatusOK, domain.Ok(msg, data))
}

func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := MapDomainError(err)
	WriteEnvelope(w, r, status, domain.APIEnvelope{Message: msg})
}

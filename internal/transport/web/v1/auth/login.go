package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

// HandlerLogin handles POST /login
type HandlerLogin struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
	Tokens domain.TokenManager
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  domain.Token  `json:"token"`
	UserID domain.UserID `json:"userID"`
}

// Login godoc
// @Summary     Authenticate user
// @Description Verifies credentials, issues a fresh token and records it as
// @Description the user's sole active token (any prior session is kicked out).
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "email, password"
// @Success     200 {object} domain.APIEnvelope{data=loginResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /login [post]
func (h *HandlerLogin) Login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req loginRequest
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, domain.ErrMissingCreds)
			return
		}
	} else {
		_ = r.ParseForm()
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
	}

	if req.Email == "" || req.Password == "" {
		logx.Error(h.Log, reqID, op, "empty email or password", domain.ErrMissingCreds)
		v1.WriteDomainError(w, r, domain.ErrMissingCreds)
		return
	}

	u, err := h.Users.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logx.Error(h.Log, reqID, op, "user not found", err, "email", req.Email)
			v1.WriteDomainError(w, r, domain.ErrUserNotFound)
			return
		}
		logx.Error(h.Log, reqID, op, "user lookup failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	ok, err := h.Hasher.Verify(req.Password, u.PassHash)
	if err != nil || !ok {
		logx.Error(h.Log, reqID, op, "password verify failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrBadCredentials)
		return
	}

	tkn, _, err := h.Tokens.Issue(r.Context(), u.Email)
	if err != nil {
		logx.Error(h.Log, reqID, op, "issue token failed", err, "user_id", u.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	// Single-session enforcement point: overwrite whatever token was active.
	if err := h.Users.SetActiveToken(r.Context(), u.ID, tkn); err != nil {
		logx.Error(h.Log, reqID, op, "persist active token failed", err, "user_id", u.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "email", u.Email)
	v1.WriteOK(w, r, fmt.Sprintf("Welcome back, %s", u.Email), loginResponse{Token: tkn, UserID: u.ID})
}

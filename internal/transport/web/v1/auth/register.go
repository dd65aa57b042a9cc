package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

// HandlerRegister handles POST /add
type HandlerRegister struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID    domain.UserID `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
}

// Register godoc
// @Summary     Register user
// @Description Creates a user with a salted argon2id password hash.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body registerRequest true "name, email, password"
// @Success     200 {object} domain.APIEnvelope{data=registerResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /add [post]
func (h *HandlerRegister) Register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req registerRequest
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, domain.ErrMissingData)
			return
		}
	} else {
		_ = r.ParseForm()
		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || !domain.ValidEmail(req.Email) {
		logx.Error(h.Log, reqID, op, "missing or invalid fields", domain.ErrMissingData, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}

	hash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "hash failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	u, err := h.Users.CreateUser(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		logx.Error(h.Log, reqID, op, "create user failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "email", u.Email)
	v1.WriteOK(w, r, domain.MsgSaved, registerResponse{ID: u.ID, Name: u.Name, Email: u.Email})
}

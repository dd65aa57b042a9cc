package auth

import (
	"log"
	"net/http"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

// HandlerLogout handles GET /logout (protected)
type HandlerLogout struct {
	Log   *log.Logger
	Users domain.UsersRepo
}

// Logout godoc
// @Summary     Logout
// @Description Clears the active token; the presented token stops matching and
// @Description every subsequent request with it is rejected.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /logout [get]
func (h *HandlerLogout) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "auth.logout"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "no identity in context", domain.ErrNoLogin)
		v1.WriteDomainError(w, r, domain.ErrNoLogin)
		return
	}

	if err := h.Users.ClearActiveToken(r.Context(), me.ID); err != nil {
		logx.Error(h.Log, reqID, op, "clear active token failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", me.ID)
	v1.WriteOK(w, r, domain.MsgLogoutSuccess, nil)
}

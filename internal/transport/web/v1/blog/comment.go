package blog

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

type commentRequest struct {
	Text string `json:"text"`
}

// AddComment godoc
// @Summary     Append a comment (non-authors only)
// @Description The post's own author may not comment. The append is a single
// @Description store-level insert, so concurrent comments interleave without
// @Description losing each other. Returns the updated post.
// @Tags        blog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "blog id"
// @Param       request body commentRequest true "text"
// @Success     200 {object} domain.APIEnvelope{data=domain.BlogView}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /addcomment/{id} [put]
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	const op = "blog.add_comment"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrNoLogin)
		return
	}

	id, err := parseBlogID(r.PathValue("id"))
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}

	b, err := h.Blogs.BlogByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "fetch failed", err, "blog_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := domain.CanComment(me, b); err != nil {
		logx.Error(h.Log, reqID, op, "author commenting on own post", err, "blog_id", id, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	if err := h.Blogs.AddComment(r.Context(), id, domain.Comment{
		Text:     req.Text,
		PostedBy: me.ID,
		PostedAt: time.Now().UTC(),
	}); err != nil {
		logx.Error(h.Log, reqID, op, "append failed", err, "blog_id", id)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	h.invalidate(r.Context(), id)

	view, err := h.Blogs.BlogViewByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "reload failed", err, "blog_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "blog_id", id, "comments", len(view.Comments))
	v1.WriteOK(w, r, domain.MsgOK, view)
}

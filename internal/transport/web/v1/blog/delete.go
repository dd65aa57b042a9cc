package blog

import (
	"net/http"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete blog post (author only)
// @Description Terminal: comments are removed with the post.
// @Tags        blog
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "blog id"
// @Success     200 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /delete/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "blog.delete"
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

	b, err := h.Blogs.BlogByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "fetch failed", err, "blog_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	if err := domain.CanModifyPost(me, b); err != nil {
		logx.Error(h.Log, reqID, op, "not the author", err, "blog_id", id, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	if err := h.Blogs.DeleteBlog(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "blog_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	h.invalidate(r.Context(), id)

	logx.Info(h.Log, reqID, op, "ok", "blog_id", id)
	v1.WriteOK(w, r, domain.MsgDeleted, nil)
}

package blog

import (
	"encoding/json"
	"net/http"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

// GetOne godoc
// @Summary     Get one blog post
// @Description Returns the post with author and commenters expanded.
// @Tags        blog
// @Produce     json
// @Param       id path string true "blog id"
// @Success     200 {object} domain.APIEnvelope{data=domain.BlogView}
// @Failure     404 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /single/{id} [get]
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	const op = "blog.get_one"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	id, err := parseBlogID(r.PathValue("id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad blog id", err, "raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, err)
		return
	}

	ckey := domain.CacheKeyBlog(id)
	if b, err := h.Cache.Get(r.Context(), ckey); err == nil && len(b) > 0 {
		logx.Info(h.Log, reqID, op, "cache hit", "blog_id", id)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}

	view, err := h.Blogs.BlogViewByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "fetch failed", err, "blog_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	env := domain.Ok(domain.MsgOK, view)
	if buf, err := json.Marshal(env); err == nil {
		_ = h.Cache.Set(r.Context(), ckey, buf, h.BlogTTL)
	}

	logx.Info(h.Log, reqID, op, "ok", "blog_id", id)
	v1.WriteEnvelope(w, r, http.StatusOK, env)
}

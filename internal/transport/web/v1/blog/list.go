package blog

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

// List godoc
// @Summary     List blog posts
// @Description Paginated, newest first, optional case-insensitive title filter.
// @Tags        blog
// @Produce     json
// @Param       page  query int    false "page (1-based)"
// @Param       limit query int    false "page size"
// @Param       title query string false "title substring filter"
// @Success     200 {object} domain.ListEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /all [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "blog.list"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	f := domain.ListFilter{Title: r.URL.Query().Get("title")}
	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			f.Page = n
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			f.Limit = n
		}
	}
	f = f.Norm()

	ckey := domain.CacheKeyBlogList(h.listVersion(r.Context()), listPageKey(f))
	if b, err := h.Cache.Get(r.Context(), ckey); err == nil && len(b) > 0 {
		logx.Info(h.Log, reqID, op, "cache hit", "key", ckey)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}

	views, total, err := h.Blogs.BlogsList(r.Context(), f)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	if views == nil {
		views = []domain.BlogView{}
	}

	env := domain.ListEnvelope{
		Message: domain.MsgOK,
		Data:    views,
		Total:   total,
		Page:    f.Page,
		Pages:   int(math.Ceil(float64(total) / float64(f.Limit))),
	}

	if buf, err := json.Marshal(env); err == nil {
		_ = h.Cache.Set(r.Context(), ckey, buf, h.ListTTL)
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(views), "total", total)
	v1.WriteEnvelope(w, r, http.StatusOK, env)
}

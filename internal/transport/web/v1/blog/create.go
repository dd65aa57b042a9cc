package blog

import (
	"encoding/json"
	"net/http"
	"strings"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

type createRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Files   []string `json:"files"`
}

// Create godoc
// @Summary     Create blog post
// @Description Author is the authenticated user and is fixed forever.
// @Description A duplicate (title, author) pair is rejected, never upserted.
// @Tags        blog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body createRequest true "title, content, files"
// @Success     200 {object} domain.APIEnvelope{data=domain.BlogPost}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /addBlog [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "blog.create"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrNoLogin)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if !domain.ValidTitle(req.Title) || strings.TrimSpace(req.Content) == "" {
		logx.Error(h.Log, reqID, op, "missing title or content", domain.ErrMissingData)
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}

	b, err := h.Blogs.CreateBlog(r.Context(), domain.BlogPost{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: me.ID,
		Files:    req.Files,
	})
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err, "title", req.Title, "author", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	h.invalidate(r.Context(), b.ID)

	logx.Info(h.Log, reqID, op, "ok", "blog_id", b.ID, "author", me.ID)
	v1.WriteOK(w, r, domain.MsgOK, b)
}

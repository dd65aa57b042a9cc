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

type updateRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Files   *[]string `json:"files"`
}

// Update godoc
// @Summary     Edit blog post (author only)
// @Description Partial patch; the edit is applied with a compare-and-swap on
// @Description the post version, so a concurrent edit loses with 409.
// @Tags        blog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "blog id"
// @Param       request body updateRequest true "title/content/files (all optional)"
// @Success     200 {object} domain.APIEnvelope{data=domain.BlogPost}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /update/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "blog.update"
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

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if !domain.ValidTitle(t) {
			v1.WriteDomainError(w, r, domain.ErrMissingData)
			return
		}
		req.Title = &t
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

	out, err := h.Blogs.UpdateBlog(r.Context(), id, b.Version,
		domain.BlogPatch{Title: req.Title, Content: req.Content, Files: req.Files})
	if err != nil {
		logx.Error(h.Log, reqID, op, "update failed", err, "blog_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	h.invalidate(r.Context(), id)

	logx.Info(h.Log, reqID, op, "ok", "blog_id", id, "version", out.Version)
	v1.WriteOK(w, r, domain.MsgUpdated, out)
}

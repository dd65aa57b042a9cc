package blog

import (
	"net/http"
	"path"
	"strings"

	"blogapi/internal/domain"
	"blogapi/internal/transport/web/logx"
	"blogapi/internal/transport/web/mw"
	v1 "blogapi/internal/transport/web/v1"
)

// MaxImageBytes caps a single upload (the router also sets MaxBytesReader).
const MaxImageBytes = 5 << 20

var imageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage godoc
// @Summary     Upload a single image
// @Description multipart field "file"; jpeg/jpg/png/gif only, 5MB cap.
// @Description Returns the public URL of the stored object.
// @Tags        blog
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "image file"
// @Success     200 {object} domain.APIEnvelope{data=uploadResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /uploadImage [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	const op = "blog.upload_image"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	if err := r.ParseMultipartForm(MaxImageBytes); err != nil {
		logx.Error(h.Log, reqID, op, "bad multipart", err)
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		logx.Error(h.Log, reqID, op, "missing file part", err)
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(header.Filename))
	if !imageExts[ext] {
		logx.Error(h.Log, reqID, op, "not an image", domain.ErrMissingData, "name", header.Filename)
		v1.WriteDomainError(w, r, domain.ErrMissingData)
		return
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	res, err := h.Storage.Put(r.Context(), file, header.Filename, mime)
	if err != nil {
		logx.Error(h.Log, reqID, op, "storage put failed", err, "name", header.Filename)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "key", res.StorageKey, "size", res.Size)
	v1.WriteOK(w, r, domain.MsgOK, uploadResponse{URL: res.URL})
}

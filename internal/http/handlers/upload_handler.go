// Image upload handler.
package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImageStore persists an uploaded image and returns its public URL. The
// local-disk and S3 implementations live in internal/storage.
type ImageStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}

// imageExtensions maps accepted image content types to file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadImage godoc
// @ID          uploadImage
// @Summary     Upload a vehicle image
// @Description Accepts a multipart form with a `file` part, stores it, and returns the public URL. Only image content types are accepted.
// @Tags        Admin
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file  formData  file  true  "Image file"
// @Success     201  {object}  handlers.UploadResponse
// @Failure     400  {object}  handlers.ErrorResponse "Not an image / missing file"
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse "Upload failed"
// @Router      /admin/upload [post]
func (h *Handlers) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "multipart field 'file' is required")
		return
	}

	contentType := fh.Header.Get("Content-Type")
	ext, okType := imageExtensions[strings.ToLower(contentType)]
	if !okType {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "only image uploads are accepted")
		return
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, err.Error())
		return
	}
	defer f.Close()

	// Server-assigned name; the client filename is never trusted.
	name := uuid.NewString() + ext

	url, err := h.store.Save(c.Request.Context(), name, contentType, f)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, UploadResponse{URL: url})
}

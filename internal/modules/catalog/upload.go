package catalog

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"dancestudio/internal/pkg/response"
)

var errImageTooLarge = errors.New("catalog: image exceeds size limit")

// openImage pulls the "image" part out of a multipart form and enforces
// the size cap. It writes the error envelope itself so handlers only
// have to bail out.
func openImage(c *gin.Context) (multipart.File, *multipart.FileHeader, error) {
	header, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing image file")
		return nil, nil, err
	}
	if header.Size > maxImageSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "Image exceeds the size limit")
		return nil, nil, errImageTooLarge
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to read uploaded file")
		return nil, nil, err
	}
	return file, header, nil
}

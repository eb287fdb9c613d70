package studio

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"dancestudio/internal/pkg/response"
	"dancestudio/internal/pkg/validator"
)

const maxImageSize = 10 << 20 // 10 MiB

var errImageTooLarge = errors.New("studio: image exceeds size limit")

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	studioGroup := protected.Group("/studio")
	{
		studioGroup.GET("", h.GetProfile)
		studioGroup.PUT("", h.UpdateProfile)
		studioGroup.POST("/image", h.UploadImage)
		studioGroup.DELETE("/image", h.DeleteImage)
	}
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values", errs)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to save profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := openImage(c)
	if err != nil {
		return
	}
	defer file.Close()

	profile, err := h.service.UploadImage(c.Request.Context(), c.GetInt64("user_id"), header.Filename, file)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store image")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	if err := h.service.DeleteImage(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete image")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Image deleted"})
}

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

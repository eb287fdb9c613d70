package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dancestudio/internal/domain"
	"dancestudio/internal/pkg/response"
)

const maxImageSize = 10 << 20 // 10 MiB

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	classes := protected.Group("/classes")
	{
		classes.GET("", h.ListClasses)
		classes.POST("", h.CreateClass)
		classes.PUT("/:id", h.UpdateClass)
		classes.DELETE("/:id", h.DeleteClass)
		classes.PATCH("/:id/active", h.SetClassActive)
	}

	events := protected.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
		events.POST("/:id/image", h.UploadEventImage)
	}

	workshops := protected.Group("/workshops")
	{
		workshops.GET("", h.ListWorkshops)
		workshops.POST("", h.CreateWorkshop)
		workshops.PUT("/:id", h.UpdateWorkshop)
		workshops.DELETE("/:id", h.DeleteWorkshop)
		workshops.POST("/:id/image", h.UploadWorkshopImage)
	}

	packages := protected.Group("/packages")
	{
		packages.GET("", h.ListPackages)
		packages.POST("", h.CreatePackage)
		packages.PUT("/:id", h.UpdatePackage)
		packages.DELETE("/:id", h.DeletePackage)
		packages.PATCH("/:id/active", h.SetPackageActive)
	}

	protected.GET("/dashboard", h.Dashboard)
}

// writeServiceError maps the module's sentinel errors onto the envelope.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Entry not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Entry belongs to another owner")
	case errors.Is(err, domain.ErrInvalidLevel):
		response.Error(c, http.StatusBadRequest, "INVALID_LEVEL", "Unknown level value")
	case errors.Is(err, domain.ErrInvalidEventType):
		response.Error(c, http.StatusBadRequest, "INVALID_EVENT_TYPE", "Unknown event type")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id parameter")
		return 0, false
	}
	return id, true
}

/* ---------- Classes ---------- */

func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

func (h *Handler) CreateClass(c *gin.Context) {
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

func (h *Handler) UpdateClass(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	class, err := h.service.UpdateClass(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": class})
}

func (h *Handler) DeleteClass(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteClass(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Class deleted"})
}

func (h *Handler) SetClassActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	class, err := h.service.SetClassActive(c.Request.Context(), c.GetInt64("user_id"), id, *req.IsActive)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": class})
}

/* ---------- Events ---------- */

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"event": event})
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": event})
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEvent(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted"})
}

func (h *Handler) UploadEventImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	file, header, err := openImage(c)
	if err != nil {
		return
	}
	defer file.Close()

	event, err := h.service.UploadEventImage(c.Request.Context(), c.GetInt64("user_id"), id, header.Filename, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": event})
}

/* ---------- Workshops ---------- */

func (h *Handler) ListWorkshops(c *gin.Context) {
	workshops, err := h.service.ListWorkshops(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workshops": workshops})
}

func (h *Handler) CreateWorkshop(c *gin.Context) {
	var req WorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	workshop, err := h.service.CreateWorkshop(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"workshop": workshop})
}

func (h *Handler) UpdateWorkshop(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req WorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	workshop, err := h.service.UpdateWorkshop(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workshop": workshop})
}

func (h *Handler) DeleteWorkshop(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteWorkshop(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Workshop deleted"})
}

func (h *Handler) UploadWorkshopImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	file, header, err := openImage(c)
	if err != nil {
		return
	}
	defer file.Close()

	workshop, err := h.service.UploadWorkshopImage(c.Request.Context(), c.GetInt64("user_id"), id, header.Filename, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workshop": workshop})
}

/* ---------- Packages ---------- */

func (h *Handler) ListPackages(c *gin.Context) {
	packages, err := h.service.ListPackages(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"packages": packages})
}

func (h *Handler) CreatePackage(c *gin.Context) {
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pkg, err := h.service.CreatePackage(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"package": pkg})
}

func (h *Handler) UpdatePackage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pkg, err := h.service.UpdatePackage(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"package": pkg})
}

func (h *Handler) DeletePackage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeletePackage(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Package deleted"})
}

func (h *Handler) SetPackageActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pkg, err := h.service.SetPackageActive(c.Request.Context(), c.GetInt64("user_id"), id, *req.IsActive)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"package": pkg})
}

/* ---------- Dashboard ---------- */

func (h *Handler) Dashboard(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"counts": counts})
}

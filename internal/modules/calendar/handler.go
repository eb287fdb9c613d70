package calendar

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"dancestudio/internal/domain"
	"dancestudio/internal/pkg/response"
)

type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.OwnerProfile, error)
}

type Handler struct {
	service  *Service
	hub      *Hub
	profiles ProfileReader
	upgrader websocket.Upgrader
}

func NewHandler(service *Service, hub *Hub, profiles ProfileReader) *Handler {
	return &Handler{
		service:  service,
		hub:      hub,
		profiles: profiles,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	cal := protected.Group("/calendar")
	{
		cal.GET("", h.GetCalendar)
		cal.GET("/export.ics", h.ExportICS)
		cal.GET("/ws", h.Subscribe)
	}
}

// GetCalendar serves the owner's expanded occurrence list.
func (h *Handler) GetCalendar(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	occurrences, err := h.service.Occurrences(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to build calendar")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"occurrences": occurrences})
}

// ExportICS serves the same expansion as an iCalendar file.
func (h *Handler) ExportICS(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	occurrences, err := h.service.Occurrences(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to build calendar")
		return
	}

	studioName := ""
	if h.profiles != nil {
		if profile, err := h.profiles.GetByUserID(c.Request.Context(), ownerID); err == nil {
			studioName = profile.StudioName
		}
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ToICS(occurrences, studioName)))
}

// Subscribe upgrades to a websocket and streams the full occurrence
// list: once on connect, then again on every collection change. The
// subscription dies with the connection; nothing is buffered for
// offline tabs.
func (h *Handler) Subscribe(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(ownerID, conn)
	defer h.hub.Unregister(ownerID, conn)

	// Initial snapshot so the tab does not wait for the first change.
	occurrences, err := h.service.Occurrences(c.Request.Context(), ownerID)
	if err == nil {
		_ = conn.WriteJSON(map[string]any{
			"type":        "calendar",
			"occurrences": occurrences,
		})
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

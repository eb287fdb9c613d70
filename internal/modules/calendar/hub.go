package calendar

import (
	"context"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub pushes the owner's full occurrence list to every connected
// browser tab whenever one of the three source collections changes.
// There is no delta protocol: each change triggers a complete
// recomputation, so a transient skew between collections self-heals on
// the next notification.
type Hub struct {
	service     *Service
	connections map[int64]map[*websocket.Conn]bool
	mutex       sync.RWMutex
}

func NewHub(service *Service) *Hub {
	return &Hub{
		service:     service,
		connections: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(ownerID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.connections[ownerID] == nil {
		h.connections[ownerID] = make(map[*websocket.Conn]bool)
	}
	h.connections[ownerID][conn] = true
}

func (h *Hub) Unregister(ownerID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, exists := h.connections[ownerID]; exists {
		if conns[conn] {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.connections, ownerID)
		}
	}
}

// CollectionChanged recomputes the owner's calendar and fans it out.
// Failures are logged and dropped; the next change will push a fresh
// snapshot anyway.
func (h *Hub) CollectionChanged(ctx context.Context, ownerID int64) {
	h.mutex.RLock()
	listening := len(h.connections[ownerID]) > 0
	h.mutex.RUnlock()
	if !listening {
		return
	}

	occurrences, err := h.service.Occurrences(ctx, ownerID)
	if err != nil {
		log.Printf("calendar: recompute for owner %d failed: %v", ownerID, err)
		return
	}

	message := map[string]any{
		"type":        "calendar",
		"occurrences": occurrences,
	}

	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections[ownerID]))
	for conn := range h.connections[ownerID] {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(ownerID, conn)
		}
	}
}

func (h *Hub) ConnectionCount(ownerID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections[ownerID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for ownerID, conns := range h.connections {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.connections, ownerID)
	}
}

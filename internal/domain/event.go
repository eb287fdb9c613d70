package domain

import (
	"strings"
	"time"
)

type EventType string

const (
	EventTypeWorkshop    EventType = "workshop"
	EventTypeCompetition EventType = "competition"
	EventTypeShowcase    EventType = "showcase"
	EventTypeOther       EventType = "other"
)

func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventTypeWorkshop, EventTypeCompetition, EventTypeShowcase, EventTypeOther:
		return EventType(s), nil
	}
	return "", ErrInvalidEventType
}

// Event is a one-off dated entry. Older records carry a combined
// Location string; newer ones carry City/State instead. Normalize folds
// the two shapes so consumers only ever read Location.
type Event struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // ISO calendar date, "2006-01-02"
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Type        EventType `json:"type"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Normalize resolves the legacy combined location against the newer
// city/state pair. Runs once at read time, in the repository.
func (e *Event) Normalize() {
	if e.Location != "" {
		return
	}
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(e.City); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(e.State); s != "" {
		parts = append(parts, s)
	}
	e.Location = strings.Join(parts, ", ")
}

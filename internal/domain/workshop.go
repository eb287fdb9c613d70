package domain

import "time"

type Workshop struct {
	ID                  int64     `json:"id"`
	OwnerID             int64     `json:"owner_id" gorm:"index"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Instructor          string    `json:"instructor"`
	Date                string    `json:"date"` // ISO calendar date
	Time                string    `json:"time"`
	Duration            string    `json:"duration"`
	Location            string    `json:"location"`
	Level               Level     `json:"level"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	Price               *float64  `json:"price,omitempty"`
	ImageURL            string    `json:"image_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

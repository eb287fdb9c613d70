package domain

import "time"

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelAllLevels    Level = "all-levels"
)

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAllLevels:
		return Level(s), nil
	}
	return "", ErrInvalidLevel
}

func ValidLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAllLevels}
}

// Class is a weekly recurring class. Day holds the full English weekday
// name ("Monday".."Sunday"); Time and Duration are free-text the way the
// owner typed them ("19:00", "7:00 PM", "90 minutes") and are only
// interpreted by the calendar expansion.
type Class struct {
	ID              int64     `json:"id"`
	OwnerID         int64     `json:"owner_id" gorm:"index"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Instructor      string    `json:"instructor"`
	Day             string    `json:"day"`
	Time            string    `json:"time"`
	Duration        string    `json:"duration"`
	Location        string    `json:"location"`
	Level           Level     `json:"level"`
	MaxStudents     int       `json:"max_students"`
	CurrentStudents int       `json:"current_students"`
	IsActive        bool      `json:"is_active"`
	Price           *float64  `json:"price,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

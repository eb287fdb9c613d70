package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OwnerProfile holds the studio-owner facing profile, one row per account.
type OwnerProfile struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id" gorm:"uniqueIndex"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Address1   string    `json:"address1"`
	Address2   string    `json:"address2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	StudioName string    `json:"studio_name"`
	ImageURL   string    `json:"image_url,omitempty"`
	Website    string    `json:"website,omitempty"`
	Facebook   string    `json:"facebook,omitempty"`
	Instagram  string    `json:"instagram,omitempty"`
	TikTok     string    `json:"tiktok,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

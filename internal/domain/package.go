package domain

import "time"

// UnlimitedClasses is the sentinel class count meaning a package has no
// per-class entitlement limit.
const UnlimitedClasses = 999

// Package is a pricing package. It has no calendar occurrence.
type Package struct {
	ID              int64     `json:"id"`
	OwnerID         int64     `json:"owner_id" gorm:"index"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	NumberOfClasses int       `json:"number_of_classes"`
	ValidityDays    int       `json:"validity_days"`
	IsActive        bool      `json:"is_active"`
	ClassIDs        []int64   `json:"class_ids,omitempty" gorm:"serializer:json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *Package) Unlimited() bool { return p.NumberOfClasses >= UnlimitedClasses }

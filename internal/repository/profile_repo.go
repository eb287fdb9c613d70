package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dancestudio/internal/domain"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.OwnerProfile, error) {
	var p domain.OwnerProfile
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// Upsert writes the whole profile document, keyed by user id. Edits are
// last-write-wins at this granularity.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.OwnerProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(p).Error
}

func (r *ProfileRepository) UpdateImageURL(ctx context.Context, userID int64, url string) error {
	return r.db.WithContext(ctx).Model(&domain.OwnerProfile{}).
		Where("user_id = ?", userID).
		Update("image_url", url).Error
}

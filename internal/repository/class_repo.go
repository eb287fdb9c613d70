package repository

import (
	"context"

	"gorm.io/gorm"

	"dancestudio/internal/domain"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// GetByOwner returns the owner's classes. When activeOnly is set it
// applies the same filter the calendar feed uses.
func (r *ClassRepository) GetByOwner(ctx context.Context, ownerID int64, activeOnly bool) ([]domain.Class, error) {
	var classes []domain.Class
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("id").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*domain.Class, error) {
	var c domain.Class
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClassRepository) Create(ctx context.Context, c *domain.Class) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClassRepository) Update(ctx context.Context, c *domain.Class) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Class{}, id).Error
}

func (r *ClassRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Class{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *ClassRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Class{}).
		Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}

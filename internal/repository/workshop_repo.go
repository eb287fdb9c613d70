package repository

import (
	"context"

	"gorm.io/gorm"

	"dancestudio/internal/domain"
)

type WorkshopRepository struct {
	db *gorm.DB
}

func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

func (r *WorkshopRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Workshop, error) {
	var workshops []domain.Workshop
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date, time").
		Find(&workshops).Error
	return workshops, err
}

func (r *WorkshopRepository) GetByID(ctx context.Context, id int64) (*domain.Workshop, error) {
	var w domain.Workshop
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkshopRepository) Create(ctx context.Context, w *domain.Workshop) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkshopRepository) Update(ctx context.Context, w *domain.Workshop) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *WorkshopRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Workshop{}, id).Error
}

func (r *WorkshopRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Workshop{}).
		Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}

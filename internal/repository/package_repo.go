package repository

import (
	"context"

	"gorm.io/gorm"

	"dancestudio/internal/domain"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Package, error) {
	var packages []domain.Package
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&packages).Error
	return packages, err
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	var p domain.Package
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PackageRepository) Update(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Package{}, id).Error
}

func (r *PackageRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Package{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *PackageRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Package{}).
		Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}

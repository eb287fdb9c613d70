package studio

import (
	"context"

	"dancestudio/internal/domain"
)

type ProfileRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.OwnerProfile, error)
	Upsert(ctx context.Context, p *domain.OwnerProfile) error
	UpdateImageURL(ctx context.Context, userID int64, url string) error
}

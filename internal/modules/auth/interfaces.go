package auth

import (
	"context"

	"gorm.io/gorm"

	"dancestudio/internal/domain"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DB() *gorm.DB
}

type ProfileRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.OwnerProfile, error)
	Upsert(ctx context.Context, p *domain.OwnerProfile) error
}

type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, id int64) error
	RevokeByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

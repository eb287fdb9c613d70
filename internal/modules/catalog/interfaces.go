package catalog

import (
	"context"

	"dancestudio/internal/domain"
)

type ClassRepositoryInterface interface {
	GetByOwner(ctx context.Context, ownerID int64, activeOnly bool) ([]domain.Class, error)
	GetByID(ctx context.Context, id int64) (*domain.Class, error)
	Create(ctx context.Context, c *domain.Class) error
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type EventRepositoryInterface interface {
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type WorkshopRepositoryInterface interface {
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Workshop, error)
	GetByID(ctx context.Context, id int64) (*domain.Workshop, error)
	Create(ctx context.Context, w *domain.Workshop) error
	Update(ctx context.Context, w *domain.Workshop) error
	Delete(ctx context.Context, id int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type PackageRepositoryInterface interface {
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	Create(ctx context.Context, p *domain.Package) error
	Update(ctx context.Context, p *domain.Package) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// Notifier receives a ping after every successful write to a collection
// that feeds the calendar. The live hub implements it.
type Notifier interface {
	CollectionChanged(ctx context.Context, ownerID int64)
}

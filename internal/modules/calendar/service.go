package calendar

import (
	"context"
	"time"

	"dancestudio/internal/domain"
)

type ClassReader interface {
	GetByOwner(ctx context.Context, ownerID int64, activeOnly bool) ([]domain.Class, error)
}

type EventReader interface {
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Event, error)
}

type WorkshopReader interface {
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Workshop, error)
}

// Service fetches the owner's three collections and runs the pure
// expansion over them. Only active classes feed the calendar.
type Service struct {
	classes   ClassReader
	events    EventReader
	workshops WorkshopReader
	now       func() time.Time
}

func NewService(classes ClassReader, events EventReader, workshops WorkshopReader) *Service {
	return &Service{
		classes:   classes,
		events:    events,
		workshops: workshops,
		now:       time.Now,
	}
}

func (s *Service) Occurrences(ctx context.Context, ownerID int64) ([]domain.Occurrence, error) {
	classes, err := s.classes.GetByOwner(ctx, ownerID, true)
	if err != nil {
		return nil, err
	}
	events, err := s.events.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	workshops, err := s.workshops.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return Expand(classes, events, workshops, s.now()), nil
}

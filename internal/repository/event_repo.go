package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dancestudio/internal/domain"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// eventModel is the stored shape. Legacy rows have only the combined
// location column; newer rows fill city/state and may leave location
// empty. The translation to domain.Event normalizes that exactly once,
// so no consumer ever re-implements the fallback.
type eventModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Date        string    `gorm:"column:date"`
	Time        string    `gorm:"column:time"`
	Location    *string   `gorm:"column:location"`
	City        *string   `gorm:"column:city"`
	State       *string   `gorm:"column:state"`
	Type        string    `gorm:"column:type"`
	ImageURL    *string   `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (eventModel) TableName() string { return "events" }

func toDomainEvent(m eventModel) domain.Event {
	e := domain.Event{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Time:        m.Time,
		Type:        domain.EventType(m.Type),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Location != nil {
		e.Location = *m.Location
	}
	if m.City != nil {
		e.City = *m.City
	}
	if m.State != nil {
		e.State = *m.State
	}
	if m.ImageURL != nil {
		e.ImageURL = *m.ImageURL
	}
	e.Normalize()
	return e
}

func toEventModel(e *domain.Event) eventModel {
	m := eventModel{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Type:        string(e.Type),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Location != "" {
		v := e.Location
		m.Location = &v
	}
	if e.City != "" {
		v := e.City
		m.City = &v
	}
	if e.State != "" {
		v := e.State
		m.State = &v
	}
	if e.ImageURL != "" {
		v := e.ImageURL
		m.ImageURL = &v
	}
	return m
}

func (r *EventRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Event, error) {
	var rows []eventModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date, time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		events = append(events, toDomainEvent(m))
	}
	return events, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	e := toDomainEvent(m)
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*e = toDomainEvent(m)
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*e = toDomainEvent(m)
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&eventModel{}, id).Error
}

func (r *EventRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&eventModel{}).
		Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}

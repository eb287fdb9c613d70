package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"dancestudio/internal/domain"
	"dancestudio/internal/storage"
)

// Service owns the four catalog collections. Every read and write is
// scoped to the authenticated owner; touching somebody else's entry is
// ErrForbidden, never a silent cross-tenant read. Writes to the three
// calendar-feeding collections ping the notifier afterwards.
type Service struct {
	classes   ClassRepositoryInterface
	events    EventRepositoryInterface
	workshops WorkshopRepositoryInterface
	packages  PackageRepositoryInterface
	store     storage.Store
	notifier  Notifier
}

func NewService(
	classes ClassRepositoryInterface,
	events EventRepositoryInterface,
	workshops WorkshopRepositoryInterface,
	packages PackageRepositoryInterface,
	store storage.Store,
	notifier Notifier,
) *Service {
	return &Service{
		classes:   classes,
		events:    events,
		workshops: workshops,
		packages:  packages,
		store:     store,
		notifier:  notifier,
	}
}

func (s *Service) notify(ctx context.Context, ownerID int64) {
	if s.notifier != nil {
		s.notifier.CollectionChanged(ctx, ownerID)
	}
}

// dropBlob deletes a stored image by its URL. Blob-store failures are
// logged and swallowed; the database stays the source of truth.
func (s *Service) dropBlob(url string) {
	if url == "" || s.store == nil {
		return
	}
	path := s.store.PathFromURL(url)
	if path == "" {
		return
	}
	if err := s.store.Delete(path); err != nil {
		log.Printf("catalog: delete blob %s: %v", path, err)
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

/* ---------- Classes ---------- */

func (s *Service) ListClasses(ctx context.Context, ownerID int64) ([]domain.Class, error) {
	return s.classes.GetByOwner(ctx, ownerID, false)
}

func (s *Service) CreateClass(ctx context.Context, ownerID int64, req ClassRequest) (*domain.Class, error) {
	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}

	c := &domain.Class{
		OwnerID:         ownerID,
		Name:            req.Name,
		Description:     req.Description,
		Instructor:      req.Instructor,
		Day:             req.Day,
		Time:            req.Time,
		Duration:        req.Duration,
		Location:        req.Location,
		Level:           level,
		MaxStudents:     req.MaxStudents,
		CurrentStudents: req.CurrentStudents,
		IsActive:        true,
		Price:           req.Price,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.classes.Create(ctx, c); err != nil {
		return nil, err
	}
	s.notify(ctx, ownerID)
	return c, nil
}

func (s *Service) UpdateClass(ctx context.Context, ownerID, id int64, req ClassRequest) (*domain.Class, error) {
	c, err := s.ownedClass(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}

	c.Name = req.Name
	c.Description = req.Description
	c.Instructor = req.Instructor
	c.Day = req.Day
	c.Time = req.Time
	c.Duration = req.Duration
	c.Location = req.Location
	c.Level = level
	c.MaxStudents = req.MaxStudents
	c.CurrentStudents = req.CurrentStudents
	c.Price = req.Price
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.classes.Update(ctx, c); err != nil {
		return nil, err
	}
	s.notify(ctx, ownerID)
	return c, nil
}

func (s *Service) DeleteClass(ctx context.Context, ownerID, id int64) error {
	if _, err := s.ownedClass(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.classes.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, ownerID)
	return nil
}

func (s *Service) SetClassActive(ctx context.Context, ownerID, id int64, active bool) (*domain.Class, error) {
	c, err := s.ownedClass(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.classes.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	c.IsActive = active
	s.notify(ctx, ownerID)
	return c, nil
}

func (s *Service) ownedClass(ctx context.Context, ownerID, id int64) (*domain.Class, error) {
	c, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if c.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return c, nil
}

/* ---------- Events ---------- */

func (s *Service) ListEvents(ctx context.Context, ownerID int64) ([]domain.Event, error) {
	return s.events.GetByOwner(ctx, ownerID)
}

func (s *Service) CreateEvent(ctx context.Context, ownerID int64, req EventRequest) (*domain.Event, error) {
	eventType, err := domain.ParseEventType(req.Type)
	if err != nil {
		return nil, err
	}

	e := &domain.Event{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		City:        req.City,
		State:       req.State,
		Type:        eventType,
	}

	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	s.notify(ctx, ownerID)
	return e, nil
}

func (s *Service) UpdateEvent(ctx context.Context, ownerID, id int64, req EventRequest) (*domain.Event, error) {
	e, err := s.ownedEvent(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	eventType, err := domain.ParseEventType(req.Type)
	if err != nil {
		return nil, err
	}

	e.Title = req.Title
	e.Description = req.Description
	e.Date = req.Date
	e.Time = req.Time
	e.Location = req.Location
	e.City = req.City
	e.State = req.State
	e.Type = eventType

	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	s.notify(ctx, ownerID)
	return e, nil
}

func (s *Service) DeleteEvent(ctx context.Context, ownerID, id int64) error {
	e, err := s.ownedEvent(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	s.dropBlob(e.ImageURL)
	s.notify(ctx, ownerID)
	return nil
}

func (s *Service) UploadEventImage(ctx context.Context, ownerID, id int64, filename string, r io.Reader) (*domain.Event, error) {
	e, err := s.ownedEvent(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	path := uploadPath("events", ownerID, filename)
	url, err := s.store.Save(path, r)
	if err != nil {
		return nil, err
	}

	old := e.ImageURL
	e.ImageURL = url
	if err := s.events.Update(ctx, e); err != nil {
		s.dropBlob(url)
		return nil, err
	}
	if old != url {
		s.dropBlob(old)
	}
	return e, nil
}

func (s *Service) ownedEvent(ctx context.Context, ownerID, id int64) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if e.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return e, nil
}

/* ---------- Workshops ---------- */

func (s *Service) ListWorkshops(ctx context.Context, ownerID int64) ([]domain.Workshop, error) {
	return s.workshops.GetByOwner(ctx, ownerID)
}

func (s *Service) CreateWorkshop(ctx context.Context, ownerID int64, req WorkshopRequest) (*domain.Workshop, error) {
	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}

	w := &domain.Workshop{
		OwnerID:             ownerID,
		Title:               req.Title,
		Description:         req.Description,
		Instructor:          req.Instructor,
		Date:                req.Date,
		Time:                req.Time,
		Duration:            req.Duration,
		Location:            req.Location,
		Level:               level,
		MaxParticipants:     req.MaxParticipants,
		CurrentParticipants: req.CurrentParticipants,
		Price:               req.Price,
	}

	if err := s.workshops.Create(ctx, w); err != nil {
		return nil, err
	}
	s.notify(ctx, ownerID)
	return w, nil
}

func (s *Service) UpdateWorkshop(ctx context.Context, ownerID, id int64, req WorkshopRequest) (*domain.Workshop, error) {
	w, err := s.ownedWorkshop(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}

	w.Title = req.Title
	w.Description = req.Description
	w.Instructor = req.Instructor
	w.Date = req.Date
	w.Time = req.Time
	w.Duration = req.Duration
	w.Location = req.Location
	w.Level = level
	w.MaxParticipants = req.MaxParticipants
	w.CurrentParticipants = req.CurrentParticipants
	w.Price = req.Price

	if err := s.workshops.Update(ctx, w); err != nil {
		return nil, err
	}
	s.notify(ctx, ownerID)
	return w, nil
}

func (s *Service) DeleteWorkshop(ctx context.Context, ownerID, id int64) error {
	w, err := s.ownedWorkshop(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.workshops.Delete(ctx, id); err != nil {
		return err
	}
	s.dropBlob(w.ImageURL)
	s.notify(ctx, ownerID)
	return nil
}

func (s *Service) UploadWorkshopImage(ctx context.Context, ownerID, id int64, filename string, r io.Reader) (*domain.Workshop, error) {
	w, err := s.ownedWorkshop(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	path := uploadPath("workshops", ownerID, filename)
	url, err := s.store.Save(path, r)
	if err != nil {
		return nil, err
	}

	old := w.ImageURL
	w.ImageURL = url
	if err := s.workshops.Update(ctx, w); err != nil {
		s.dropBlob(url)
		return nil, err
	}
	if old != url {
		s.dropBlob(old)
	}
	return w, nil
}

func (s *Service) ownedWorkshop(ctx context.Context, ownerID, id int64) (*domain.Workshop, error) {
	w, err := s.workshops.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if w.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return w, nil
}

/* ---------- Packages ---------- */

func (s *Service) ListPackages(ctx context.Context, ownerID int64) ([]domain.Package, error) {
	return s.packages.GetByOwner(ctx, ownerID)
}

func (s *Service) CreatePackage(ctx context.Context, ownerID int64, req PackageRequest) (*domain.Package, error) {
	p := &domain.Package{
		OwnerID:         ownerID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		NumberOfClasses: req.NumberOfClasses,
		ValidityDays:    req.ValidityDays,
		IsActive:        true,
		ClassIDs:        req.ClassIDs,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.packages.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePackage(ctx context.Context, ownerID, id int64, req PackageRequest) (*domain.Package, error) {
	p, err := s.ownedPackage(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.NumberOfClasses = req.NumberOfClasses
	p.ValidityDays = req.ValidityDays
	p.ClassIDs = req.ClassIDs
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.packages.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePackage(ctx context.Context, ownerID, id int64) error {
	if _, err := s.ownedPackage(ctx, ownerID, id); err != nil {
		return err
	}
	return s.packages.Delete(ctx, id)
}

func (s *Service) SetPackageActive(ctx context.Context, ownerID, id int64, active bool) (*domain.Package, error) {
	p, err := s.ownedPackage(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.packages.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	p.IsActive = active
	return p, nil
}

func (s *Service) ownedPackage(ctx context.Context, ownerID, id int64) (*domain.Package, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if p.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return p, nil
}

/* ---------- Dashboard ---------- */

func (s *Service) Counts(ctx context.Context, ownerID int64) (*DashboardCounts, error) {
	var counts DashboardCounts
	var err error

	if counts.Classes, err = s.classes.CountByOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	if counts.Events, err = s.events.CountByOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	if counts.Workshops, err = s.workshops.CountByOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	if counts.Packages, err = s.packages.CountByOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return &counts, nil
}

func uploadPath(kind string, ownerID int64, filename string) string {
	return fmt.Sprintf("%s/%d/%d_%s", kind, ownerID, time.Now().UnixMilli(), filepath.Base(filename))
}

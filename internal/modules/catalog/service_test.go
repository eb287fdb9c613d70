package catalog

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dancestudio/internal/domain"
)

/* ---------- Mocks ---------- */

type mockClassRepo struct{ mock.Mock }

func (m *mockClassRepo) GetByOwner(ctx context.Context, ownerID int64, activeOnly bool) ([]domain.Class, error) {
	args := m.Called(ctx, ownerID, activeOnly)
	return args.Get(0).([]domain.Class), args.Error(1)
}

func (m *mockClassRepo) GetByID(ctx context.Context, id int64) (*domain.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *mockClassRepo) Create(ctx context.Context, c *domain.Class) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClassRepo) Update(ctx context.Context, c *domain.Class) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClassRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClassRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *mockClassRepo) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockEventRepo struct{ mock.Mock }

func (m *mockEventRepo) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Event, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *mockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepo) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockWorkshopRepo struct{ mock.Mock }

func (m *mockWorkshopRepo) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Workshop, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Workshop), args.Error(1)
}

func (m *mockWorkshopRepo) GetByID(ctx context.Context, id int64) (*domain.Workshop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workshop), args.Error(1)
}

func (m *mockWorkshopRepo) Create(ctx context.Context, w *domain.Workshop) error {
	return m.Called(ctx, w).Error(0)
}

func (m *mockWorkshopRepo) Update(ctx context.Context, w *domain.Workshop) error {
	return m.Called(ctx, w).Error(0)
}

func (m *mockWorkshopRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockWorkshopRepo) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockPackageRepo struct{ mock.Mock }

func (m *mockPackageRepo) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Package, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *mockPackageRepo) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *mockPackageRepo) Create(ctx context.Context, p *domain.Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPackageRepo) Update(ctx context.Context, p *domain.Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPackageRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPackageRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *mockPackageRepo) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockStore struct{ mock.Mock }

func (m *mockStore) Save(path string, r io.Reader) (string, error) {
	args := m.Called(path, r)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Delete(path string) error {
	return m.Called(path).Error(0)
}

func (m *mockStore) PathFromURL(url string) string {
	return m.Called(url).String(0)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) CollectionChanged(ctx context.Context, ownerID int64) {
	m.Called(ctx, ownerID)
}

type serviceMocks struct {
	classes   *mockClassRepo
	events    *mockEventRepo
	workshops *mockWorkshopRepo
	packages  *mockPackageRepo
	store     *mockStore
	notifier  *mockNotifier
}

func newTestService() (*Service, *serviceMocks) {
	m := &serviceMocks{
		classes:   new(mockClassRepo),
		events:    new(mockEventRepo),
		workshops: new(mockWorkshopRepo),
		packages:  new(mockPackageRepo),
		store:     new(mockStore),
		notifier:  new(mockNotifier),
	}
	svc := NewService(m.classes, m.events, m.workshops, m.packages, m.store, m.notifier)
	return svc, m
}

/* ---------- Classes ---------- */

func TestCreateClass_NotifiesCalendar(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.classes.On("Create", ctx, mock.AnythingOfType("*domain.Class")).Return(nil)
	m.notifier.On("CollectionChanged", ctx, int64(1)).Return()

	class, err := svc.CreateClass(ctx, 1, ClassRequest{
		Name:  "Salsa Basics",
		Day:   "Wednesday",
		Time:  "19:00",
		Level: "beginner",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), class.OwnerID)
	assert.True(t, class.IsActive)
	m.classes.AssertExpectations(t)
	m.notifier.AssertExpectations(t)
}

func TestCreateClass_InvalidLevel(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.CreateClass(context.Background(), 1, ClassRequest{
		Name:  "Salsa Basics",
		Day:   "Wednesday",
		Time:  "19:00",
		Level: "expert",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
	m.classes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.notifier.AssertNotCalled(t, "CollectionChanged", mock.Anything, mock.Anything)
}

func TestUpdateClass_Forbidden(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.classes.On("GetByID", ctx, int64(5)).Return(&domain.Class{ID: 5, OwnerID: 99}, nil)

	_, err := svc.UpdateClass(ctx, 1, 5, ClassRequest{Name: "X", Day: "Monday", Time: "10:00", Level: "beginner"})

	assert.ErrorIs(t, err, ErrForbidden)
	m.classes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteClass_NotFound(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.classes.On("GetByID", ctx, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteClass(ctx, 1, 5)

	assert.ErrorIs(t, err, ErrNotFound)
	m.notifier.AssertNotCalled(t, "CollectionChanged", mock.Anything, mock.Anything)
}

func TestSetClassActive(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.classes.On("GetByID", ctx, int64(5)).Return(&domain.Class{ID: 5, OwnerID: 1, IsActive: true}, nil)
	m.classes.On("SetActive", ctx, int64(5), false).Return(nil)
	m.notifier.On("CollectionChanged", ctx, int64(1)).Return()

	class, err := svc.SetClassActive(ctx, 1, 5, false)

	require.NoError(t, err)
	assert.False(t, class.IsActive)
	m.classes.AssertExpectations(t)
}

/* ---------- Workshops ---------- */

func TestDeleteWorkshop_RemovesImageBlob(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.workshops.On("GetByID", ctx, int64(3)).Return(&domain.Workshop{
		ID: 3, OwnerID: 1, ImageURL: "/static/workshops/1/123_poster.jpg",
	}, nil)
	m.workshops.On("Delete", ctx, int64(3)).Return(nil)
	m.store.On("PathFromURL", "/static/workshops/1/123_poster.jpg").Return("workshops/1/123_poster.jpg")
	m.store.On("Delete", "workshops/1/123_poster.jpg").Return(nil)
	m.notifier.On("CollectionChanged", ctx, int64(1)).Return()

	err := svc.DeleteWorkshop(ctx, 1, 3)

	require.NoError(t, err)
	m.store.AssertExpectations(t)
}

func TestUploadWorkshopImage_ReplacesOldBlob(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.workshops.On("GetByID", ctx, int64(3)).Return(&domain.Workshop{
		ID: 3, OwnerID: 1, ImageURL: "/static/workshops/1/old.jpg",
	}, nil)
	m.store.On("Save", mock.AnythingOfType("string"), mock.Anything).Return("/static/workshops/1/456_new.jpg", nil)
	m.workshops.On("Update", ctx, mock.AnythingOfType("*domain.Workshop")).Return(nil)
	m.store.On("PathFromURL", "/static/workshops/1/old.jpg").Return("workshops/1/old.jpg")
	m.store.On("Delete", "workshops/1/old.jpg").Return(nil)

	w, err := svc.UploadWorkshopImage(ctx, 1, 3, "new.jpg", strings.NewReader("img"))

	require.NoError(t, err)
	assert.Equal(t, "/static/workshops/1/456_new.jpg", w.ImageURL)
	m.store.AssertExpectations(t)
}

/* ---------- Events ---------- */

func TestCreateEvent_InvalidType(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.CreateEvent(context.Background(), 1, EventRequest{
		Title: "Showcase",
		Date:  "2025-07-15",
		Time:  "10:00",
		Type:  "festival",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidEventType)
	m.events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

/* ---------- Packages ---------- */

func TestSetPackageActive(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.packages.On("GetByID", ctx, int64(8)).Return(&domain.Package{ID: 8, OwnerID: 1}, nil)
	m.packages.On("SetActive", ctx, int64(8), true).Return(nil)

	pkg, err := svc.SetPackageActive(ctx, 1, 8, true)

	require.NoError(t, err)
	assert.True(t, pkg.IsActive)
	// Packages never feed the calendar, so no change notification.
	m.notifier.AssertNotCalled(t, "CollectionChanged", mock.Anything, mock.Anything)
}

/* ---------- Dashboard ---------- */

func TestCounts(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.classes.On("CountByOwner", ctx, int64(1)).Return(int64(4), nil)
	m.events.On("CountByOwner", ctx, int64(1)).Return(int64(2), nil)
	m.workshops.On("CountByOwner", ctx, int64(1)).Return(int64(1), nil)
	m.packages.On("CountByOwner", ctx, int64(1)).Return(int64(3), nil)

	counts, err := svc.Counts(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, &DashboardCounts{Classes: 4, Events: 2, Workshops: 1, Packages: 3}, counts)
}

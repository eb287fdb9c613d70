package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dancestudio/internal/database"
	"dancestudio/internal/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// Two owners never see each other's rows through the owner-scoped
// queries, regardless of what else is in the table.
func TestOwnerScoping(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	classes := NewClassRepository(db)
	events := NewEventRepository(db)
	workshops := NewWorkshopRepository(db)
	packages := NewPackageRepository(db)

	require.NoError(t, classes.Create(ctx, &domain.Class{OwnerID: 1, Name: "Salsa", Day: "Monday", Time: "19:00", IsActive: true}))
	require.NoError(t, classes.Create(ctx, &domain.Class{OwnerID: 2, Name: "Ballet", Day: "Tuesday", Time: "18:00", IsActive: true}))
	require.NoError(t, events.Create(ctx, &domain.Event{OwnerID: 1, Title: "Showcase", Date: "2025-07-15", Time: "10:00", Type: domain.EventTypeShowcase}))
	require.NoError(t, workshops.Create(ctx, &domain.Workshop{OwnerID: 2, Title: "Masterclass", Date: "2025-08-01", Time: "14:00"}))
	require.NoError(t, packages.Create(ctx, &domain.Package{OwnerID: 1, Name: "Starter", Price: 99, NumberOfClasses: 5, ValidityDays: 60}))

	ownClasses, err := classes.GetByOwner(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, ownClasses, 1)
	assert.Equal(t, "Salsa", ownClasses[0].Name)

	otherEvents, err := events.GetByOwner(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, otherEvents)

	ownWorkshops, err := workshops.GetByOwner(ctx, 2)
	require.NoError(t, err)
	require.Len(t, ownWorkshops, 1)

	ownPackages, err := packages.GetByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ownPackages, 1)

	n, err := classes.CountByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestClassRepository_ActiveFilter(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	classes := NewClassRepository(db)

	require.NoError(t, classes.Create(ctx, &domain.Class{OwnerID: 1, Name: "Active", Day: "Monday", Time: "19:00", IsActive: true}))
	require.NoError(t, classes.Create(ctx, &domain.Class{OwnerID: 1, Name: "Paused", Day: "Tuesday", Time: "19:00", IsActive: false}))

	all, err := classes.GetByOwner(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := classes.GetByOwner(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].Name)
}

// Legacy events carry only the combined location; newer ones carry
// city/state. Both come back with Location filled.
func TestEventRepository_LocationNormalization(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	events := NewEventRepository(db)

	require.NoError(t, events.Create(ctx, &domain.Event{
		OwnerID: 1, Title: "Legacy", Date: "2025-07-01", Time: "10:00",
		Location: "Grand Hall, Austin", Type: domain.EventTypeOther,
	}))
	require.NoError(t, events.Create(ctx, &domain.Event{
		OwnerID: 1, Title: "Newer", Date: "2025-07-02", Time: "10:00",
		City: "Austin", State: "TX", Type: domain.EventTypeOther,
	}))

	got, err := events.GetByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byTitle := map[string]domain.Event{}
	for _, e := range got {
		byTitle[e.Title] = e
	}
	assert.Equal(t, "Grand Hall, Austin", byTitle["Legacy"].Location)
	assert.Equal(t, "Austin, TX", byTitle["Newer"].Location)
}

func TestPackageRepository_SetActive(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	packages := NewPackageRepository(db)

	p := &domain.Package{OwnerID: 1, Name: "Starter", Price: 99, NumberOfClasses: 5, ValidityDays: 60, IsActive: true}
	require.NoError(t, packages.Create(ctx, p))

	require.NoError(t, packages.SetActive(ctx, p.ID, false))

	got, err := packages.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

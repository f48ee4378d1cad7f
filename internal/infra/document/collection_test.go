package document

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

func newServices(t *testing.T) (*Collection[*models.Service], *Hub) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Service{}))

	hub := NewHub()
	c := NewCollection(db, hub, store.Services, func() *models.Service { return &models.Service{} }, zap.NewNop())
	return c, hub
}

func seedServices(t *testing.T, c *Collection[*models.Service]) {
	t.Helper()
	ctx := context.Background()

	for _, s := range []*models.Service{
		{ID: "s1", Name: "Haircut", Category: models.CategoryHair, Price: 45, DurationMin: 45, Active: true},
		{ID: "s2", Name: "Facial", Category: models.CategorySkin, Price: 30, DurationMin: 60, Active: true},
		{ID: "s3", Name: "Bridal Makeup", Category: models.CategoryBridal, Price: 200, DurationMin: 120, Active: false},
		{ID: "s4", Name: "Colour", Category: models.CategoryHair, Price: 80, DurationMin: 90, Active: false},
	} {
		_, err := c.Add(ctx, s)
		require.NoError(t, err)
	}
}

func TestCollection_InactiveRecordStaysInactive(t *testing.T) {
	c, _ := newServices(t)
	ctx := context.Background()

	id, err := c.Add(ctx, &models.Service{Name: "Bridal Makeup", Category: models.CategoryBridal, Price: 200, DurationMin: 120})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, 200.0, got.Price)
}

func TestCollection_GetMissing(t *testing.T) {
	c, _ := newServices(t)

	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCollection_AddRejectsInvalidAndDuplicate(t *testing.T) {
	c, _ := newServices(t)
	ctx := context.Background()

	_, err := c.Add(ctx, &models.Service{Name: "", Category: models.CategoryHair, DurationMin: 30})
	require.Error(t, err)

	_, err = c.Add(ctx, &models.Service{ID: "s1", Name: "Haircut", Category: models.CategoryHair, DurationMin: 30})
	require.NoError(t, err)
	_, err = c.Add(ctx, &models.Service{ID: "s1", Name: "Haircut", Category: models.CategoryHair, DurationMin: 30})
	assert.Error(t, err)
}

func TestCollection_QueryFilters(t *testing.T) {
	c, _ := newServices(t)
	seedServices(t, c)
	ctx := context.Background()

	hair, err := c.Query(ctx, store.Query{Where: store.Filter{"category": "hair"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s1", "s4"}, ids(hair))

	inactive, err := c.Query(ctx, store.Query{Where: store.Filter{"active": false}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s3", "s4"}, ids(inactive))

	both, err := c.Query(ctx, store.Query{Where: store.Filter{"category": "hair", "active": true}})
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, ids(both))
}

func TestCollection_QueryOrderAndLimit(t *testing.T) {
	c, _ := newServices(t)
	seedServices(t, c)
	ctx := context.Background()

	asc, err := c.Query(ctx, store.Query{OrderBy: "price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "s1", "s4", "s3"}, ids(asc))

	top, err := c.Query(ctx, store.Query{OrderBy: "price", Desc: true, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"s3", "s4"}, ids(top))
}

func TestCollection_UpdatePatch(t *testing.T) {
	c, _ := newServices(t)
	seedServices(t, c)
	ctx := context.Background()

	updated, err := c.Update(ctx, "s1", map[string]any{"price": 50.0, "active": false})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Price)
	assert.False(t, updated.Active)

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.Price)
	assert.False(t, got.Active)
	assert.Equal(t, "Haircut", got.Name)

	_, err = c.Update(ctx, "s1", map[string]any{"id": "other"})
	assert.ErrorIs(t, err, store.ErrImmutableID)

	_, err = c.Update(ctx, "missing", map[string]any{"price": 1.0})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCollection_Delete(t *testing.T) {
	c, _ := newServices(t)
	seedServices(t, c)
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx, "s2"))
	assert.ErrorIs(t, c.Delete(ctx, "s2"), store.ErrNotFound)

	_, err := c.Get(ctx, "s2")
	assert.ErrorIs(t, err, store.ErrNotFound)

	rest, err := c.Query(ctx, store.Query{})
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}

func TestCollection_SubscribeFiltersAndLoadsRecords(t *testing.T) {
	c, hub := newServices(t)
	seedServices(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := c.Subscribe(ctx, store.Filter{"category": "hair"})
	require.NoError(t, err)

	// s2 is skin and is skipped; the removal carries no record.
	hub.Dispatch(Event{Collection: store.Services, Op: store.OpModified, ID: "s2"})
	hub.Dispatch(Event{Collection: store.Services, Op: store.OpModified, ID: "s4"})
	hub.Dispatch(Event{Collection: store.Services, Op: store.OpRemoved, ID: "s9"})

	ch := next(t, changes)
	assert.Equal(t, store.OpModified, ch.Op)
	require.NotNil(t, ch.Record)
	assert.Equal(t, "Colour", ch.Record.Name)

	ch = next(t, changes)
	assert.Equal(t, store.OpRemoved, ch.Op)
	assert.Equal(t, "s9", ch.ID)
	assert.Nil(t, ch.Record)
}

func next(t *testing.T, changes <-chan store.Change[*models.Service]) store.Change[*models.Service] {
	t.Helper()
	select {
	case ch, ok := <-changes:
		require.True(t, ok, "change stream closed")
		return ch
	case <-time.After(time.Second):
		t.Fatal("change not delivered")
	}
	return store.Change[*models.Service]{}
}

func ids(recs []*models.Service) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func newServices(t *testing.T) (*miniredis.Miniredis, *Collection[*models.Service]) {
	mr, rdb := newRedis(t)
	return mr, NewCollection(rdb, store.Services, func() *models.Service { return new(models.Service) }, zap.NewNop())
}

func service(name string, price float64) *models.Service {
	return &models.Service{Name: name, Category: models.CategoryHair, Price: price, DurationMin: 30, Active: true}
}

func TestCollection_AddGetStoresWholeArrayUnderKey(t *testing.T) {
	mr, c := newServices(t)
	ctx := context.Background()

	id, err := c.Add(ctx, service("Cut", 20))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Cut", got.Name)
	assert.False(t, got.CreatedAt.IsZero())

	raw, err := mr.Get(store.Services)
	require.NoError(t, err)
	assert.Contains(t, raw, `"name":"Cut"`)
	assert.Equal(t, byte('['), raw[0])
}

func TestCollection_AddRejectsInvalid(t *testing.T) {
	_, c := newServices(t)

	_, err := c.Add(context.Background(), &models.Service{Name: "No category", DurationMin: 10})
	require.Error(t, err)

	all, err := store.All[*models.Service](context.Background(), c)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCollection_QueryFiltersInProcess(t *testing.T) {
	_, c := newServices(t)
	ctx := context.Background()

	_, _ = c.Add(ctx, service("Cut", 20))
	spa := service("Massage", 60)
	spa.Category = models.CategorySpa
	_, _ = c.Add(ctx, spa)
	_, _ = c.Add(ctx, service("Colour", 80))

	hair, err := c.Query(ctx, store.Query{Where: store.Filter{"category": "hair"}, OrderBy: "price", Desc: true})
	require.NoError(t, err)
	require.Len(t, hair, 2)
	assert.Equal(t, "Colour", hair[0].Name)
	assert.Equal(t, "Cut", hair[1].Name)
}

func TestCollection_UpdatePatchesAndRevalidates(t *testing.T) {
	_, c := newServices(t)
	ctx := context.Background()

	id, _ := c.Add(ctx, service("Cut", 20))

	updated, err := c.Update(ctx, id, map[string]any{"price": 25})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, "Cut", updated.Name)

	_, err = c.Update(ctx, id, map[string]any{"duration_min": 0})
	require.Error(t, err)

	stored, _ := c.Get(ctx, id)
	assert.Equal(t, 30, stored.DurationMin)

	_, err = c.Update(ctx, "missing", map[string]any{"price": 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCollection_DeleteRemovesOnlyThatRecord(t *testing.T) {
	_, c := newServices(t)
	ctx := context.Background()

	a, _ := c.Add(ctx, service("A", 1))
	b, _ := c.Add(ctx, service("B", 2))
	d, _ := c.Add(ctx, service("C", 3))

	require.NoError(t, c.Delete(ctx, b))

	all, err := store.All[*models.Service](ctx, c)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a, all[0].ID)
	assert.Equal(t, d, all[1].ID)

	assert.ErrorIs(t, c.Delete(ctx, b), store.ErrNotFound)
}

func TestCollection_DuplicateID(t *testing.T) {
	_, c := newServices(t)
	ctx := context.Background()

	s := service("A", 1)
	s.ID = "fixed"
	_, err := c.Add(ctx, s)
	require.NoError(t, err)

	again := service("B", 1)
	again.ID = "fixed"
	_, err = c.Add(ctx, again)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestCollection_SubscribeDeliversMatchingChanges(t *testing.T) {
	_, c := newServices(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := c.Subscribe(ctx, store.Filter{"category": "spa"})
	require.NoError(t, err)

	_, err = c.Add(ctx, service("Cut", 20))
	require.NoError(t, err)

	spa := service("Massage", 60)
	spa.Category = models.CategorySpa
	id, err := c.Add(ctx, spa)
	require.NoError(t, err)

	select {
	case ch := <-changes:
		assert.Equal(t, store.OpAdded, ch.Op)
		assert.Equal(t, id, ch.ID)
		assert.Equal(t, "Massage", ch.Record.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no change delivered")
	}

	require.NoError(t, c.Delete(ctx, id))
	select {
	case ch := <-changes:
		assert.Equal(t, store.OpRemoved, ch.Op)
		assert.Nil(t, ch.Record)
	case <-time.After(2 * time.Second):
		t.Fatal("no removal delivered")
	}

	cancel()
	for range changes {
	}
}

func TestCollection_BackendDownIsUnavailable(t *testing.T) {
	mr, c := newServices(t)
	mr.Close()

	_, err := c.Query(context.Background(), store.Query{})
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestCache_SaveLoadExpire(t *testing.T) {
	mr, rdb := newRedis(t)
	cache := NewCache[map[string]string](rdb, "drafts", time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "d1", map[string]string{"step": "date"}))

	got, err := cache.Load(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "date", got["step"])

	mr.FastForward(2 * time.Minute)
	_, err = cache.Load(ctx, "d1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRevocations(t *testing.T) {
	mr, rdb := newRedis(t)
	r := NewRevocations(rdb)
	ctx := context.Background()

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Hour))
	revoked, _ = r.IsRevoked(ctx, "jti-1")
	assert.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, _ = r.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)
}

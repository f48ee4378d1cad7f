package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/infra/kv"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

func newProfiles(t *testing.T) store.Collection[*models.UserProfile] {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return kv.NewCollection(rdb, store.UserProfiles, func() *models.UserProfile { return new(models.UserProfile) }, zap.NewNop())
}

func TestRegistry_FollowsAuthEvents(t *testing.T) {
	profiles := newProfiles(t)
	ctx := context.Background()

	_, err := profiles.Add(ctx, &models.UserProfile{ID: "u1", Role: models.RoleCustomer, Name: "Rina", Email: "rina@x.com"})
	require.NoError(t, err)

	reg := NewRegistry(profiles, zap.NewNop())
	events := make(chan auth.Event, 2)
	done := make(chan struct{})
	go func() {
		reg.Run(ctx, events)
		close(done)
	}()

	sess := auth.Session{UserID: "u1", Email: "rina@x.com", TokenID: "t1"}
	events <- auth.Event{Kind: auth.SignedIn, Session: sess}

	require.Eventually(t, func() bool {
		_, ok := reg.Get("t1")
		return ok
	}, time.Second, 5*time.Millisecond)

	c, _ := reg.Get("t1")
	assert.Equal(t, models.RoleCustomer, c.Role)
	assert.False(t, c.IsOwner())

	events <- auth.Event{Kind: auth.SignedOut, Session: sess}
	close(events)
	<-done

	assert.Zero(t, reg.Len())
}

func TestRegistry_ResolveLoadsOrFails(t *testing.T) {
	profiles := newProfiles(t)
	ctx := context.Background()
	reg := NewRegistry(profiles, zap.NewNop())

	_, err := reg.Resolve(ctx, auth.Session{UserID: "ghost", TokenID: "t"})
	assert.ErrorIs(t, err, ErrProfileMissing)

	_, err = profiles.Add(ctx, &models.UserProfile{
		ID: "o1", Role: models.RoleOwner, Name: "Nadia", Email: "n@x.com",
		BusinessName: "Glow", District: "Dhaka", Area: "Gulshan",
	})
	require.NoError(t, err)

	c, err := reg.Resolve(ctx, auth.Session{UserID: "o1", Email: "n@x.com", TokenID: "t2"})
	require.NoError(t, err)
	assert.True(t, c.IsOwner())
	assert.Equal(t, 1, reg.Len())

	updated := *c.Profile
	updated.Role = models.RoleCustomer
	reg.Refresh(&updated)

	again, ok := reg.Get("t2")
	require.True(t, ok)
	assert.Equal(t, models.RoleCustomer, again.Role)
}

package settings

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/kv"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	newOf := func() *models.Settings { return new(models.Settings) }
	logs := kv.NewCollection(rdb, store.AuditLogs, func() *models.AuditLog { return new(models.AuditLog) }, zap.NewNop())
	d := audit.NewDispatcher(audit.New(logs), zap.NewNop())
	t.Cleanup(d.Close)

	return NewService(kv.NewCollection(rdb, store.Settings, newOf, zap.NewNop()), d, zap.NewNop())
}

var owner = &session.Context{UserID: "o1", Role: models.RoleOwner}

func TestService_GetDefaults(t *testing.T) {
	s := newService(t)

	cur, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, cur.Hours, 7)
}

func TestService_UpdateAndStatus(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	hours := []models.DayHours{}
	for wd := 0; wd < 7; wd++ {
		hours = append(hours, models.DayHours{Weekday: wd, Open: "09:00", Close: "17:00"})
	}

	_, err := s.Update(ctx, owner, UpdateInput{BusinessName: "Glow", Hours: hours})
	require.NoError(t, err)

	hours[0].Closed = true
	saved, err := s.Update(ctx, owner, UpdateInput{BusinessName: "Glow Studio", Hours: hours})
	require.NoError(t, err)
	assert.Equal(t, "Glow Studio", saved.BusinessName)
	assert.True(t, saved.Hours[0].Closed)

	// 2025-06-02 is a Monday
	s.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	st, err := s.RefreshStatus(ctx)
	require.NoError(t, err)
	assert.True(t, st.Open)
	assert.Equal(t, "17:00", st.ClosesAt)
	assert.Equal(t, st, s.Status())

	s.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	st, err = s.RefreshStatus(ctx)
	require.NoError(t, err)
	assert.False(t, st.Open)
}

func TestService_UpdateRejectsBadHours(t *testing.T) {
	s := newService(t)

	_, err := s.Update(context.Background(), owner, UpdateInput{
		Hours: []models.DayHours{{Weekday: 1, Open: "18:00", Close: "09:00"}},
	})
	_, ok := httperr.Fields(err)
	assert.True(t, ok)
}

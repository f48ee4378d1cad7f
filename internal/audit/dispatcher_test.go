package audit

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/infra/kv"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

func TestDispatcher_WritesEvents(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	logs := kv.NewCollection(rdb, store.AuditLogs, func() *models.AuditLog { return new(models.AuditLog) }, zap.NewNop())
	logger := New(logs)
	d := NewDispatcher(logger, zap.NewNop())

	d.Dispatch(Event{UserID: "u1", Action: "booking.cancel", Entity: "booking", EntityID: "b1", Metadata: map[string]string{"by": "owner"}})
	d.Dispatch(Event{UserID: "u1", Action: "service.delete", Entity: "service", EntityID: "s1"})
	d.Close()

	all, err := logger.List(context.Background(), "", "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cancels, err := logger.List(context.Background(), "booking.cancel", "", 0)
	require.NoError(t, err)
	require.Len(t, cancels, 1)
	assert.JSONEq(t, `{"by":"owner"}`, cancels[0].Metadata)
}

func TestDispatcher_DropsEventsAfterClose(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	logs := kv.NewCollection(rdb, store.AuditLogs, func() *models.AuditLog { return new(models.AuditLog) }, zap.NewNop())
	logger := New(logs)
	d := NewDispatcher(logger, zap.NewNop())

	d.Dispatch(Event{UserID: "u1", Action: "booking.cancel", Entity: "booking", EntityID: "b1"})
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{UserID: "u1", Action: "booking.status", Entity: "booking", EntityID: "b1"})
		d.Close()
	})

	all, err := logger.List(context.Background(), "", "", 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "booking.cancel", all[0].Action)
}

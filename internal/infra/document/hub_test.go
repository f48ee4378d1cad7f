package document

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/store"
)

func TestHub_DispatchesPerCollection(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bookings := hub.Subscribe(ctx, store.Bookings)
	services := hub.Subscribe(ctx, store.Services)

	n := hub.Dispatch(Event{Collection: store.Bookings, Op: store.OpAdded, ID: "b1"})
	assert.Equal(t, 1, n)

	select {
	case ev := <-bookings:
		assert.Equal(t, "b1", ev.ID)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	select {
	case ev := <-services:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestHub_UnsubscribesOnCancel(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	events := hub.Subscribe(ctx, store.Bookings)
	cancel()

	_, open := <-events
	require.False(t, open)
	assert.Equal(t, 0, hub.Dispatch(Event{Collection: store.Bookings, ID: "b2"}))
}

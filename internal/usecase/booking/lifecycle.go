package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// Lifecycle applies status transitions. Bookings are never deleted.
type Lifecycle struct {
	bookings store.Collection[*models.Booking]
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewLifecycle(bookings store.Collection[*models.Booking], audit *audit.Dispatcher) *Lifecycle {
	return &Lifecycle{bookings: bookings, audit: audit, now: timezone.Now}
}

// Cancel is open to the owner and to the customer who made the booking.
func (uc *Lifecycle) Cancel(ctx context.Context, sess *session.Context, id string) (*models.Booking, error) {
	b, err := uc.load(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	updated, err := uc.bookings.Update(ctx, id, map[string]any{
		"status":       b.Status,
		"cancelled_at": now,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]any{"role": sess.Role},
	})
	return updated, nil
}

func (uc *Lifecycle) Complete(ctx context.Context, sess *session.Context, id string) (*models.Booking, error) {
	if !sess.IsOwner() {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	b, err := uc.load(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	updated, err := uc.bookings.Update(ctx, id, map[string]any{
		"status":       b.Status,
		"completed_at": now,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: id,
	})
	return updated, nil
}

// load hides other customers' bookings behind the same not-found answer.
func (uc *Lifecycle) load(ctx context.Context, sess *session.Context, id string) (*models.Booking, error) {
	b, err := uc.bookings.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	if !sess.IsOwner() && b.CustomerEmail != sess.Email && (b.CustomerID == "" || b.CustomerID != sess.UserID) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return b, nil
}

package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/dashboard"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type CustomerView struct {
	Stats   domain.Stats      `json:"stats"`
	History []*models.Booking `json:"history"`
}

// Dashboard recomputes everything from the booking list on each call.
type Dashboard struct {
	bookings store.Collection[*models.Booking]
	log      *zap.Logger
	now      func() time.Time
}

func New(bookings store.Collection[*models.Booking], log *zap.Logger) *Dashboard {
	return &Dashboard{bookings: bookings, log: log, now: timezone.Now}
}

func (d *Dashboard) Admin(ctx context.Context) (domain.Stats, error) {
	all, err := store.All(ctx, d.bookings)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Compute(all, d.now()), nil
}

// AdminHistory lists every booking, newest first, by status or "all".
func (d *Dashboard) AdminHistory(ctx context.Context, status string) ([]*models.Booking, error) {
	all, err := store.All(ctx, d.bookings)
	if err != nil {
		return nil, err
	}
	return domain.FilterByStatus(domain.Recent(all, 0), status), nil
}

// Customer scopes the same figures to bookings made with the session email.
func (d *Dashboard) Customer(ctx context.Context, sess *session.Context, status string) (CustomerView, error) {
	mine, err := d.bookings.Query(ctx, store.Query{
		Where: store.Filter{"customer_email": sess.Email},
	})
	if err != nil {
		return CustomerView{}, err
	}

	return CustomerView{
		Stats:   domain.Compute(mine, d.now()),
		History: domain.FilterByStatus(domain.Recent(mine, 0), status),
	}, nil
}

// Stream pushes fresh admin stats once on start and again after every
// booking change, until ctx is done.
func (d *Dashboard) Stream(ctx context.Context) (<-chan domain.Stats, error) {
	changes, err := d.bookings.Subscribe(ctx, nil)
	if err != nil {
		return nil, err
	}

	out := make(chan domain.Stats, 1)

	go func() {
		defer close(out)

		push := func() bool {
			stats, err := d.Admin(ctx)
			if err != nil {
				d.log.Warn("dashboard recompute failed", zap.Error(err))
				return true
			}
			select {
			case out <- stats:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !push() {
			return
		}
		for range changes {
			if !push() {
				return
			}
		}
	}()

	return out, nil
}

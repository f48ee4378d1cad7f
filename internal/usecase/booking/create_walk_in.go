package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateWalkInInput struct {
	ServiceID string
	StaffID   string

	Date string
	Time string

	domain.Details
}

// ======================================================
// USE CASE
// ======================================================

// CreateWalkIn lets the owner record a booking in one call. It runs the
// same step validations as the online flow; payment is taken in person.
type CreateWalkIn struct {
	services     store.Collection[*models.Service]
	staff        store.Collection[*models.Staff]
	bookings     store.Collection[*models.Booking]
	availability *GetAvailability
	audit        *audit.Dispatcher
	metrics      *metrics.Metrics
	feePercent   float64
	now          func() time.Time
}

func NewCreateWalkIn(
	services store.Collection[*models.Service],
	staff store.Collection[*models.Staff],
	bookings store.Collection[*models.Booking],
	availability *GetAvailability,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	feePercent float64,
) *CreateWalkIn {
	return &CreateWalkIn{
		services:     services,
		staff:        staff,
		bookings:     bookings,
		availability: availability,
		audit:        audit,
		metrics:      m,
		feePercent:   feePercent,
		now:          timezone.Now,
	}
}

func (uc *CreateWalkIn) Execute(ctx context.Context, sess *session.Context, in CreateWalkInInput) (*models.Booking, error) {
	now := uc.now()
	d := domain.NewDraft(uuid.NewString(), now)

	// --------------------------------------------------
	// Service / staff
	// --------------------------------------------------
	svc, err := uc.services.Get(ctx, in.ServiceID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if err := d.SelectService(svc); err != nil {
		return nil, err
	}

	var st *models.Staff
	if in.StaffID != "" {
		st, err = uc.staff.Get(ctx, in.StaffID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.Field("staff_id", "staff_not_found", "Choose a stylist from the list.")
		}
		if err != nil {
			return nil, err
		}
	}
	if err := d.SelectStaff(st); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Date / time
	// --------------------------------------------------
	if err := d.SelectDate(in.Date, now); err != nil {
		return nil, err
	}

	slots, err := uc.availability.Execute(ctx, d.Date, d.StaffID)
	if err != nil {
		return nil, err
	}
	if err := d.SelectTime(in.Time, slots); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Contact details
	// --------------------------------------------------
	if err := d.EnterDetails(in.Details, uc.feePercent); err != nil {
		return nil, err
	}

	b, err := d.Booking(now)
	if err != nil {
		return nil, err
	}
	b.PaymentRef = "walk-in"

	id, err := uc.bookings.Add(ctx, b)
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingConfirmed()
	uc.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]any{"walk_in": true},
	})

	return b, nil
}

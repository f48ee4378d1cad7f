package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type SettingsReader interface {
	Get(ctx context.Context) (*models.Settings, error)
}

type GetAvailability struct {
	bookings    store.Collection[*models.Booking]
	settings    SettingsReader
	slotMinutes int
	now         func() time.Time
}

func NewGetAvailability(
	bookings store.Collection[*models.Booking],
	settings SettingsReader,
	slotMinutes int,
) *GetAvailability {
	return &GetAvailability{
		bookings:    bookings,
		settings:    settings,
		slotMinutes: slotMinutes,
		now:         timezone.Now,
	}
}

// Execute recomputes free slots from the confirmed bookings of the date.
// Nothing is reserved: two callers can see and take the same slot.
func (uc *GetAvailability) Execute(ctx context.Context, date, staffID string) ([]domain.TimeSlot, error) {
	now := uc.now()

	day, err := timezone.ParseDate(date, now.Location())
	if err != nil {
		return nil, httperr.Field("date", "invalid_date", "Use the YYYY-MM-DD format.")
	}

	s, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	open, closing, ok := domain.Window(s, day)
	if !ok {
		return []domain.TimeSlot{}, nil
	}

	bookings, err := uc.bookings.Query(ctx, store.Query{
		Where: store.Filter{
			"date":   date,
			"status": models.BookingConfirmed,
		},
	})
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(domain.AvailabilityInput{
		Date:        date,
		SlotMinutes: uc.slotMinutes,
		StaffID:     staffID,
		Open:        open,
		Close:       closing,
		Bookings:    bookings,
		Now:         now,
	}), nil
}

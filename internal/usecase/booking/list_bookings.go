package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

type ListFilter struct {
	Status  string
	Date    string
	StaffID string
	Email   string
	Limit   int
}

type ListBookings struct {
	bookings store.Collection[*models.Booking]
}

func NewListBookings(bookings store.Collection[*models.Booking]) *ListBookings {
	return &ListBookings{bookings: bookings}
}

// Execute returns newest bookings first. "all" and "" skip the status filter.
func (uc *ListBookings) Execute(ctx context.Context, f ListFilter) ([]*models.Booking, error) {
	where := store.Filter{}
	if f.Status != "" && f.Status != "all" {
		where["status"] = f.Status
	}
	if f.Date != "" {
		where["date"] = f.Date
	}
	if f.StaffID != "" {
		where["staff_id"] = f.StaffID
	}
	if f.Email != "" {
		where["customer_email"] = f.Email
	}

	return uc.bookings.Query(ctx, store.Query{
		Where:   where,
		OrderBy: "created_at",
		Desc:    true,
		Limit:   f.Limit,
	})
}

package booking

import (
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status = models.BookingStatus

const (
	StatusConfirmed = models.BookingConfirmed
	StatusCompleted = models.BookingCompleted
	StatusCancelled = models.BookingCancelled
)

// ===============================
// Validations
// ===============================

// CanCancel only lets confirmed bookings be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}

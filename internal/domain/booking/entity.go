package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(b.Status); err != nil {
		return err
	}

	b.Status = StatusCancelled
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(b.Status); err != nil {
		return err
	}

	b.Status = StatusCompleted
	b.CompletedAt = &now
	return nil
}

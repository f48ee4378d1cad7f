package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func bk(id, email, date, clock string, status models.BookingStatus, price float64, created time.Duration) *models.Booking {
	return &models.Booking{
		ID:            id,
		CustomerEmail: email,
		Date:          date,
		Time:          clock,
		Status:        status,
		Price:         price,
		CreatedAt:     base.Add(created),
	}
}

func fixture() []*models.Booking {
	return []*models.Booking{
		bk("1", "a@x.com", "2025-06-01", "10:00", models.BookingConfirmed, 45, -5*time.Hour),
		bk("2", "b@x.com", "2025-06-01", "15:00", models.BookingConfirmed, 30, -4*time.Hour),
		bk("3", "a@x.com", "2025-06-02", "11:00", models.BookingConfirmed, 20, -3*time.Hour),
		bk("4", "c@x.com", "2025-05-30", "09:00", models.BookingCompleted, 50, -2*time.Hour),
		bk("5", "c@x.com", "2025-05-29", "09:00", models.BookingCompleted, 0, -1*time.Hour),
		bk("6", "d@x.com", "2025-06-01", "16:00", models.BookingCancelled, 99, -1*time.Hour),
	}
}

func TestCompute(t *testing.T) {
	stats := Compute(fixture(), base)

	assert.Equal(t, 2, stats.TodayCount)
	// 10:00 today is already past; 15:00 today and tomorrow remain
	assert.Equal(t, 2, stats.UpcomingCount)
	assert.Equal(t, 50.0, stats.Revenue)
	assert.Equal(t, 4, stats.UniqueCustomers)

	require.Len(t, stats.Recent, 5)
	ids := []string{}
	for _, b := range stats.Recent {
		ids = append(ids, b.ID)
	}
	// 5 and 6 share a timestamp and keep input order
	assert.Equal(t, []string{"5", "6", "4", "3", "2"}, ids)
}

func TestCompute_Empty(t *testing.T) {
	stats := Compute(nil, base)

	assert.Zero(t, stats.TodayCount)
	assert.Zero(t, stats.Revenue)
	assert.NotNil(t, stats.Recent)
}

func TestCompute_RevenueIsPlainSum(t *testing.T) {
	bookings := []*models.Booking{
		bk("1", "a@x.com", "2025-05-30", "09:00", models.BookingCompleted, 12.345, -3*time.Hour),
		bk("2", "b@x.com", "2025-05-30", "10:00", models.BookingCompleted, 0.1, -2*time.Hour),
		bk("3", "c@x.com", "2025-05-30", "11:00", models.BookingCompleted, 0.2, -1*time.Hour),
	}

	stats := Compute(bookings, base)

	assert.Equal(t, 12.345+0.1+0.2, stats.Revenue)
}

func TestFilterByStatus(t *testing.T) {
	all := fixture()

	assert.Len(t, FilterByStatus(all, "all"), 6)
	assert.Len(t, FilterByStatus(all, ""), 6)
	assert.Len(t, FilterByStatus(all, "confirmed"), 3)
	assert.Len(t, FilterByStatus(all, "completed"), 2)
	assert.Empty(t, FilterByStatus(all, "Confirmed"))
}

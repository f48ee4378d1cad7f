package dashboard

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

const (
	RecentLimit = 5
	StatusAll   = "all"
)

type Stats struct {
	TodayCount      int               `json:"today_count"`
	UpcomingCount   int               `json:"upcoming_count"`
	Revenue         float64           `json:"revenue"` // plain sum, display rounds
	UniqueCustomers int               `json:"unique_customers"`
	Recent          []*models.Booking `json:"recent"`
}

// Compute rebuilds every figure from the full list. now must already be in
// the salon's timezone since dates and times are compared as local strings.
func Compute(bookings []*models.Booking, now time.Time) Stats {
	today := timezone.Today(now)
	current := now.Format(timezone.DateTimeLayout)

	stats := Stats{}
	emails := map[string]struct{}{}

	for _, b := range bookings {
		if b == nil {
			continue
		}

		if b.Status == models.BookingConfirmed {
			if b.Date == today {
				stats.TodayCount++
			}
			if b.Date+" "+b.Time >= current {
				stats.UpcomingCount++
			}
		}

		if b.Status == models.BookingCompleted {
			stats.Revenue += b.Price
		}

		emails[b.CustomerEmail] = struct{}{}
	}

	stats.UniqueCustomers = len(emails)
	stats.Recent = Recent(bookings, RecentLimit)

	return stats
}

// Recent sorts by creation time, newest first. Ties keep input order.
func Recent(bookings []*models.Booking, limit int) []*models.Booking {
	out := make([]*models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			out = append(out, b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FilterByStatus keeps bookings whose status matches exactly; "all" or an
// empty status keeps everything.
func FilterByStatus(bookings []*models.Booking, status string) []*models.Booking {
	out := make([]*models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b == nil {
			continue
		}
		if status == "" || status == StatusAll || string(b.Status) == status {
			out = append(out, b)
		}
	}
	return out
}

package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Window returns the opening window for the weekday of date.
func Window(s *models.Settings, date time.Time) (open, closing string, ok bool) {
	if s == nil {
		return "", "", false
	}
	d, found := s.HoursFor(date.Weekday())
	if !found || d.Closed || d.Open == "" || d.Close == "" {
		return "", "", false
	}
	return d.Open, d.Close, true
}

// IsOpenAt reports whether the salon is open at t (in t's location).
func IsOpenAt(s *models.Settings, t time.Time) bool {
	open, closing, ok := Window(s, t)
	if !ok {
		return false
	}

	start, err1 := minuteOfDay(open)
	end, err2 := minuteOfDay(closing)
	if err1 != nil || err2 != nil {
		return false
	}

	now := t.Hour()*60 + t.Minute()
	return now >= start && now < end
}

func minuteOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinute(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format("15:04")
}

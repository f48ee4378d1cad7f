package timezone

import (
	"sync/atomic"
	"time"
)

const (
	DefaultTimezone = "Asia/Dhaka"

	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = DateLayout + " " + TimeLayout
)

var current atomic.Value

func init() {
	current.Store(DefaultTimezone)
}

// SetDefault changes the salon timezone used by Now. Invalid names are ignored.
func SetDefault(tz string) {
	if IsValid(tz) {
		current.Store(tz)
	}
}

func Default() string {
	return current.Load().(string)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(Default())
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(Default()))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, date+" "+clock, loc)
}

// Today formats t as a calendar day key.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

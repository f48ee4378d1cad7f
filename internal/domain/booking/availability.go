package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type AvailabilityInput struct {
	Date        string
	SlotMinutes int
	StaffID     string

	// Open and Close bound the day; an empty Open means closed.
	Open  string
	Close string

	Bookings []*models.Booking
	Now      time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type interval struct{ start, end int }

// AvailableSlots lists the fixed-size slots of the day not covered by a
// confirmed booking. With a staff id only that staff's bookings block a
// slot; without one any booking on the date does. Nothing is persisted:
// the answer is recomputed from the booking list every time.
func AvailableSlots(in AvailabilityInput) []TimeSlot {
	slots := []TimeSlot{}

	if in.SlotMinutes <= 0 || in.Open == "" || in.Close == "" {
		return slots
	}

	open, err1 := minuteOfDay(in.Open)
	closing, err2 := minuteOfDay(in.Close)
	if err1 != nil || err2 != nil || closing <= open {
		return slots
	}

	earliest := open
	if !in.Now.IsZero() {
		today := timezone.Today(in.Now)
		switch {
		case in.Date < today:
			return slots
		case in.Date == today:
			earliest = in.Now.Hour()*60 + in.Now.Minute()
		}
	}

	busy := occupied(in)

	for start := open; start+in.SlotMinutes <= closing; start += in.SlotMinutes {
		if start < earliest {
			continue
		}
		end := start + in.SlotMinutes
		if overlapsAny(start, end, busy) {
			continue
		}
		slots = append(slots, TimeSlot{Start: formatMinute(start), End: formatMinute(end)})
	}

	return slots
}

// IsSlotFree checks a single start time against the same rules.
func IsSlotFree(in AvailabilityInput, start string) bool {
	for _, s := range AvailableSlots(in) {
		if s.Start == start {
			return true
		}
	}
	return false
}

func occupied(in AvailabilityInput) []interval {
	var busy []interval
	for _, b := range in.Bookings {
		if b == nil || b.Status != StatusConfirmed || b.Date != in.Date {
			continue
		}
		if in.StaffID != "" && b.StaffID != in.StaffID {
			continue
		}
		start, err := minuteOfDay(b.Time)
		if err != nil {
			continue
		}
		length := b.DurationMin
		if length <= 0 {
			length = in.SlotMinutes
		}
		busy = append(busy, interval{start: start, end: start + length})
	}
	return busy
}

// half-open: [s,e) overlaps [b.start,b.end) iff s < b.end && b.start < e
func overlapsAny(start, end int, busy []interval) bool {
	for _, b := range busy {
		if start < b.end && b.start < end {
			return true
		}
	}
	return false
}

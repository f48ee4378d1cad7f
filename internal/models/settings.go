package models

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const SettingsID = "default"

// DayHours is the opening window for one weekday (0 = Sunday).
type DayHours struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open"`
	Close   string `json:"close"`
	Closed  bool   `json:"closed"`
}

type Settings struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BusinessName string     `gorm:"size:100" json:"business_name"`
	Phone        string     `gorm:"size:20" json:"phone"`
	Address      string     `gorm:"size:255" json:"address"`
	Hours        []DayHours `gorm:"serializer:json" json:"hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Settings) GetID() string   { return s.ID }
func (s *Settings) SetID(id string) { s.ID = id }

func (s *Settings) Validate() error {
	var errs httperr.ValidationErrors

	seen := map[int]bool{}
	for i, d := range s.Hours {
		field := fmt.Sprintf("hours[%d]", i)
		if d.Weekday < 0 || d.Weekday > 6 {
			errs.Add(field, "invalid_weekday", "Weekday must be between 0 and 6.")
			continue
		}
		if seen[d.Weekday] {
			errs.Add(field, "duplicate_weekday", "Weekday listed twice.")
		}
		seen[d.Weekday] = true

		if d.Closed {
			continue
		}
		open, err1 := time.Parse("15:04", d.Open)
		closing, err2 := time.Parse("15:04", d.Close)
		if err1 != nil || err2 != nil {
			errs.Add(field, "invalid_time", "Use HH:MM for opening and closing times.")
			continue
		}
		if !closing.After(open) {
			errs.Add(field, "invalid_window", "Closing time must be after opening time.")
		}
	}

	return errs.Err()
}

// HoursFor returns the configured window for a weekday, if any.
func (s *Settings) HoursFor(weekday time.Weekday) (DayHours, bool) {
	for _, d := range s.Hours {
		if d.Weekday == int(weekday) {
			return d, true
		}
	}
	return DayHours{}, false
}

// DefaultSettings opens 10:00–20:00 every day except Friday mornings.
func DefaultSettings() *Settings {
	hours := make([]DayHours, 0, 7)
	for wd := 0; wd < 7; wd++ {
		d := DayHours{Weekday: wd, Open: "10:00", Close: "20:00"}
		if time.Weekday(wd) == time.Friday {
			d.Open = "14:00"
		}
		hours = append(hours, d)
	}
	return &Settings{ID: SettingsID, BusinessName: "Salon", Hours: hours}
}

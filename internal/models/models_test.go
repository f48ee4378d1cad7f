package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

func validBooking() *Booking {
	return &Booking{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "01712-345678",
		ServiceID:     "svc-1",
		ServiceName:   "Haircut & Styling",
		Date:          "2025-06-01",
		Time:          "10:00",
		Status:        BookingConfirmed,
		Price:         45,
	}
}

func TestBooking_Validate(t *testing.T) {
	require.NoError(t, validBooking().Validate())

	b := validBooking()
	b.CustomerEmail = "jane.example.com"
	b.Status = "pending"

	fields, ok := httperr.Fields(b.Validate())
	require.True(t, ok)

	var names []string
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"customer_email", "status"}, names)
}

func TestService_Validate(t *testing.T) {
	s := &Service{Name: "Facial", Category: CategorySkin, Price: 30, DurationMin: 60}
	require.NoError(t, s.Validate())

	s.Category = "nails"
	s.DurationMin = 0
	fields, ok := httperr.Fields(s.Validate())
	require.True(t, ok)
	assert.Len(t, fields, 2)
}

func TestUserProfile_OwnerNeedsLocation(t *testing.T) {
	u := &UserProfile{Role: RoleOwner, Name: "Owner", Email: "owner@example.com", BusinessName: "Glow"}
	require.Error(t, u.Validate())

	u.District, u.Area = "Dhaka", "Gulshan"
	require.NoError(t, u.Validate())

	c := &UserProfile{Role: RoleCustomer, Name: "C", Email: "c@example.com"}
	require.NoError(t, c.Validate())
}

func TestSettings_ValidateAndHoursFor(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	fri, ok := s.HoursFor(time.Friday)
	require.True(t, ok)
	assert.Equal(t, "14:00", fri.Open)

	s.Hours = append(s.Hours, DayHours{Weekday: 1, Open: "18:00", Close: "09:00"})
	require.Error(t, s.Validate())
}

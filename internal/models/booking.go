package models

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerID    string `gorm:"size:36;index" json:"customer_id,omitempty"`
	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;index" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	ServiceID   string `gorm:"size:36" json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`
	DurationMin int    `json:"duration_min"`

	StaffID   string `gorm:"size:36;index" json:"staff_id,omitempty"`
	StaffName string `gorm:"size:100" json:"staff_name,omitempty"`

	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status      BookingStatus `gorm:"size:20;default:'confirmed';index" json:"status"`
	Price       float64       `json:"price"`
	PlatformFee float64       `json:"platform_fee"`
	PaymentRef  string        `gorm:"size:100" json:"payment_ref,omitempty"`
	Notes       string        `gorm:"size:500" json:"notes,omitempty"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) GetID() string   { return b.ID }
func (b *Booking) SetID(id string) { b.ID = id }

func (b *Booking) Validate() error {
	var errs httperr.ValidationErrors

	if b.CustomerName == "" {
		errs.Add("customer_name", "required", "Name is required.")
	}
	if !validators.IsEmail(b.CustomerEmail) {
		errs.Add("customer_email", "invalid_email", "Enter a valid email address.")
	}
	if !validators.IsPhone(b.CustomerPhone) {
		errs.Add("customer_phone", "invalid_phone", "Enter a valid phone number.")
	}
	if b.ServiceID == "" || b.ServiceName == "" {
		errs.Add("service_id", "required", "Service is required.")
	}
	if b.Date == "" {
		errs.Add("date", "required", "Date is required.")
	}
	if b.Time == "" {
		errs.Add("time", "required", "Time is required.")
	}
	if !b.Status.Valid() {
		errs.Add("status", "invalid_status", "Unknown booking status.")
	}
	if b.Price < 0 {
		errs.Add("price", "invalid_price", "Price cannot be negative.")
	}

	return errs.Err()
}

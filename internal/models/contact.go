package models

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type ContactMessage struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone,omitempty"`
	Subject string `gorm:"size:150" json:"subject"`
	Message string `gorm:"type:text" json:"message"`
	Read    bool   `gorm:"default:false;index" json:"read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *ContactMessage) GetID() string   { return m.ID }
func (m *ContactMessage) SetID(id string) { m.ID = id }

func (m *ContactMessage) Validate() error {
	var errs httperr.ValidationErrors

	if m.Name == "" {
		errs.Add("name", "required", "Name is required.")
	}
	if !validators.IsEmail(m.Email) {
		errs.Add("email", "invalid_email", "Enter a valid email address.")
	}
	if m.Phone != "" && !validators.IsPhone(m.Phone) {
		errs.Add("phone", "invalid_phone", "Enter a valid phone number.")
	}
	if m.Message == "" {
		errs.Add("message", "required", "Message is required.")
	}

	return errs.Err()
}

type NewsletterSubscriber struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *NewsletterSubscriber) GetID() string   { return n.ID }
func (n *NewsletterSubscriber) SetID(id string) { n.ID = id }

func (n *NewsletterSubscriber) Validate() error {
	if !validators.IsEmail(n.Email) {
		return httperr.Field("email", "invalid_email", "Enter a valid email address.")
	}
	return nil
}

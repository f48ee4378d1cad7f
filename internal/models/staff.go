package models

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type Staff struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Email     string `gorm:"size:100" json:"email,omitempty"`
	Phone     string `gorm:"size:20" json:"phone,omitempty"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Staff) GetID() string   { return s.ID }
func (s *Staff) SetID(id string) { s.ID = id }

func (s *Staff) Validate() error {
	var errs httperr.ValidationErrors

	if s.Name == "" {
		errs.Add("name", "required", "Name is required.")
	}
	if s.Email != "" && !validators.IsEmail(s.Email) {
		errs.Add("email", "invalid_email", "Enter a valid email address.")
	}
	if s.Phone != "" && !validators.IsPhone(s.Phone) {
		errs.Add("phone", "invalid_phone", "Enter a valid phone number.")
	}

	return errs.Err()
}

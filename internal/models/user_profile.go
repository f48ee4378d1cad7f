package models

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/geo"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

type UserProfile struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Role  Role   `gorm:"size:20;default:'customer'" json:"role"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	BusinessName string `gorm:"size:100" json:"business_name,omitempty"`
	District     string `gorm:"size:50" json:"district,omitempty"`
	Area         string `gorm:"size:50" json:"area,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *UserProfile) GetID() string   { return u.ID }
func (u *UserProfile) SetID(id string) { u.ID = id }

func (u *UserProfile) Validate() error {
	var errs httperr.ValidationErrors

	if u.Role != RoleCustomer && u.Role != RoleOwner {
		errs.Add("role", "invalid_role", "Role must be customer or owner.")
	}
	if u.Name == "" {
		errs.Add("name", "required", "Name is required.")
	}
	if !validators.IsEmail(u.Email) {
		errs.Add("email", "invalid_email", "Enter a valid email address.")
	}
	if u.Phone != "" && !validators.IsPhone(u.Phone) {
		errs.Add("phone", "invalid_phone", "Enter a valid phone number.")
	}

	if u.Role == RoleOwner {
		if u.BusinessName == "" {
			errs.Add("business_name", "required", "Business name is required.")
		}
		if !geo.IsValid(u.District, u.Area) {
			errs.Add("area", "invalid_location", "Pick a district and an area from the list.")
		}
	}

	return errs.Err()
}

// Credential is private to the auth backend; it never leaves it.
type Credential struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Credential) GetID() string   { return c.ID }
func (c *Credential) SetID(id string) { c.ID = id }

func (c *Credential) Validate() error {
	var errs httperr.ValidationErrors
	if c.Email == "" {
		errs.Add("email", "required", "Email is required.")
	}
	if c.PasswordHash == "" {
		errs.Add("password", "required", "Password is required.")
	}
	return errs.Err()
}

package models

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type Category string

const (
	CategoryHair   Category = "hair"
	CategorySkin   Category = "skin"
	CategoryBridal Category = "bridal"
	CategorySpa    Category = "spa"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHair, CategorySkin, CategoryBridal, CategorySpa:
		return true
	}
	return false
}

type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Category    Category `gorm:"size:20;index" json:"category"`
	Price       float64  `json:"price"`
	DurationMin int      `json:"duration_min"`
	Description string   `gorm:"size:500" json:"description"`
	Active      bool     `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) GetID() string   { return s.ID }
func (s *Service) SetID(id string) { s.ID = id }

func (s *Service) Validate() error {
	var errs httperr.ValidationErrors

	if s.Name == "" {
		errs.Add("name", "required", "Name is required.")
	}
	if !s.Category.Valid() {
		errs.Add("category", "invalid_category", "Category must be hair, skin, bridal or spa.")
	}
	if s.Price < 0 {
		errs.Add("price", "invalid_price", "Price cannot be negative.")
	}
	if s.DurationMin <= 0 {
		errs.Add("duration_min", "invalid_duration", "Duration must be at least one minute.")
	}

	return errs.Err()
}

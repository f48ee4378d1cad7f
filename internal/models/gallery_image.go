package models

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type GalleryImage struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title     string   `gorm:"size:150" json:"title"`
	Category  Category `gorm:"size:20;index" json:"category"`
	ObjectKey string   `gorm:"size:255" json:"object_key"`
	URL       string   `gorm:"size:500" json:"url"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *GalleryImage) GetID() string   { return g.ID }
func (g *GalleryImage) SetID(id string) { g.ID = id }

func (g *GalleryImage) Validate() error {
	var errs httperr.ValidationErrors

	if !g.Category.Valid() {
		errs.Add("category", "invalid_category", "Category must be hair, skin, bridal or spa.")
	}
	if g.ObjectKey == "" || g.URL == "" {
		errs.Add("file", "required", "Image upload is required.")
	}

	return errs.Err()
}

package models

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type AuditLog struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID   string `gorm:"size:36;index" json:"user_id,omitempty"`
	Action   string `gorm:"size:50;not null;index" json:"action"`
	Entity   string `gorm:"size:50;index" json:"entity"`
	EntityID string `gorm:"size:36" json:"entity_id,omitempty"`
	Metadata string `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AuditLog) GetID() string   { return a.ID }
func (a *AuditLog) SetID(id string) { a.ID = id }

func (a *AuditLog) Validate() error {
	if a.Action == "" {
		return httperr.Field("action", "required", "Action is required.")
	}
	return nil
}

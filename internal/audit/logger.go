package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

type Logger struct {
	logs store.Collection[*models.AuditLog]
}

func New(logs store.Collection[*models.AuditLog]) *Logger {
	return &Logger{logs: logs}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	_, err := l.logs.Add(ctx, &models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	})
	return err
}

// List returns the newest entries first, optionally narrowed by action
// and entity.
func (l *Logger) List(ctx context.Context, action, entity string, limit int) ([]*models.AuditLog, error) {
	where := store.Filter{}
	if action != "" {
		where["action"] = action
	}
	if entity != "" {
		where["entity"] = entity
	}

	return l.logs.Query(ctx, store.Query{
		Where:   where,
		OrderBy: "created_at",
		Desc:    true,
		Limit:   limit,
	})
}

// Package document is the hosted document-store backend: one gorm table per
// record type with equality filters and ordering pushed into SQL, and live
// change notifications carried by Postgres NOTIFY.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-booking/internal/store"
)

type Collection[T store.Record] struct {
	db        *gorm.DB
	name      string
	newRecord func() T
	hub       *Hub
	log       *zap.Logger
}

func NewCollection[T store.Record](
	db *gorm.DB,
	hub *Hub,
	name string,
	newRecord func() T,
	log *zap.Logger,
) *Collection[T] {
	return &Collection[T]{
		db:        db,
		name:      name,
		newRecord: newRecord,
		hub:       hub,
		log:       log.With(zap.String("collection", name)),
	}
}

func (c *Collection[T]) Name() string { return c.name }

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	}
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}

func (c *Collection[T]) notify(ctx context.Context, op store.Op, id string) {
	payload, _ := json.Marshal(Event{Collection: c.name, Op: op, ID: id})
	if err := c.db.WithContext(ctx).
		Exec("SELECT pg_notify(?, ?)", Channel, string(payload)).Error; err != nil {
		c.log.Warn("change notification failed", zap.String("id", id), zap.Error(err))
	}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (c *Collection[T]) Add(ctx context.Context, rec T) (string, error) {
	if rec.GetID() == "" {
		rec.SetID(uuid.NewString())
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}

	// Select("*") writes zero values too; column defaults never apply.
	if err := c.db.WithContext(ctx).Select("*").Create(rec).Error; err != nil {
		return "", translate(err)
	}

	c.notify(ctx, store.OpAdded, rec.GetID())
	return rec.GetID(), nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	rec := c.newRecord()
	if err := c.db.WithContext(ctx).
		Where("id = ?", id).
		First(rec).Error; err != nil {
		var zero T
		return zero, translate(err)
	}
	return rec, nil
}

func (c *Collection[T]) Query(ctx context.Context, q store.Query) ([]T, error) {
	tx := c.db.WithContext(ctx).Model(c.newRecord())

	if len(q.Where) > 0 {
		tx = tx.Where(map[string]any(q.Where))
	}
	if q.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: q.OrderBy},
			Desc:   q.Desc,
		})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, patch map[string]any) (T, error) {
	var zero T

	current, err := c.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	updated := c.newRecord()
	if err := store.Merge(current, patch, updated); err != nil {
		return zero, err
	}
	if err := updated.Validate(); err != nil {
		return zero, err
	}

	if err := c.db.WithContext(ctx).Save(updated).Error; err != nil {
		return zero, translate(err)
	}

	c.notify(ctx, store.OpModified, id)
	return updated, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(c.newRecord())
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}

	c.notify(ctx, store.OpRemoved, id)
	return nil
}

// --------------------------------------------------
// live changes
// --------------------------------------------------

func (c *Collection[T]) Subscribe(ctx context.Context, f store.Filter) (<-chan store.Change[T], error) {
	events := c.hub.Subscribe(ctx, c.name)
	out := make(chan store.Change[T], 16)

	go func() {
		defer close(out)

		for ev := range events {
			ch := store.Change[T]{Op: ev.Op, ID: ev.ID}

			if ev.Op != store.OpRemoved {
				rec, err := c.Get(ctx, ev.ID)
				if err != nil || !f.Match(rec) {
					continue
				}
				ch.Record = rec
			}

			select {
			case out <- ch:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

var _ store.Collection[store.Record] = (*Collection[store.Record])(nil)

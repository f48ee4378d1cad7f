package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

// crud is the write path shared by services and staff: validate, store,
// audit. Last writer wins; there is no version check.
type crud[T store.Record] struct {
	coll   store.Collection[T]
	audit  *audit.Dispatcher
	entity string
}

func (c *crud[T]) notFound() error {
	return httperr.ErrBusiness(c.entity + "_not_found")
}

func (c *crud[T]) create(ctx context.Context, sess *session.Context, rec T) (T, error) {
	var zero T

	id, err := c.coll.Add(ctx, rec)
	if err != nil {
		return zero, err
	}

	c.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   c.entity + "_created",
		Entity:   c.entity,
		EntityID: id,
	})
	return rec, nil
}

func (c *crud[T]) get(ctx context.Context, id string) (T, error) {
	rec, err := c.coll.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return rec, c.notFound()
	}
	return rec, err
}

func (c *crud[T]) update(ctx context.Context, sess *session.Context, id string, patch map[string]any) (T, error) {
	rec, err := c.coll.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return rec, c.notFound()
	}
	if err != nil {
		return rec, err
	}

	c.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   c.entity + "_updated",
		Entity:   c.entity,
		EntityID: id,
		Metadata: patch,
	})
	return rec, nil
}

func (c *crud[T]) delete(ctx context.Context, sess *session.Context, id string) error {
	err := c.coll.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return c.notFound()
	}
	if err != nil {
		return err
	}

	c.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   c.entity + "_deleted",
		Entity:   c.entity,
		EntityID: id,
	})
	return nil
}

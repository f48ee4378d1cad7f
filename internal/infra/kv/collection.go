// Package kv is the key-value persistence backend: every collection is one
// JSON array stored under its fixed key in Redis and rewritten whole on each
// write. Filters run in process after loading the array.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/store"
)

type changeMessage struct {
	Op store.Op `json:"op"`
	ID string   `json:"id"`
}

type Collection[T store.Record] struct {
	rdb       *redis.Client
	key       string
	newRecord func() T
	log       *zap.Logger
	now       func() time.Time

	// serializes read-modify-write cycles from this process; other
	// processes still race and the last write wins.
	mu sync.Mutex
}

func NewCollection[T store.Record](
	rdb *redis.Client,
	key string,
	newRecord func() T,
	log *zap.Logger,
) *Collection[T] {
	return &Collection[T]{
		rdb:       rdb,
		key:       key,
		newRecord: newRecord,
		log:       log.With(zap.String("collection", key)),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (c *Collection[T]) Name() string { return c.key }

func (c *Collection[T]) channel() string { return "changes:" + c.key }

// --------------------------------------------------
// whole-collection IO
// --------------------------------------------------

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", store.ErrUnavailable, c.key, err)
	}

	var recs []T
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("kv: decode %s: %w", c.key, err)
	}
	return recs, nil
}

func (c *Collection[T]) save(ctx context.Context, recs []T) error {
	if recs == nil {
		recs = []T{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("kv: encode %s: %w", c.key, err)
	}
	if err := c.rdb.Set(ctx, c.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", store.ErrUnavailable, c.key, err)
	}
	return nil
}

func (c *Collection[T]) publish(ctx context.Context, op store.Op, id string) {
	msg, _ := json.Marshal(changeMessage{Op: op, ID: id})
	if err := c.rdb.Publish(ctx, c.channel(), msg).Err(); err != nil {
		c.log.Warn("change notification failed", zap.String("id", id), zap.Error(err))
	}
}

func indexOf[T store.Record](recs []T, id string) int {
	for i, r := range recs {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) stamp(rec T) {
	if s, ok := any(rec).(store.Stamper); ok {
		s.Stamp(c.now())
	}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (c *Collection[T]) Add(ctx context.Context, rec T) (string, error) {
	if rec.GetID() == "" {
		rec.SetID(uuid.NewString())
	}
	c.stamp(rec)
	if err := rec.Validate(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	if indexOf(recs, rec.GetID()) >= 0 {
		return "", store.ErrDuplicate
	}

	if err := c.save(ctx, append(recs, rec)); err != nil {
		return "", err
	}

	c.publish(ctx, store.OpAdded, rec.GetID())
	return rec.GetID(), nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	recs, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	if i := indexOf(recs, id); i >= 0 {
		return recs[i], nil
	}
	return zero, store.ErrNotFound
}

func (c *Collection[T]) Query(ctx context.Context, q store.Query) ([]T, error) {
	recs, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return store.Apply(recs, q)
}

func (c *Collection[T]) Update(ctx context.Context, id string, patch map[string]any) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(recs, id)
	if i < 0 {
		return zero, store.ErrNotFound
	}

	updated := c.newRecord()
	if err := store.Merge(recs[i], patch, updated); err != nil {
		return zero, err
	}
	c.stamp(updated)
	if err := updated.Validate(); err != nil {
		return zero, err
	}

	recs[i] = updated
	if err := c.save(ctx, recs); err != nil {
		return zero, err
	}

	c.publish(ctx, store.OpModified, id)
	return updated, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(recs, id)
	if i < 0 {
		return store.ErrNotFound
	}

	recs = append(recs[:i], recs[i+1:]...)
	if err := c.save(ctx, recs); err != nil {
		return err
	}

	c.publish(ctx, store.OpRemoved, id)
	return nil
}

// --------------------------------------------------
// live changes
// --------------------------------------------------

func (c *Collection[T]) Subscribe(ctx context.Context, f store.Filter) (<-chan store.Change[T], error) {
	ps := c.rdb.Subscribe(ctx, c.channel())
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("%w: subscribe %s: %v", store.ErrUnavailable, c.key, err)
	}

	out := make(chan store.Change[T], 16)

	go func() {
		defer close(out)
		defer ps.Close()

		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgs:
				if !ok {
					return
				}
				ch, deliver := c.resolve(ctx, m.Payload, f)
				if !deliver {
					continue
				}
				select {
				case out <- ch:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (c *Collection[T]) resolve(ctx context.Context, payload string, f store.Filter) (store.Change[T], bool) {
	var msg changeMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		c.log.Warn("bad change payload", zap.Error(err))
		return store.Change[T]{}, false
	}

	if msg.Op == store.OpRemoved {
		return store.Change[T]{Op: msg.Op, ID: msg.ID}, true
	}

	rec, err := c.Get(ctx, msg.ID)
	if err != nil {
		// removed again before we could read it
		return store.Change[T]{}, false
	}
	if !f.Match(rec) {
		return store.Change[T]{}, false
	}
	return store.Change[T]{Op: msg.Op, ID: msg.ID, Record: rec}, true
}

var _ store.Collection[store.Record] = (*Collection[store.Record])(nil)

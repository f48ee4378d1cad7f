package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-booking/internal/store"
)

// Cache keeps short-lived JSON values under prefix:id with a TTL that is
// refreshed on every save.
type Cache[V any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCache[V any](rdb *redis.Client, prefix string, ttl time.Duration) *Cache[V] {
	return &Cache[V]{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *Cache[V]) key(id string) string {
	return c.prefix + ":" + id
}

func (c *Cache[V]) Save(ctx context.Context, id string, v V) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv: encode %s: %w", c.prefix, err)
	}
	if err := c.rdb.Set(ctx, c.key(id), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func (c *Cache[V]) Load(ctx context.Context, id string) (V, error) {
	var v V

	raw, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, store.ErrNotFound
	}
	if err != nil {
		return v, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("kv: decode %s: %w", c.prefix, err)
	}
	return v, nil
}

func (c *Cache[V]) Delete(ctx context.Context, id string) error {
	if err := c.rdb.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

// Lock takes a short exclusive hold on id. It reports false when another
// holder already has it; the hold expires after ttl if never released.
func (c *Cache[V]) Lock(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, c.key(id)+":lock", 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return ok, nil
}

func (c *Cache[V]) Unlock(ctx context.Context, id string) error {
	if err := c.rdb.Del(ctx, c.key(id)+":lock").Err(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

// Revocations remembers signed-out token ids until they would expire anyway.
type Revocations struct {
	rdb *redis.Client
}

func NewRevocations(rdb *redis.Client) *Revocations {
	return &Revocations{rdb: rdb}
}

func (r *Revocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.rdb.Set(ctx, "revoked:"+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func (r *Revocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, "revoked:"+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return n > 0, nil
}

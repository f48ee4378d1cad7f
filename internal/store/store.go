// Package store defines the persistence contract shared by the key-value
// and document backends. Callers must not assume filters are pushed down to
// the backend; both implementations honour Query, but at different cost.
package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("store: record not found")
	ErrUnavailable = errors.New("store: backend unavailable")
	ErrImmutableID = errors.New("store: id cannot be patched")
	ErrDuplicate   = errors.New("store: duplicate id")
)

// Fixed collection keys.
const (
	Bookings              = "bookings"
	Services              = "services"
	Staff                 = "staff"
	Settings              = "settings"
	UserProfiles          = "userProfile"
	ContactMessages       = "contactMessages"
	NewsletterSubscribers = "newsletterSubscribers"
	Credentials           = "credentials"
	Gallery               = "gallery"
	AuditLogs             = "auditLogs"
)

// Record is a typed, self-validating document.
type Record interface {
	GetID() string
	SetID(id string)
	Validate() error
}

type Query struct {
	Where   Filter
	OrderBy string
	Desc    bool
	Limit   int
}

type Op string

const (
	OpAdded    Op = "added"
	OpModified Op = "modified"
	OpRemoved  Op = "removed"
)

// Change is one live notification. Record is the zero value for OpRemoved.
type Change[T Record] struct {
	Op     Op
	ID     string
	Record T
}

type Collection[T Record] interface {
	Name() string
	Add(ctx context.Context, rec T) (string, error)
	Get(ctx context.Context, id string) (T, error)
	Query(ctx context.Context, q Query) ([]T, error)
	Update(ctx context.Context, id string, patch map[string]any) (T, error)
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context, f Filter) (<-chan Change[T], error)
}

// All is shorthand for an unfiltered query.
func All[T Record](ctx context.Context, c Collection[T]) ([]T, error) {
	return c.Query(ctx, Query{})
}

// Stamper lets backends without automatic timestamps maintain them.
type Stamper interface {
	Stamp(now time.Time)
}

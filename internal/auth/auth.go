// Package auth is the authentication backend. Passwords cross into it
// opaquely and never come back out; callers only see sessions and events.
package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrInvalidToken       = errors.New("auth: invalid token")
)

type EventKind string

const (
	SignedIn  EventKind = "signed_in"
	SignedOut EventKind = "signed_out"
)

type Event struct {
	Kind    EventKind
	Session Session
}

// Session is what a valid token proves.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Backend interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	DeleteAccount(ctx context.Context, userID string) error
	SignIn(ctx context.Context, email, password string) (string, Session, error)
	SignOut(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (Session, error)
	Subscribe(ctx context.Context) <-chan Event
}

// Revoker keeps signed-out token ids until they expire.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

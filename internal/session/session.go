// Package session holds who is signed in. Middleware attaches a Context to
// each request; use cases take it as an explicit argument.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

var ErrProfileMissing = errors.New("session: profile not found")

type Context struct {
	UserID  string
	Email   string
	Role    models.Role
	TokenID string
	Profile *models.UserProfile
}

func (c *Context) IsOwner() bool {
	return c != nil && c.Role == models.RoleOwner
}

// Registry maps live token ids to their Context. It is filled on sign-in
// events and emptied on sign-out events; Resolve fills gaps (e.g. after a
// restart) from the profile collection.
type Registry struct {
	profiles store.Collection[*models.UserProfile]
	log      *zap.Logger

	mu      sync.RWMutex
	byToken map[string]*Context
}

func NewRegistry(profiles store.Collection[*models.UserProfile], log *zap.Logger) *Registry {
	return &Registry{
		profiles: profiles,
		log:      log,
		byToken:  map[string]*Context{},
	}
}

// Run consumes auth events until the stream closes.
func (r *Registry) Run(ctx context.Context, events <-chan auth.Event) {
	for ev := range events {
		switch ev.Kind {
		case auth.SignedIn:
			if _, err := r.load(ctx, ev.Session); err != nil {
				r.log.Warn("session not registered",
					zap.String("user_id", ev.Session.UserID),
					zap.Error(err),
				)
			}
		case auth.SignedOut:
			r.Forget(ev.Session.TokenID)
		}
	}
}

func (r *Registry) Get(tokenID string) (*Context, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byToken[tokenID]
	return c, ok
}

// Resolve returns the registered Context for sess or loads it.
func (r *Registry) Resolve(ctx context.Context, sess auth.Session) (*Context, error) {
	if c, ok := r.Get(sess.TokenID); ok {
		return c, nil
	}
	return r.load(ctx, sess)
}

func (r *Registry) Forget(tokenID string) {
	r.mu.Lock()
	delete(r.byToken, tokenID)
	r.mu.Unlock()
}

// Refresh replaces the cached profile on every session of that user.
func (r *Registry) Refresh(p *models.UserProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byToken {
		if c.UserID == p.ID {
			c.Profile = p
			c.Role = p.Role
		}
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byToken)
}

func (r *Registry) load(ctx context.Context, sess auth.Session) (*Context, error) {
	p, err := r.profiles.Get(ctx, sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProfileMissing
	}
	if err != nil {
		return nil, err
	}

	c := &Context{
		UserID:  sess.UserID,
		Email:   sess.Email,
		Role:    p.Role,
		TokenID: sess.TokenID,
		Profile: p,
	}

	r.mu.Lock()
	r.byToken[sess.TokenID] = c
	r.mu.Unlock()

	return c, nil
}

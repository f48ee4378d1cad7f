package settings

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// Status is the open/closed banner shown on public pages.
type Status struct {
	Open      bool      `json:"open"`
	OpensAt   string    `json:"opens_at,omitempty"`
	ClosesAt  string    `json:"closes_at,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

type UpdateInput struct {
	BusinessName string
	Phone        string
	Address      string
	Hours        []models.DayHours
}

type Service struct {
	settings store.Collection[*models.Settings]
	audit    *audit.Dispatcher
	log      *zap.Logger
	now      func() time.Time

	mu     sync.RWMutex
	status Status
}

func NewService(
	settings store.Collection[*models.Settings],
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Service {
	return &Service{
		settings: settings,
		audit:    audit,
		log:      log,
		now:      timezone.Now,
	}
}

// Get falls back to the default week when nothing was saved yet.
func (s *Service) Get(ctx context.Context) (*models.Settings, error) {
	cur, err := s.settings.Get(ctx, models.SettingsID)
	if errors.Is(err, store.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *Service) Update(ctx context.Context, sess *session.Context, in UpdateInput) (*models.Settings, error) {
	next := &models.Settings{
		ID:           models.SettingsID,
		BusinessName: in.BusinessName,
		Phone:        in.Phone,
		Address:      in.Address,
		Hours:        in.Hours,
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}

	_, err := s.settings.Get(ctx, models.SettingsID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if _, err := s.settings.Add(ctx, next); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		next, err = s.settings.Update(ctx, models.SettingsID, map[string]any{
			"business_name": in.BusinessName,
			"phone":         in.Phone,
			"address":       in.Address,
			"hours":         in.Hours,
		})
		if err != nil {
			return nil, err
		}
	}

	s.audit.Dispatch(audit.Event{
		UserID: sess.UserID,
		Action: "settings_updated",
		Entity: "settings",
	})

	if _, err := s.RefreshStatus(ctx); err != nil {
		s.log.Warn("status refresh after settings update failed", zap.Error(err))
	}
	return next, nil
}

// RefreshStatus recomputes the cached open/closed status.
func (s *Service) RefreshStatus(ctx context.Context) (Status, error) {
	cur, err := s.Get(ctx)
	if err != nil {
		return Status{}, err
	}

	now := s.now()
	st := Status{Open: booking.IsOpenAt(cur, now), CheckedAt: now}
	if open, closing, ok := booking.Window(cur, now); ok {
		st.OpensAt, st.ClosesAt = open, closing
	}

	s.mu.Lock()
	s.status = st
	s.mu.Unlock()

	return st, nil
}

func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

package contact

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type MessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type Service struct {
	messages    store.Collection[*models.ContactMessage]
	subscribers store.Collection[*models.NewsletterSubscriber]
	log         *zap.Logger
}

func NewService(
	messages store.Collection[*models.ContactMessage],
	subscribers store.Collection[*models.NewsletterSubscriber],
	log *zap.Logger,
) *Service {
	return &Service{messages: messages, subscribers: subscribers, log: log}
}

func (s *Service) Send(ctx context.Context, in MessageInput) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   validators.NormalizeEmail(in.Email),
		Phone:   validators.NormalizePhone(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}

	if _, err := s.messages.Add(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info("contact message received", zap.String("id", msg.ID))
	return msg, nil
}

// Messages lists newest first; unreadOnly narrows to unread ones.
func (s *Service) Messages(ctx context.Context, unreadOnly bool) ([]*models.ContactMessage, error) {
	where := store.Filter{}
	if unreadOnly {
		where["read"] = false
	}
	return s.messages.Query(ctx, store.Query{Where: where, OrderBy: "created_at", Desc: true})
}

func (s *Service) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	msg, err := s.messages.Update(ctx, id, map[string]any{"read": true})
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.ErrBusiness("message_not_found")
	}
	return msg, err
}

func (s *Service) DeleteMessage(ctx context.Context, id string) error {
	err := s.messages.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return httperr.ErrBusiness("message_not_found")
	}
	return err
}

// Subscribe is idempotent per email: a repeat returns the existing record
// and created=false.
func (s *Service) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, bool, error) {
	email = validators.NormalizeEmail(email)
	if !validators.IsEmail(email) {
		return nil, false, httperr.Field("email", "invalid_email", "Enter a valid email address.")
	}

	existing, err := s.subscribers.Query(ctx, store.Query{Where: store.Filter{"email": email}, Limit: 1})
	if err != nil {
		return nil, false, err
	}
	if len(existing) > 0 {
		return existing[0], false, nil
	}

	sub := &models.NewsletterSubscriber{Email: email}
	if _, err := s.subscribers.Add(ctx, sub); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return sub, false, nil
		}
		return nil, false, err
	}
	return sub, true, nil
}

func (s *Service) Subscribers(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	return s.subscribers.Query(ctx, store.Query{OrderBy: "created_at", Desc: true})
}

package account

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type RegisterInput struct {
	Role     models.Role
	Name     string
	Email    string
	Password string
	Phone    string

	BusinessName string
	District     string
	Area         string
}

type Result struct {
	Token   string              `json:"token"`
	Profile *models.UserProfile `json:"profile"`
}

type Service struct {
	auth         auth.Backend
	profiles     store.Collection[*models.UserProfile]
	sessions     *session.Registry
	verifyDomain bool
	log          *zap.Logger
}

func NewService(
	backend auth.Backend,
	profiles store.Collection[*models.UserProfile],
	sessions *session.Registry,
	verifyDomain bool,
	log *zap.Logger,
) *Service {
	return &Service{
		auth:         backend,
		profiles:     profiles,
		sessions:     sessions,
		verifyDomain: verifyDomain,
		log:          log,
	}
}

// Register validates the profile before any account exists, then creates
// the credential and the profile under the same id.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Result, error) {
	if in.Role == "" {
		in.Role = models.RoleCustomer
	}

	profile := &models.UserProfile{
		Role:  in.Role,
		Name:  strings.TrimSpace(in.Name),
		Email: validators.NormalizeEmail(in.Email),
		Phone: validators.NormalizePhone(in.Phone),
	}
	if in.Role == models.RoleOwner {
		profile.BusinessName = strings.TrimSpace(in.BusinessName)
		profile.District = in.District
		profile.Area = in.Area
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if s.verifyDomain && !validators.IsEmailDomainValid(profile.Email) {
		return nil, httperr.Field("email", "invalid_email_domain", "The email domain does not look valid.")
	}

	id, err := s.auth.CreateAccount(ctx, profile.Email, in.Password)
	if err != nil {
		return nil, err
	}

	profile.ID = id
	if _, err := s.profiles.Add(ctx, profile); err != nil {
		s.log.Error("profile not created for new account", zap.String("user_id", id), zap.Error(err))
		if derr := s.auth.DeleteAccount(context.WithoutCancel(ctx), id); derr != nil {
			s.log.Error("orphaned account left behind", zap.String("user_id", id), zap.Error(derr))
		}
		return nil, err
	}

	return s.Login(ctx, profile.Email, in.Password)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	token, sess, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	c, err := s.sessions.Resolve(ctx, sess)
	if err != nil {
		// a credential without a profile cannot use the app
		_ = s.auth.SignOut(ctx, token)
		return nil, err
	}

	return &Result{Token: token, Profile: c.Profile}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.auth.SignOut(ctx, token)
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

const MinPasswordLength = 6

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Local keeps bcrypt hashes in the credentials collection and issues
// HS256 tokens. Sign-out revokes the token id until its natural expiry.
type Local struct {
	creds   store.Collection[*models.Credential]
	revoked Revoker
	secret  []byte
	ttl     time.Duration
	log     *zap.Logger
	now     func() time.Time

	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
}

func NewLocal(
	creds store.Collection[*models.Credential],
	revoked Revoker,
	secret string,
	ttl time.Duration,
	log *zap.Logger,
) *Local {
	return &Local{
		creds:   creds,
		revoked: revoked,
		secret:  []byte(secret),
		ttl:     ttl,
		log:     log,
		now:     time.Now,
		subs:    map[int]chan Event{},
	}
}

func (a *Local) CreateAccount(ctx context.Context, email, password string) (string, error) {
	email = validators.NormalizeEmail(email)

	var errs httperr.ValidationErrors
	if !validators.IsEmail(email) {
		errs.Add("email", "invalid_email", "Enter a valid email address.")
	}
	if len(password) < MinPasswordLength {
		errs.Add("password", "weak_password", fmt.Sprintf("Password must have at least %d characters.", MinPasswordLength))
	}
	if err := errs.Err(); err != nil {
		return "", err
	}

	existing, err := a.creds.Query(ctx, store.Query{Where: store.Filter{"email": email}, Limit: 1})
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}

	id, err := a.creds.Add(ctx, &models.Credential{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
	})
	if errors.Is(err, store.ErrDuplicate) {
		return "", ErrEmailTaken
	}
	return id, err
}

// DeleteAccount drops the credential. Tokens already issued stay valid
// until they expire or are signed out.
func (a *Local) DeleteAccount(ctx context.Context, userID string) error {
	err := a.creds.Delete(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func (a *Local) SignIn(ctx context.Context, email, password string) (string, Session, error) {
	email = validators.NormalizeEmail(email)

	found, err := a.creds.Query(ctx, store.Query{Where: store.Filter{"email": email}, Limit: 1})
	if err != nil {
		return "", Session{}, err
	}
	if len(found) == 0 {
		return "", Session{}, ErrInvalidCredentials
	}

	cred := found[0]
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", Session{}, ErrInvalidCredentials
	}

	now := a.now()
	sess := Session{
		UserID:    cred.ID,
		Email:     cred.Email,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(a.ttl),
	}

	token, err := a.sign(sess, now)
	if err != nil {
		return "", Session{}, err
	}

	a.publish(Event{Kind: SignedIn, Session: sess})
	return token, sess, nil
}

func (a *Local) SignOut(ctx context.Context, token string) error {
	sess, err := a.parse(token)
	if err != nil {
		return err
	}

	if err := a.revoked.Revoke(ctx, sess.TokenID, sess.ExpiresAt.Sub(a.now())); err != nil {
		return err
	}

	a.publish(Event{Kind: SignedOut, Session: sess})
	return nil
}

func (a *Local) Session(ctx context.Context, token string) (Session, error) {
	sess, err := a.parse(token)
	if err != nil {
		return Session{}, err
	}

	revoked, err := a.revoked.IsRevoked(ctx, sess.TokenID)
	if err != nil {
		return Session{}, err
	}
	if revoked {
		return Session{}, ErrInvalidToken
	}
	return sess, nil
}

// Subscribe streams auth-state changes until ctx is done. Slow readers
// miss events rather than stalling sign-in.
func (a *Local) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, 16)

	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = ch
	a.mu.Unlock()

	go func() {
		<-ctx.Done()
		a.mu.Lock()
		delete(a.subs, id)
		close(ch)
		a.mu.Unlock()
	}()

	return ch
}

func (a *Local) publish(ev Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, ch := range a.subs {
		select {
		case ch <- ev:
		default:
			a.log.Warn("auth event dropped",
				zap.String("kind", string(ev.Kind)),
				zap.String("user_id", ev.Session.UserID),
			)
		}
	}
}

// --------- JWT ---------

func (a *Local) sign(sess Session, now time.Time) (string, error) {
	c := claims{
		Email: sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID,
			ID:        sess.TokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(a.secret)
}

func (a *Local) parse(token string) (Session, error) {
	var c claims

	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil || !parsed.Valid || c.Subject == "" || c.ID == "" {
		return Session{}, ErrInvalidToken
	}

	sess := Session{UserID: c.Subject, Email: c.Email, TokenID: c.ID}
	if c.ExpiresAt != nil {
		sess.ExpiresAt = c.ExpiresAt.Time
	}
	return sess, nil
}

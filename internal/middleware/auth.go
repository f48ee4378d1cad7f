package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

const (
	ContextSession = "session"
	ContextToken   = "token"

	LoginPath = "/login"
)

// HomeFor is where a role lands after sign-in.
func HomeFor(role models.Role) string {
	if role == models.RoleOwner {
		return "/admin"
	}
	return "/dashboard"
}

func bearer(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware requires a live session. A token whose profile is gone is
// revoked on the spot and the client is sent back to the login page.
func AuthMiddleware(backend auth.Backend, sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c)
		if !ok {
			httperr.AbortRedirect(c, http.StatusUnauthorized, "missing_authorization_header", "Sign in to continue.", LoginPath)
			return
		}

		sc, err := resolve(c, backend, sessions, token)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrUnavailable):
			c.Abort()
			httperr.Unavailable(c, "Service temporarily unavailable. Try again.")
			return
		case errors.Is(err, session.ErrProfileMissing):
			_ = backend.SignOut(c.Request.Context(), token)
			httperr.AbortRedirect(c, http.StatusUnauthorized, "profile_not_found", "Your profile could not be found. Sign in again.", LoginPath)
			return
		default:
			httperr.AbortRedirect(c, http.StatusUnauthorized, "invalid_token", "Your session has ended. Sign in again.", LoginPath)
			return
		}

		c.Set(ContextSession, sc)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// OptionalAuth attaches a session when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(backend auth.Backend, sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearer(c); ok {
			if sc, err := resolve(c, backend, sessions, token); err == nil {
				c.Set(ContextSession, sc)
				c.Set(ContextToken, token)
			}
		}
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := Session(c)
		if sc == nil {
			httperr.AbortRedirect(c, http.StatusUnauthorized, "not_signed_in", "Sign in to continue.", LoginPath)
			return
		}
		if sc.Role != role {
			httperr.AbortRedirect(c, http.StatusForbidden, "forbidden", "You do not have access to this page.", HomeFor(sc.Role))
			return
		}
		c.Next()
	}
}

// Session returns the request's session or nil.
func Session(c *gin.Context) *session.Context {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sc, _ := v.(*session.Context)
	return sc
}

func resolve(c *gin.Context, backend auth.Backend, sessions *session.Registry, token string) (*session.Context, error) {
	sess, err := backend.Session(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}
	return sessions.Resolve(c.Request.Context(), sess)
}

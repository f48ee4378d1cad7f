package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/kv"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

type fixture struct {
	backend  *auth.Local
	sessions *session.Registry
	profiles store.Collection[*models.UserProfile]
	router   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zap.NewNop()
	creds := kv.NewCollection(rdb, store.Credentials, func() *models.Credential { return new(models.Credential) }, log)

	f := &fixture{
		backend:  auth.NewLocal(creds, kv.NewRevocations(rdb), "secret", time.Hour, log),
		profiles: kv.NewCollection(rdb, store.UserProfiles, func() *models.UserProfile { return new(models.UserProfile) }, log),
	}
	f.sessions = session.NewRegistry(f.profiles, log)

	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": Session(c).Role})
	}

	f.router = gin.New()
	f.router.GET("/me", AuthMiddleware(f.backend, f.sessions), ok)
	f.router.GET("/admin", AuthMiddleware(f.backend, f.sessions), RequireRole(models.RoleOwner), ok)
	f.router.GET("/maybe", OptionalAuth(f.backend, f.sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"signed_in": Session(c) != nil})
	})
	return f
}

func (f *fixture) signUp(t *testing.T, email string, role models.Role) (string, string) {
	t.Helper()
	ctx := context.Background()

	id, err := f.backend.CreateAccount(ctx, email, "secret1")
	require.NoError(t, err)

	_, err = f.profiles.Add(ctx, &models.UserProfile{
		ID:           id,
		Role:         role,
		Name:         "Test User",
		Email:        email,
		BusinessName: "Glow Salon",
		District:     "Dhaka",
		Area:         "Gulshan",
	})
	require.NoError(t, err)

	token, _, err := f.backend.SignIn(ctx, email, "secret1")
	require.NoError(t, err)
	return id, token
}

func (f *fixture) get(path, token string) (*httptest.ResponseRecorder, httperr.HTTPError) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var body httperr.HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	f := newFixture(t)

	w, body := f.get("/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, LoginPath, body.Redirect)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	f := newFixture(t)
	_, token := f.signUp(t, "rina@example.com", models.RoleCustomer)

	w, _ := f.get("/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customer"`)
}

func TestRequireRole_RedirectsCustomerHome(t *testing.T) {
	f := newFixture(t)
	_, token := f.signUp(t, "rina@example.com", models.RoleCustomer)

	w, body := f.get("/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "/dashboard", body.Redirect)

	_, ownerToken := f.signUp(t, "owner@example.com", models.RoleOwner)
	w, _ = f.get("/admin", ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingProfileSignsOut(t *testing.T) {
	f := newFixture(t)
	id, token := f.signUp(t, "gone@example.com", models.RoleCustomer)
	require.NoError(t, f.profiles.Delete(context.Background(), id))

	w, body := f.get("/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "profile_not_found", body.Code)

	_, err := f.backend.Session(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestOptionalAuth_LetsAnonymousThrough(t *testing.T) {
	f := newFixture(t)

	w, _ := f.get("/maybe", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signed_in":false`)

	w, _ = f.get("/maybe", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signed_in":false`)
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://salon.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://salon.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://salon.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{httperr.Field("date", "date_in_past", "Pick today or later."), http.StatusUnprocessableEntity},
		{httperr.ErrBusiness("booking_not_found"), http.StatusNotFound},
		{fmt.Errorf("cancel: %w", httperr.ErrBusiness("invalid_state")), http.StatusConflict},
		{httperr.ErrBusiness("wrong_step"), http.StatusConflict},
		{httperr.ErrBusiness("payment_declined"), http.StatusPaymentRequired},
		{httperr.ErrBusiness("forbidden_action"), http.StatusBadRequest},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrEmailTaken, http.StatusConflict},
		{session.ErrProfileMissing, http.StatusUnauthorized},
		{fmt.Errorf("%w: redis down", store.ErrUnavailable), http.StatusServiceUnavailable},
		{store.ErrNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, zap.NewNop(), tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
	}
}

func TestRespondError_UnavailableIsRetryable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, zap.NewNop(), store.ErrUnavailable)
	assert.Contains(t, w.Body.String(), `"retryable":true`)
}

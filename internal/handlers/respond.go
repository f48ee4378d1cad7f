package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

var conflictCodes = map[string]bool{
	"invalid_state":  true,
	"wrong_step":     true,
	"cannot_go_back": true,

	"payment_in_progress": true,
}

// respondError maps use case errors onto the HTTP error taxonomy.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	if fields, ok := httperr.Fields(err); ok {
		httperr.Validation(c, fields)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch {
		case strings.HasSuffix(be.Code, "_not_found"):
			httperr.NotFound(c, be.Code, "The requested record does not exist.")
		case conflictCodes[be.Code]:
			httperr.Conflict(c, be.Code, "That action is not allowed right now.")
		case be.Code == "payment_declined":
			httperr.Write(c, http.StatusPaymentRequired, be.Code, "The payment was declined. Try another card.")
		default:
			httperr.BadRequest(c, be.Code, "The request could not be completed.")
		}
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
	case errors.Is(err, auth.ErrEmailTaken):
		httperr.Conflict(c, "email_taken", "An account with this email already exists.")
	case errors.Is(err, auth.ErrInvalidToken):
		httperr.AbortRedirect(c, http.StatusUnauthorized, "invalid_token", "Your session has ended. Sign in again.", middleware.LoginPath)
	case errors.Is(err, session.ErrProfileMissing):
		httperr.AbortRedirect(c, http.StatusUnauthorized, "profile_not_found", "Your profile could not be found. Sign in again.", middleware.LoginPath)
	case errors.Is(err, store.ErrNotFound):
		httperr.NotFound(c, "not_found", "The requested record does not exist.")
	case errors.Is(err, store.ErrUnavailable):
		log.Warn("backend unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		httperr.Unavailable(c, "Something went wrong on our side. Please try again.")
	default:
		log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side.")
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.HTTPError{
		Code:    "invalid_request",
		Message: err.Error(),
	})
}

// boolQuery reads "true"/"false"; anything else means unset.
func boolQuery(c *gin.Context, key string) *bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

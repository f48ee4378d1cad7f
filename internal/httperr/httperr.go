package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code      string       `json:"error_code"`
	Message   string       `json:"message"`
	Fields    []FieldError `json:"fields,omitempty"`
	Redirect  string       `json:"redirect,omitempty"`
	Retryable bool         `json:"retryable,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Validation(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, HTTPError{
		Code:    "validation_failed",
		Message: "Some fields are missing or malformed.",
		Fields:  fields,
	})
}

// Unavailable reports a backend failure the client may retry.
func Unavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, HTTPError{
		Code:      "backend_unavailable",
		Message:   message,
		Retryable: true,
	})
}

// AbortRedirect stops the chain and tells the client where to go next.
func AbortRedirect(c *gin.Context, status int, code, message, redirect string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:     code,
		Message:  message,
		Redirect: redirect,
	})
}

package errors

import (
	"fmt"
	"net/http"
)

type StatusError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	Reason     string `json:"reason,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

func (e *StatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("status %d: %s: %s", e.Code, e.Message, e.Reason)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Message)
}

// Is reports whether target carries the same code and message, so that a
// sentinel still matches after WithReason.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func NewStatusError(code int, message string) *StatusError {
	return &StatusError{
		Code:    code,
		Message: message,
	}
}

// WithReason returns a copy of e carrying reason. Sentinels are never mutated.
func (e *StatusError) WithReason(reason string) *StatusError {
	out := *e
	out.Reason = reason
	return &out
}

var (
	// Authentication errors
	ErrInvalidCredentials = NewStatusError(http.StatusUnauthorized, "invalid credentials")
	ErrTokenExpired       = NewStatusError(http.StatusUnauthorized, "token expired")
	ErrInvalidToken       = NewStatusError(http.StatusUnauthorized, "invalid token")

	// Authorization errors
	ErrForbidden = NewStatusError(http.StatusForbidden, "forbidden")

	// Resource errors
	ErrResourceNotFound = NewStatusError(http.StatusNotFound, "resource not registered")
	ErrResourceConflict = NewStatusError(http.StatusConflict, "resource uri key already registered")
	ErrInvalidResource  = NewStatusError(http.StatusInternalServerError, "invalid resource declaration")
	ErrModelNotFound    = NewStatusError(http.StatusInternalServerError, "model not registered")
	ErrUnknownAttribute = NewStatusError(http.StatusInternalServerError, "unknown model attribute")

	// Validation errors
	ErrInvalidRequest = NewStatusError(http.StatusBadRequest, "invalid request")
	ErrInvalidInput   = NewStatusError(http.StatusBadRequest, "invalid input")
	ErrValidation     = NewStatusError(http.StatusUnprocessableEntity, "validation failed")

	// Server errors
	ErrInternal = NewStatusError(http.StatusInternalServerError, "internal server error")

	// Generic Store errors
	ErrNotFound      = NewStatusError(http.StatusNotFound, "record not found")
	ErrAlreadyExists = NewStatusError(http.StatusConflict, "record already exists")

	// Store Operation errors
	ErrStorageOperation   = NewStatusError(http.StatusInternalServerError, "storage operation failed")
	ErrDatabaseConnection = NewStatusError(http.StatusInternalServerError, "database connection failed")
)

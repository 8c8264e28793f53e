// Package errors defines the structured error types shared by the EcoMovil
// services. Every error carries a stable machine code and the HTTP status it
// maps to at the interface layer; decode-level detail is logged by the caller
// and never leaks to clients.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeUnauthenticated    = "unauthenticated"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeInternal           = "internal_error"
	CodeServiceUnavailable = "service_unavailable"
)

// AppError is a structured application error.
type AppError struct {
	Code       string
	HTTPStatus int
	Message    string
	cause      error
	base       *AppError
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithError returns a copy of the error carrying the given cause. The copy
// still matches the original sentinel under errors.Is.
func (e *AppError) WithError(cause error) *AppError {
	clone := *e
	clone.cause = cause
	clone.base = e.root()
	return &clone
}

// WithMessagef returns a copy of the error with a formatted message.
func (e *AppError) WithMessagef(format string, args ...interface{}) *AppError {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	clone.base = e.root()
	return &clone
}

func (e *AppError) root() *AppError {
	if e.base != nil {
		return e.base
	}
	return e
}

// Is lets copies produced by WithError / WithMessagef match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.root() == t.root()
}

// New creates a new AppError.
func New(code string, httpStatus int, message string) *AppError {
	return &AppError{Code: code, HTTPStatus: httpStatus, Message: message}
}

// Token decode failures. The verifier collapses all of them to "untrusted" at
// the filter boundary; they stay distinct so the reason can be logged.
var (
	ErrTokenMalformed        = New(CodeUnauthenticated, http.StatusUnauthorized, "token is malformed")
	ErrTokenExpired          = New(CodeUnauthenticated, http.StatusUnauthorized, "token has expired")
	ErrTokenSignatureInvalid = New(CodeUnauthenticated, http.StatusUnauthorized, "token signature verification failed")
	ErrTokenUnsupported      = New(CodeUnauthenticated, http.StatusUnauthorized, "token signing algorithm is unsupported")
)

// Request-level failures.
var (
	ErrUnauthenticated    = New(CodeUnauthenticated, http.StatusUnauthorized, "authentication required")
	ErrForbidden          = New(CodeForbidden, http.StatusForbidden, "insufficient permissions")
	ErrInvalidRequest     = New(CodeInvalidRequest, http.StatusBadRequest, "the request is malformed")
	ErrEntityNotFound     = New(CodeNotFound, http.StatusNotFound, "entity not found")
	ErrUsernameTaken      = New(CodeConflict, http.StatusConflict, "username is already taken")
	ErrConflict           = New(CodeConflict, http.StatusConflict, "resource already exists")
	ErrInvalidCredentials = New(CodeInvalidRequest, http.StatusBadRequest, "invalid credentials")
	ErrAccountDeactivated = New(CodeForbidden, http.StatusForbidden, "user account is deactivated")
	ErrDatabase           = New(CodeInternal, http.StatusInternalServerError, "database operation failed")
	ErrInvalidConfig      = New(CodeInternal, http.StatusInternalServerError, "invalid configuration")
)

// AsAppError attempts to extract an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the transport layer.
type ErrorKind string

const (
	ErrorKindValidation     ErrorKind = "VALIDATION"
	ErrorKindAuthentication ErrorKind = "AUTHENTICATION"
	ErrorKindAuthorization  ErrorKind = "AUTHORIZATION"
	ErrorKindNotFound       ErrorKind = "NOT_FOUND"
	ErrorKindConflict       ErrorKind = "CONFLICT"
	ErrorKindPaymentPending ErrorKind = "PAYMENT_PENDING"
)

// Error is the single error type returned by services for expected failures.
// Anything that is not a *Error is treated as a server error.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works
// regardless of the message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Sentinels for errors.Is checks.
var (
	ErrValidation     = &Error{Kind: ErrorKindValidation}
	ErrAuthentication = &Error{Kind: ErrorKindAuthentication}
	ErrAuthorization  = &Error{Kind: ErrorKindAuthorization}
	ErrNotFound       = &Error{Kind: ErrorKindNotFound}
	ErrConflict       = &Error{Kind: ErrorKindConflict}
	ErrPaymentPending = &Error{Kind: ErrorKindPaymentPending}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(format string, args ...any) error {
	return newError(ErrorKindValidation, format, args...)
}

func NewAuthenticationError(format string, args ...any) error {
	return newError(ErrorKindAuthentication, format, args...)
}

func NewAuthorizationError(format string, args ...any) error {
	return newError(ErrorKindAuthorization, format, args...)
}

func NewNotFoundError(format string, args ...any) error {
	return newError(ErrorKindNotFound, format, args...)
}

func NewConflictError(format string, args ...any) error {
	return newError(ErrorKindConflict, format, args...)
}

func NewPaymentPendingError(format string, args ...any) error {
	return newError(ErrorKindPaymentPending, format, args...)
}

// KindOf returns the kind of err, or "" when err is not a domain error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Package apperror holds the error kinds the booking core surfaces to callers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindAuthenticationMissing  Kind = "AUTHENTICATION_MISSING"
	KindAuthorizationDenied    Kind = "AUTHORIZATION_DENIED"
	KindNotFound               Kind = "NOT_FOUND"
	KindValidationFailure      Kind = "VALIDATION_FAILURE"
	KindQuotaExhausted         Kind = "QUOTA_EXHAUSTED"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindDependencyFailure      Kind = "DEPENDENCY_FAILURE"
)

type AppError struct {
	Kind    Kind
	Message string
	// CurrentStatus is only set for KindInvalidStateTransition
	CurrentStatus string
	Cause         error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindAuthenticationMissing:
		return http.StatusUnauthorized
	case KindAuthorizationDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidationFailure, KindQuotaExhausted:
		return http.StatusBadRequest
	case KindInvalidStateTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage hides the cause of dependency failures.
func (e *AppError) PublicMessage() string {
	if e.Kind == KindDependencyFailure {
		return "internal server error"
	}
	return e.Message
}

func AuthenticationMissing(message string) *AppError {
	return &AppError{Kind: KindAuthenticationMissing, Message: message}
}

func AuthorizationDenied(message string) *AppError {
	return &AppError{Kind: KindAuthorizationDenied, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ValidationFailure(message string) *AppError {
	return &AppError{Kind: KindValidationFailure, Message: message}
}

func QuotaExhausted(message string) *AppError {
	return &AppError{Kind: KindQuotaExhausted, Message: message}
}

func InvalidStateTransition(message, currentStatus string) *AppError {
	return &AppError{Kind: KindInvalidStateTransition, Message: message, CurrentStatus: currentStatus}
}

func DependencyFailure(message string, cause error) *AppError {
	return &AppError{Kind: KindDependencyFailure, Message: message, Cause: cause}
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries an AppError of the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

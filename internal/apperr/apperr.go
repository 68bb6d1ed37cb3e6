// Package apperr defines the error kinds shared by every domain package and the
// HTTP status each kind maps to at the API boundary.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	InvalidInput       Kind = "InvalidInput"
	InvalidAssignee    Kind = "InvalidAssignee"
	InvalidCredentials Kind = "InvalidCredentials"
	Unauthorized       Kind = "Unauthorized"
	Forbidden          Kind = "Forbidden"
	NotFound           Kind = "NotFound"
	DuplicateEmail     Kind = "DuplicateEmail"
	AlreadyMember      Kind = "AlreadyMember"
	RateLimited        Kind = "RateLimited"
	Internal           Kind = "Internal"
)

// Error is a domain failure carrying a machine-readable kind.
type Error struct {
	Kind    Kind
	Message string
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the client-safe message for err. Errors without a kind are
// never echoed to clients.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case InvalidInput, InvalidAssignee:
		return http.StatusBadRequest
	case InvalidCredentials, Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case DuplicateEmail, AlreadyMember:
		return http.StatusConflict
	case RateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

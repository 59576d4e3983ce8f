// Package apperr defines the domain error taxonomy shared by services and
// handlers. Every fallible domain operation returns one of the four kinds
// below; handlers render them to an HTTP response exactly once at the
// request boundary.
package apperr

import "net/http"

// Kind classifies a domain error into an HTTP-mappable category.
type Kind int

const (
	KindNotFound Kind = iota
	KindBusinessLogic
	KindPermissionDenied
	KindAuthentication
)

// Error is a domain error carrying a kind and a caller-visible message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// NotFound reports an absent or inactive entity.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// BusinessLogic reports a validation or invariant violation.
func BusinessLogic(msg string) *Error {
	return &Error{Kind: KindBusinessLogic, Message: msg}
}

// PermissionDenied reports an authorization failure.
func PermissionDenied(msg string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: msg}
}

// Authentication reports bad credentials or an invalid/expired token.
func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

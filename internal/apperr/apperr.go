// Package apperr defines the failure taxonomy shared by repositories,
// controllers, and the global error translator middleware.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

// Kind classifies a failure for HTTP status mapping.
type Kind int

const (
	// Unknown covers anything not produced through this package.
	Unknown Kind = iota
	// Validation is a malformed or invalid request body.
	Validation
	// MissingReference is a nil/absent required entity reference.
	MissingReference
	// NotFound is a lookup for an entity that does not exist.
	NotFound
	// AccessDenied is an authorization denial for an authenticated principal.
	AccessDenied
	// Conflict is a state-preserving duplicate (e.g. re-adding a collaborator).
	Conflict
	// Constraint is a uniqueness/integrity violation reported by the database.
	Constraint
)

// Error is a classified application failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a classified error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NotFoundf returns a NotFound error.
func NotFoundf(format string, args ...interface{}) *Error {
	return New(NotFound, format, args...)
}

// AccessDeniedf returns an AccessDenied error.
func AccessDeniedf(format string, args ...interface{}) *Error {
	return New(AccessDenied, format, args...)
}

// Validationf returns a Validation error.
func Validationf(format string, args ...interface{}) *Error {
	return New(Validation, format, args...)
}

// Conflictf returns a Conflict error.
func Conflictf(format string, args ...interface{}) *Error {
	return New(Conflict, format, args...)
}

// MissingRef returns a MissingReference error.
func MissingRef(what string) *Error {
	return New(MissingReference, "%s cannot be nil", what)
}

// KindOf classifies an arbitrary error. Postgres integrity violations
// (SQLSTATE class 23) surface as Constraint even when not wrapped.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && len(pqErr.Code) >= 2 && pqErr.Code[:2] == "23" {
		return Constraint
	}
	return Unknown
}

// Status maps a failure kind to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case Validation, MissingReference, Constraint:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case AccessDenied:
		return http.StatusUnauthorized
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Bodyless reports whether the failure is rendered as a bare status
// with no JSON body.
func Bodyless(err error) bool {
	k := KindOf(err)
	return k == Constraint || k == Conflict
}

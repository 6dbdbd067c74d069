// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP boundary can map it to a status code.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindInvalidState     Kind = "INVALID_STATE"
	KindValidationFailed Kind = "VALIDATION_FAILED"
	KindInternal         Kind = "INTERNAL"
)

// Error is the typed failure returned by the catalog and inventory services.
// All kinds are determinate outcomes of the current data state; none are
// retried internally.
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

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing resource, e.g. NotFound("Product", "id", id).
func NotFound(resource, field string, value interface{}) *Error {
	return Newf(KindNotFound, "%s not found with %s: '%v'", resource, field, value)
}

// Conflict reports a uniqueness violation, e.g. Conflict("Product", "sku", sku).
func Conflict(resource, field string, value interface{}) *Error {
	return Newf(KindConflict, "%s already exists with %s: '%v'", resource, field, value)
}

func InvalidState(message string) *Error {
	return New(KindInvalidState, message)
}

func ValidationFailed(message string) *Error {
	return New(KindValidationFailed, message)
}

// Internal wraps an unexpected failure. The wrapped error is kept for logging
// at the boundary; callers only ever see a generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the kind of err, defaulting to KindInternal for errors that
// did not originate from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }

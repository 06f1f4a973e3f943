// Package apperrors defines the closed set of error kinds raised by the
// domain and application layers. Every failure that crosses a service
// boundary is one of these kinds; pkg/response owns the translation to the
// wire shape.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidArgument
	KindValidationFailed
	KindDuplicateValue
	KindInvalidCredentials
	KindAccountDisabled
)

// Error carries a kind, a human message and optional per-field details
// (field name -> messages, in validation order).
type Error struct {
	Kind    Kind
	Message string
	Details map[string][]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches two *Error values by kind, so callers can use
// errors.Is(err, apperrors.NotFound("")) style sentinels in tests.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// ValidationFailed wraps structural input violations grouped per field.
func ValidationFailed(details map[string][]string) *Error {
	return &Error{Kind: KindValidationFailed, Message: "Validation failed", Details: details}
}

// Duplicate reports a unique-constraint collision on a known field.
// The detail message is constant so clients can rely on it.
func Duplicate(field string) *Error {
	e := &Error{Kind: KindDuplicateValue, Message: "Duplicate value"}
	if field != "" {
		e.Details = map[string][]string{field: {"already exists"}}
	}
	return e
}

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials"}
}

func AccountDisabled() *Error {
	return &Error{Kind: KindAccountDisabled, Message: "Account disabled"}
}

// Internal wraps an unclassified failure. The cause stays server-side; the
// wire layer only ever emits the generic message.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", cause: cause}
}

// KindOf classifies any error. Non-taxonomy errors downgrade to Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// DetailsOf returns the field details of a taxonomy error, or nil.
func DetailsOf(err error) map[string][]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

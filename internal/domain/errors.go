package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error so callers can map it to transport
// semantics without string matching.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindReference         ErrorKind = "reference"
	KindNotFound          ErrorKind = "not_found"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindStorage           ErrorKind = "storage"
)

// Error is the tagged error type surfaced by the core. The HTTP layer maps
// kinds to status codes; the core never formats wire responses.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// NewValidationError reports a failed generic or sector-specific precondition.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewReferenceError reports a dangling reference to another entity.
func NewReferenceError(entity, id string) *Error {
	return &Error{
		Kind:    KindReference,
		Message: fmt.Sprintf("%s with ID %s does not exist", entity, id),
	}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with ID %s not found", entity, id),
	}
}

// NewInvalidTransitionError reports a status change not permitted by the
// booking state machine.
func NewInvalidTransitionError(from, to string) *Error {
	return &Error{
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf("cannot transition booking from %s to %s", from, to),
	}
}

// NewStorageError wraps a failure from the durable-storage layer. The
// operation is safe to retry as a whole since validation is re-run each time.
func NewStorageError(op string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: op, cause: cause}
}

// IsKind reports whether err (or anything it wraps) is a domain Error of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

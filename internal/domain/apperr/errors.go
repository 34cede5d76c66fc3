package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the HTTP boundary can map it
// to a status code without inspecting message text.
type Kind string

const (
	KindValidation Kind = "validation"
	KindLookup     Kind = "lookup"
	KindUpstream   Kind = "upstream"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// Error is the application error type carried across layer boundaries.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates an error for rejected input.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewLookupError creates an error for a place that could not be resolved.
func NewLookupError(message string) *Error {
	return &Error{Kind: KindLookup, Message: message}
}

// NewUpstreamError creates an error for a failed or malformed upstream response.
func NewUpstreamError(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// NewNotFoundError creates an error for a missing resource.
func NewNotFoundError(resource, name string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", resource, name)}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

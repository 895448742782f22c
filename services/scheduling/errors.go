package scheduling

import (
	"errors"
	"fmt"
)

// Stable error codes surfaced to callers. Handlers map them onto HTTP
// statuses; the code never changes once a client depends on it.
const (
	CodeInvalidRequest  = "invalidRequest"
	CodeUnauthenticated = "unauthenticated"
	CodeNotFound        = "notFound"
	CodeConflict        = "conflict"
	CodeUnavailable     = "unavailable"
	CodeInternal        = "internal"
)

// Error is the typed error returned by the scheduling services.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}

func ErrInvalidRequest(msg string) error  { return newError(CodeInvalidRequest, msg) }
func ErrUnauthenticated(msg string) error { return newError(CodeUnauthenticated, msg) }
func ErrNotFound(msg string) error        { return newError(CodeNotFound, msg) }
func ErrConflict(msg string) error        { return newError(CodeConflict, msg) }
func ErrUnavailable(msg string) error     { return newError(CodeUnavailable, msg) }

// CodeOf extracts the stable code from an error, defaulting to
// CodeInternal for anything untyped.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternal
}

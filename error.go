package askdocs

import (
	"errors"
	"fmt"
)

// Application error codes. These are mapped to HTTP status codes at the
// transport boundary and double as the machine-readable error kind.
const (
	EINVALID     = "invalid"     // caller-input problem
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // external collaborator cannot serve the request
	EINTERNAL    = "internal"    // anything unexpected
)

// Error represents an application error with a machine-readable code and a
// human-readable message. The message is safe to return to API callers;
// anything sensitive belongs in wrapped errors and log output only.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("askdocs error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code. Non-application errors report
// EINTERNAL; a nil error reports an empty code.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message. Non-application errors
// are masked behind a generic message so internal detail never leaks to
// callers.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

package gostcat

import (
	"errors"
	"fmt"
)

// Application error codes. These map error conditions to behavior at the
// boundaries: EUNAVAILABLE means the persistent store could not be reached
// and is the only code callers must treat as distinct from "no data".
const (
	EINVALID     = "invalid"     // validation failed (e.g. empty standard name)
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // storage medium fault
	EINTERNAL    = "internal"    // unexpected internal error
)

// Error represents an application-level error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description safe to show to users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("gostcat error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of an error, EINTERNAL for non-application
// errors, and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of an error, a generic message for
// non-application errors, and an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "An internal error has occurred."
}

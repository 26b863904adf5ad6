package kiosque

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic across the application. A code describes the
// class of failure so callers can branch on it without string matching.
const (
	EAUTH           = "authentication"  // login flow did not reach an authenticated state
	EEXTRACTION     = "extraction"      // article body locator matched nothing
	EINTERNAL       = "internal"        // unexpected internal error
	EINVALID        = "invalid"         // validation failed or definitive remote rejection
	ENOTFOUND       = "not_found"       // resource absent (HTTP 404)
	ENOTIMPLEMENTED = "not_implemented" // handler does not support the requested capability
	EUNAVAILABLE    = "unavailable"     // transient network failure, retries exhausted
	EUNSUPPORTED    = "unsupported"     // no site handler matches the input
)

// Error represents an application-specific error. Errors can be unwrapped to
// retrieve the code and a human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("kiosque error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

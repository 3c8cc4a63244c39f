// Package domainerrors defines the coded error type shared by every layer of
// the gateway. Services and validators attach a Code describing the failure
// class; the transport maps codes to HTTP statuses without inspecting
// messages.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a failure independently of its message.
type Code string

const (
	// CodeTypeMismatch: a field value has the wrong shape (string where int
	// expected, etc.).
	CodeTypeMismatch Code = "type_mismatch"
	// CodeFormatInvalid: well-typed but fails a pattern or structural rule.
	CodeFormatInvalid Code = "format_invalid"
	// CodeRangeInvalid: well-typed and well-formatted but out of bounds.
	CodeRangeInvalid Code = "range_invalid"
	// CodePresenceInvalid: a required field or field combination is missing.
	CodePresenceInvalid Code = "presence_invalid"
	// CodeAuthFailed: token did not match the expected digest.
	CodeAuthFailed Code = "auth_failed"

	CodeBadRequest Code = "bad_request"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal_error"
)

// Error carries a code, a human-readable message, and an optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New builds a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error, keeping the cause
// reachable through errors.Unwrap.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// Prefix returns a copy of err with the message prefixed by name, keeping the
// code. Non-coded errors are wrapped as internal.
func Prefix(err error, name string) *Error {
	var de *Error
	if errors.As(err, &de) {
		return &Error{Code: de.Code, Message: name + ": " + de.Message, cause: err}
	}
	return &Error{Code: CodeInternal, Message: name + ": " + err.Error(), cause: err}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf extracts the code from an error chain, defaulting to internal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to the status the transport reports. The four
// validation classes all collapse to an invalid-request outcome.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeTypeMismatch, CodeFormatInvalid, CodeRangeInvalid, CodePresenceInvalid:
		return http.StatusUnprocessableEntity
	case CodeAuthFailed:
		return http.StatusForbidden
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

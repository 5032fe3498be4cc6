// Package errors provides structured error types for luthier.
//
// Every failure reported by the measurement and geometry packages is an
// [*Error] carrying a machine-readable [Code], so the CLI, the HTTP API and
// library callers can tell a malformed measurement apart from an impossible
// instrument geometry without matching on message text.
//
// # Error Codes
//
//   - PARSE_ERROR: a measurement string has no leading number
//   - CONFIGURATION_ERROR: geometrically invalid parameters (too few strings,
//     non-positive scale length, no frets, ...)
//   - INVALID_*: malformed input values, output formats or config files
//   - OUT_OF_RANGE: a value too large to place on a ruler
//   - INTERNAL_ERROR: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeParse, "no number found in %q", text)
//	if errors.Is(err, errors.ErrCodeParse) {
//	    // Ask the user to retype the measurement
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Measurement and geometry errors
	ErrCodeParse         Code = "PARSE_ERROR"
	ErrCodeConfiguration Code = "CONFIGURATION_ERROR"
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Parse is shorthand for New(ErrCodeParse, ...).
func Parse(format string, args ...any) *Error {
	return New(ErrCodeParse, format, args...)
}

// Configuration is shorthand for New(ErrCodeConfiguration, ...).
func Configuration(format string, args ...any) *Error {
	return New(ErrCodeConfiguration, format, args...)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsUserError reports whether err was caused by the caller's input rather
// than by the program. The HTTP API maps these to 4xx responses.
func IsUserError(err error) bool {
	switch GetCode(err) {
	case ErrCodeParse, ErrCodeConfiguration, ErrCodeOutOfRange,
		ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidConfig:
		return true
	}
	return false
}

// Package errors provides structured error types for termgrid.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the layout engine
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Configuration errors are fatal: a layout that cannot be negotiated at all
// (an empty row, an element reporting an unknown canvas metric) surfaces as
// one of the INVALID_* or UNKNOWN_* codes and is never retried. Degraded
// layouts and stale frames are not errors and never produce an *Error.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLayout, "row %d is empty", i)
//	if errors.IsConfiguration(err) {
//	    // abort the render loop
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidLayout  Code = "INVALID_LAYOUT"
	ErrCodeInvalidPolicy  Code = "INVALID_POLICY"
	ErrCodeUnknownMetric  Code = "UNKNOWN_METRIC"
	ErrCodeInvalidElement Code = "INVALID_ELEMENT"

	// Input errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidSize  Code = "INVALID_SIZE"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported  Code = "UNSUPPORTED"
)

// configurationCodes are the codes that make a layout impossible to render.
var configurationCodes = map[Code]bool{
	ErrCodeInvalidLayout:  true,
	ErrCodeInvalidPolicy:  true,
	ErrCodeUnknownMetric:  true,
	ErrCodeInvalidElement: true,
}

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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsConfiguration reports whether err is a fatal layout configuration error.
func IsConfiguration(err error) bool {
	return configurationCodes[GetCode(err)]
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
// Code prefixes are removed from every *Error in the chain; context added
// by fmt.Errorf wrapping is kept. Other errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + UserMessage(e.Cause)
	}
	if prefix, ok := strings.CutSuffix(err.Error(), e.Error()); ok {
		return prefix + msg
	}
	return msg
}

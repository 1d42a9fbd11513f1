// Package errors provides structured error types for stepdoc.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP API and the engine
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes fall into a few families:
//   - INVALID_*: malformed input (graph files, flags, request bodies)
//   - INDEX_OUT_OF_RANGE: a node index outside the graph
//   - TOO_MANY_*, STRING_TOO_LONG: document capacity limits
//   - NO_CURRENT_POINT, ALREADY_FINISHED: misuse of the document engine
//   - NOT_FOUND, INTERNAL_ERROR, UNSUPPORTED: everything else
//
// Capacity errors are fatal for the document that raised them: the engine
// records the first one and refuses to write any output.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGraph, "%s:%d: unknown key %q", src, line, key)
//	if errors.Is(err, errors.ErrCodeInvalidGraph) {
//	    // Handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeIndexRange    Code = "INDEX_OUT_OF_RANGE"

	// Document capacity errors
	ErrCodeTooManyPages   Code = "TOO_MANY_PAGES"
	ErrCodeTooManyObjects Code = "TOO_MANY_OBJECTS"
	ErrCodeStringTooLong  Code = "STRING_TOO_LONG"

	// Engine state errors
	ErrCodeNoCurrentPoint  Code = "NO_CURRENT_POINT"
	ErrCodeAlreadyFinished Code = "ALREADY_FINISHED"

	// Resource and internal errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsCapacity reports whether err is one of the document capacity errors.
// These abort the whole document; retrying with the same input cannot help.
func IsCapacity(err error) bool {
	switch GetCode(err) {
	case ErrCodeTooManyPages, ErrCodeTooManyObjects, ErrCodeStringTooLong:
		return true
	}
	return false
}

// IsInvalid reports whether err was caused by bad caller input.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidGraph, ErrCodeInvalidFormat,
		ErrCodeInvalidPath, ErrCodeIndexRange:
		return true
	}
	return false
}

// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with contextual details and
//              metadata. Maintains compatibility with Go's standard error
//              interface and the errors package unwrapping conventions while
//              adding codes and severities for structured reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with contextual errors

package error

import (
	"errors"
	"fmt"
	"time"
)

// Error represents a structured error with context, code, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve code and severity when wrapping one of our own errors
	var structured *Error
	if errors.As(err, &structured) {
		wrapped := &Error{
			message:   message,
			cause:     err,
			code:      structured.code,
			severity:  structured.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
			operation: structured.operation,
		}
		for k, v := range structured.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Details returns the contextual details attached to the error
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// Operation returns the operation that produced the error
func (e *Error) Operation() string {
	return e.operation
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail attaches a single contextual detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithDetails attaches multiple contextual details
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// GetCode extracts the code from any error, returning CodeUnknown for
// errors that are not structured
func GetCode(err error) Code {
	var structured *Error
	if errors.As(err, &structured) {
		return structured.code
	}
	return CodeUnknown
}

// IsCode returns true if the error carries the given code
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetSeverity extracts the severity from any error, returning
// SeverityMedium for errors that are not structured
func GetSeverity(err error) Severity {
	var structured *Error
	if errors.As(err, &structured) {
		return structured.severity
	}
	return SeverityMedium
}

// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type with codes, severity,
//              details, and cause wrapping, compatible with the standard
//              errors.Is/errors.As machinery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package apperr

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	message  string
	cause    error
	code     Code
	severity Severity
	details  map[string]interface{}
}

// New creates a new Error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		message:  message,
		code:     code,
		severity: SeverityLow,
		details:  make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a code and additional context
func Wrap(err error, code Code, message string) *Error {
	e := New(code, message)
	e.cause = err
	return e
}

// WithSeverity sets the severity and returns the error for chaining
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail attaches a key-value detail and returns the error for chaining
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Message returns the bare message without code or cause
func (e *Error) Message() string {
	return e.message
}

// Details returns the attached key-value details
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// IsCode reports whether err or any error in its chain is an *Error
// carrying the given code
func IsCode(err error, code Code) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.code == code {
			return true
		}
		err = e.cause
		if err == nil {
			return false
		}
	}
	return false
}

// CodeOf returns the code of the outermost *Error in the chain, or
// CodeUnknown if err is not a structured error
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// File: codes.go
// Title: Error Code Definitions
// Description: Defines the structured error codes used across pCalc for
//              categorizing errors at the engine and shell boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package apperr

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for pCalc
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Calculation engine
	CodeInvalidPrecision     Code = "INVALID_PRECISION"
	CodePrecisionUnsupported Code = "PRECISION_UNSUPPORTED"
	CodeUnknownMethod        Code = "UNKNOWN_METHOD"
	CodeInvalidValue         Code = "INVALID_VALUE"

	// Configuration and storage
	CodeConfigError  Code = "CONFIG_ERROR"
	CodeStorageError Code = "STORAGE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidPrecision, CodePrecisionUnsupported, CodeUnknownMethod, CodeInvalidValue,
		CodeConfigError, CodeStorageError:
		return true
	default:
		return false
	}
}

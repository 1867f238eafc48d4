// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels attached to structured errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package apperr

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core
	// functionality, such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but
	// is recoverable, such as an unreadable configuration file
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts
	// functionality, such as a corrupted history database
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

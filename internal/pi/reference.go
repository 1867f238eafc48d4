// File: reference.go
// Title: Reference Digit Table
// Description: The compiled-in reference digits of pi used for accuracy
//              verification, and the precision cap they impose.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package pi

import (
	"github.com/msto63/pCalc/foundation/core/apperr"
)

// referenceDigits holds pi to 100 decimal places. Comparisons never reach
// past this table: Compute rejects precisions beyond MaxPrecision rather
// than verifying against truncated reference data.
const referenceDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

// MaxPrecision is the largest supported precision, bounded by the
// reference digit table.
const MaxPrecision = len(referenceDigits) - 2

// ReferenceDigits returns the reference string "3." followed by exactly
// `precision` digits.
func ReferenceDigits(precision int) (string, error) {
	if precision < 1 {
		return "", apperr.Newf(apperr.CodeInvalidPrecision, "precision must be at least 1, got %d", precision)
	}
	if precision > MaxPrecision {
		return "", apperr.Newf(apperr.CodePrecisionUnsupported,
			"cannot verify beyond %d digits, got %d", MaxPrecision, precision)
	}
	return referenceDigits[:precision+2], nil
}

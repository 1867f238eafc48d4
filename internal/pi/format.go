// File: format.go
// Title: Digit Formatter
// Description: Renders a computed pi value as a canonical decimal digit
//              string of exact length.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package pi

import (
	"strings"

	"github.com/msto63/pCalc/foundation/core/apperr"
)

// Format renders a Value as "3." followed by exactly `precision` digits
// (total length precision+2).
//
// Policy: the value is rendered with three extra digits and truncated,
// never rounded, at the requested length. Truncation keeps formatting
// consistent across precisions: formatting the same value at a smaller
// precision always yields a prefix of the longer string. The accuracy
// comparator relies on this fixed policy.
//
// A precision above the one the value was computed for would expose
// meaningless guard digits and is rejected.
func Format(v *Value, precision int) (string, error) {
	if v == nil {
		return "", apperr.New(apperr.CodeInvalidValue, "no value to format")
	}
	if precision < 1 {
		return "", apperr.Newf(apperr.CodeInvalidPrecision, "precision must be at least 1, got %d", precision)
	}
	if precision > v.precision {
		return "", apperr.Newf(apperr.CodeInvalidPrecision,
			"value was computed for %d digits, cannot format %d", v.precision, precision)
	}

	// Guard digits absorb the rendering round-off before truncation
	raw := v.value.Text('f', precision+3)

	if !strings.Contains(raw, ".") {
		// A grossly wrong value can render without a fractional part;
		// pad so the fixed-length contract still holds
		raw += "." + strings.Repeat("0", precision+3)
	}

	if len(raw) > precision+2 {
		raw = raw[:precision+2]
	}

	return raw, nil
}

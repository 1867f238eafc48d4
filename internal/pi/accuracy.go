// File: accuracy.go
// Title: Accuracy Comparator
// Description: Compares a formatted pi value against the reference digit
//              table, locates the first divergent digit, and builds a
//              display-ready report with a caret marker.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package pi

import (
	"fmt"
	"strings"

	"github.com/msto63/pCalc/foundation/core/apperr"
)

// NoMismatch is the sentinel mismatch index meaning every compared digit
// matched the reference.
const NoMismatch = -1

// Display geometry for the report lines.
const (
	// maxDisplayWidth is the widest digit string shown on one line
	maxDisplayWidth = 60

	// displayPrefixDigits is how many leading digits stay visible when a
	// deep mismatch forces windowing
	displayPrefixDigits = 8

	// contextRadius is how many digits are shown on each side of a deep
	// mismatch
	contextRadius = 10
)

const valueLabelWidth = 15 // width of "Calculated Pi: "

// Report is the immutable result of one accuracy comparison.
type Report struct {
	lines         []string
	mismatchIndex int
}

// Lines returns the display lines of the report
func (r *Report) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// MismatchIndex returns the zero-based offset of the first divergent
// digit within the digit portion (0 = first digit after the decimal
// point), or NoMismatch if all compared digits are correct.
func (r *Report) MismatchIndex() int {
	return r.mismatchIndex
}

// Correct reports whether the comparison found no divergent digit
func (r *Report) Correct() bool {
	return r.mismatchIndex == NoMismatch
}

// Check formats the value and compares it digit by digit against the
// reference table. A non-positive value is rejected as invalid input
// before any comparison.
func Check(v *Value, precision int) (*Report, error) {
	if v == nil {
		return nil, apperr.New(apperr.CodeInvalidValue, "no value to check")
	}
	if v.value.Sign() <= 0 {
		return nil, apperr.New(apperr.CodeInvalidValue, "invalid input: pi cannot be less than or equal to zero")
	}

	calculated, err := Format(v, precision)
	if err != nil {
		return nil, err
	}

	actual, err := ReferenceDigits(precision)
	if err != nil {
		return nil, err
	}

	return compareDigits(calculated, actual, precision), nil
}

// compareDigits scans the two digit strings left to right after the "3."
// prefix and builds the report around the first difference.
func compareDigits(calculated, actual string, precision int) *Report {
	if !strings.HasPrefix(calculated, "3.") {
		lines := []string{
			fmt.Sprintf("Comparing calculated Pi to the reference value (%d decimal places)", precision),
			"Actual Pi:     " + clipValue(actual),
			"Calculated Pi: " + clipValue(calculated),
			"None of the digits are correct.",
		}
		return &Report{lines: lines, mismatchIndex: 0}
	}

	mismatch := NoMismatch
	for i := 0; i < precision; i++ {
		pos := i + 2
		if pos >= len(calculated) || calculated[pos] != actual[pos] {
			mismatch = i
			break
		}
	}

	lines := []string{
		fmt.Sprintf("Comparing calculated Pi to the reference value (%d decimal places)", precision),
	}

	if mismatch == NoMismatch {
		lines = append(lines,
			"Actual Pi:     "+clipValue(actual),
			"Calculated Pi: "+clipValue(calculated),
			fmt.Sprintf("All %d digit(s) after the decimal point are correct.", precision),
		)
		return &Report{lines: lines, mismatchIndex: NoMismatch}
	}

	actualView, calculatedView, caretCol := windowAround(actual, calculated, mismatch)
	lines = append(lines,
		"Actual Pi:     "+actualView,
		"Calculated Pi: "+calculatedView,
		strings.Repeat(" ", valueLabelWidth+caretCol)+"^",
		fmt.Sprintf("First mismatch at digit %d after the decimal point.", mismatch+1),
	)

	return &Report{lines: lines, mismatchIndex: mismatch}
}

// clipValue shortens a digit string to the display width with a trailing
// ellipsis
func clipValue(s string) string {
	if len(s) <= maxDisplayWidth {
		return s
	}
	return s[:maxDisplayWidth-3] + "..."
}

// windowAround renders both digit strings so the mismatching digit is
// always visible, and returns the caret column within the rendered
// strings.
//
// Short strings are shown in full. Long strings with an early mismatch
// are clipped at the right. For a deep mismatch both strings collapse to
// a fixed prefix, an ellipsis, and a context window centered on the
// mismatch; the caret column is recomputed against the inserted prefix
// and ellipsis.
func windowAround(actual, calculated string, mismatch int) (string, string, int) {
	col := mismatch + 2 // column within the full string, after "3."

	if len(actual) <= maxDisplayWidth && len(calculated) <= maxDisplayWidth {
		return actual, calculated, col
	}

	if col < maxDisplayWidth-3 {
		return clipValue(actual), clipValue(calculated), col
	}

	prefixLen := 2 + displayPrefixDigits
	start := col - contextRadius

	window := func(s string) string {
		end := col + contextRadius + 1
		suffix := "..."
		if end >= len(s) {
			end = len(s)
			suffix = ""
		}
		if start >= len(s) {
			return s[:prefixLen] + "..."
		}
		return s[:prefixLen] + "..." + s[start:end] + suffix
	}

	caret := prefixLen + 3 + (col - start)
	return window(actual), window(calculated), caret
}

// File: spigot_test.go
// Title: Spigot Algorithm Tests
// Description: Tests for the Rabinowitz-Wagon digit stream, in particular
//              the deferred 9-run bookkeeping around carry digits.
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
	"testing"
)

func TestSpigotDigitsMatchReference(t *testing.T) {
	for _, precision := range []int{1, 5, 14, 20, 44, 50, 70, 100} {
		t.Run(fmt.Sprintf("precision_%d", precision), func(t *testing.T) {
			digits := spigotDigits(precision)

			if len(digits) != precision+2 {
				t.Fatalf("spigotDigits(%d) produced %d digits, want %d",
					precision, len(digits), precision+2)
			}
			if digits[0] != '3' {
				t.Fatalf("leading digit = %q, want '3'", digits[0])
			}

			// Guard digit excluded: only the visible digits are compared
			got := string(digits[1 : precision+1])
			want := referenceDigits[2 : precision+2]
			if got != want {
				t.Errorf("digits after the decimal point = %q, want %q", got, want)
			}
		})
	}
}

// Digit offsets 43-44 and 78-79 of pi are runs of 9s. A spigot that commits
// digits eagerly instead of buffering the run gets these wrong whenever a
// later carry has to propagate back through them.
func TestSpigotNineRunCarry(t *testing.T) {
	digits := spigotDigits(100)

	for _, offset := range []int{43, 44, 78, 79} {
		if digits[offset+1] != '9' {
			t.Errorf("digit at offset %d = %q, want '9'", offset, digits[offset+1])
		}
	}

	// Precision 44 ends on the first digit of a 9-run; the run must still
	// resolve correctly against the digits beyond it.
	short := spigotDigits(44)
	if got, want := string(short[1:45]), referenceDigits[2:46]; got != want {
		t.Errorf("precision 44 digits = %q, want %q", got, want)
	}
}

func TestComputeSpigotRoundTrip(t *testing.T) {
	for _, precision := range []int{1, 14, 50, 100} {
		v, err := Compute(Spigot, precision)
		if err != nil {
			t.Fatalf("Compute(Spigot, %d) error: %v", precision, err)
		}

		report, err := Check(v, precision)
		if err != nil {
			t.Fatalf("Check error at precision %d: %v", precision, err)
		}
		if !report.Correct() {
			t.Errorf("spigot at precision %d mismatches at digit index %d",
				precision, report.MismatchIndex())
		}
	}
}

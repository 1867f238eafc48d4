// File: compute_test.go
// Title: Computation Tests
// Description: End-to-end tests for every calculation method against the
//              reference digit table, plus boundary validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package pi

import (
	"testing"

	"github.com/msto63/pCalc/foundation/core/apperr"
)

// seriesMethods are the methods whose accuracy scales with the requested
// precision. NumericalIntegration is tested separately because its
// accuracy caps at its discretization ceiling.
var seriesMethods = []Method{Machin, Ramanujan, Chudnovsky, GaussLegendre, Spigot, BBP}

func TestComputeMatchesReference(t *testing.T) {
	precisions := []int{1, 5, 14, 20, 50}

	for _, m := range seriesMethods {
		for _, p := range precisions {
			value, err := Compute(m, p)
			if err != nil {
				t.Fatalf("Compute(%v, %d) error: %v", m, p, err)
			}

			report, err := Check(value, p)
			if err != nil {
				t.Fatalf("Check(%v, %d) error: %v", m, p, err)
			}
			if !report.Correct() {
				digits, _ := Format(value, p)
				t.Errorf("Compute(%v, %d): mismatch at digit %d, got %q",
					m, p, report.MismatchIndex(), digits)
			}
		}
	}
}

func TestComputeMachinFourteenDigits(t *testing.T) {
	value, err := Compute(Machin, 14)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	digits, err := Format(value, 14)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if digits != "3.14159265358979" {
		t.Errorf("Format = %q, want 3.14159265358979", digits)
	}

	report, err := Check(value, 14)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if !report.Correct() {
		t.Errorf("Check reported mismatch at digit %d", report.MismatchIndex())
	}
}

func TestComputeChudnovskyFiftyDigits(t *testing.T) {
	value, err := Compute(Chudnovsky, 50)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	digits, err := Format(value, 50)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	want, _ := ReferenceDigits(50)
	if digits != want {
		t.Errorf("Format = %q, want %q", digits, want)
	}
}

func TestComputePrecisionOne(t *testing.T) {
	for _, m := range append(seriesMethods, NumericalIntegration) {
		value, err := Compute(m, 1)
		if err != nil {
			t.Fatalf("Compute(%v, 1) error: %v", m, err)
		}

		digits, err := Format(value, 1)
		if err != nil {
			t.Fatalf("Format(%v, 1) error: %v", m, err)
		}
		if digits != "3.1" {
			t.Errorf("Format(%v, 1) = %q, want 3.1", m, digits)
		}

		report, err := Check(value, 1)
		if err != nil {
			t.Fatalf("Check(%v, 1) error: %v", m, err)
		}
		if !report.Correct() {
			t.Errorf("Check(%v, 1) reported mismatch", m)
		}
	}
}

func TestComputeIntegrationAccuracyCeiling(t *testing.T) {
	// Below the ceiling the result is correct
	value, err := Compute(NumericalIntegration, 5)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	report, err := Check(value, 5)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if !report.Correct() {
		t.Errorf("precision 5 should be within the accuracy ceiling, mismatch at %d", report.MismatchIndex())
	}

	// Past the ceiling the comparator reports an in-range mismatch
	value, err = Compute(NumericalIntegration, 20)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	report, err = Check(value, 20)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if report.Correct() {
		t.Fatal("precision 20 exceeds the integration accuracy ceiling, expected a mismatch")
	}
	if idx := report.MismatchIndex(); idx < 14 || idx >= 20 {
		t.Errorf("mismatch index = %d, want within [14, 20)", idx)
	}
	if len(report.Lines()) == 0 {
		t.Error("mismatch report has no display lines")
	}
}

func TestComputeValidation(t *testing.T) {
	tests := []struct {
		name      string
		method    Method
		precision int
		code      apperr.Code
	}{
		{"zero precision", Machin, 0, apperr.CodeInvalidPrecision},
		{"negative precision", Chudnovsky, -5, apperr.CodeInvalidPrecision},
		{"beyond reference table", Spigot, MaxPrecision + 1, apperr.CodePrecisionUnsupported},
		{"invalid method", Method(99), 10, apperr.CodeUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.method, tt.precision)
			if err == nil {
				t.Fatal("Compute should fail")
			}
			if !apperr.IsCode(err, tt.code) {
				t.Errorf("error code = %v, want %v", apperr.CodeOf(err), tt.code)
			}
		})
	}
}

func TestValueFloatIsCopy(t *testing.T) {
	value, err := Compute(GaussLegendre, 10)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	before, _ := Format(value, 10)

	f := value.Float()
	f.SetInt64(0) // mutating the copy must not affect the Value

	after, _ := Format(value, 10)
	if before != after {
		t.Errorf("Value changed after mutating Float() copy: %q -> %q", before, after)
	}
}

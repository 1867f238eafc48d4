package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/pCalc/internal/history"
	"github.com/msto63/pCalc/internal/pi"
)

// TestE2E_ComputeWorkflow runs the complete calculation workflow for every
// method:
// 1. Compute pi at the requested precision
// 2. Format the value to the digit string
// 3. Check the digits against the reference table
// 4. Record the result in the history store
// 5. Query the history back
func TestE2E_ComputeWorkflow(t *testing.T) {
	store, err := history.NewSQLiteStore(history.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "history.db"),
	})
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const precision = 30

	for _, method := range pi.Methods() {
		t.Run(method.String(), func(t *testing.T) {
			started := time.Now()
			value, err := pi.Compute(method, precision)
			if err != nil {
				t.Fatalf("Compute error: %v", err)
			}
			elapsed := time.Since(started)

			digits, err := pi.Format(value, precision)
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if len(digits) != precision+2 {
				t.Fatalf("digit string has %d characters, want %d", len(digits), precision+2)
			}

			report, err := pi.Check(value, precision)
			if err != nil {
				t.Fatalf("Check error: %v", err)
			}
			// Every series method is exact here; only the fixed-grid
			// integration may fall short of 30 digits
			if method != pi.NumericalIntegration && !report.Correct() {
				t.Errorf("mismatch at digit index %d", report.MismatchIndex())
			}

			err = store.Record(ctx, &history.Entry{
				Method:        method.String(),
				Precision:     precision,
				ElapsedMS:     elapsed.Milliseconds(),
				Digits:        digits,
				MismatchIndex: report.MismatchIndex(),
			})
			if err != nil {
				t.Fatalf("Record error: %v", err)
			}
		})
	}

	entries, err := store.Recent(ctx, len(pi.Methods()))
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(entries) != len(pi.Methods()) {
		t.Errorf("history holds %d entries, want %d", len(entries), len(pi.Methods()))
	}

	for _, entry := range entries {
		if _, err := pi.ParseMethod(entry.Method); err != nil {
			t.Errorf("history entry has unparseable method %q", entry.Method)
		}
	}
}

// TestE2E_PrecisionSweep verifies the digit prefix property across the
// supported precision range: the digits at a lower precision are always a
// prefix of the digits at a higher one.
func TestE2E_PrecisionSweep(t *testing.T) {
	full, err := pi.Compute(pi.Chudnovsky, pi.MaxPrecision)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	fullDigits, err := pi.Format(full, pi.MaxPrecision)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	for precision := 1; precision <= pi.MaxPrecision; precision += 7 {
		value, err := pi.Compute(pi.Chudnovsky, precision)
		if err != nil {
			t.Fatalf("Compute at precision %d: %v", precision, err)
		}
		digits, err := pi.Format(value, precision)
		if err != nil {
			t.Fatalf("Format at precision %d: %v", precision, err)
		}

		if fullDigits[:len(digits)] != digits {
			t.Errorf("digits at precision %d are not a prefix of the full expansion", precision)
		}
	}
}

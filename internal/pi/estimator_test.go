// File: estimator_test.go
// Title: Convergence Estimator Tests
// Description: Tests for the precision-to-iterations mapping and its
//              monotonicity.
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
)

func TestIterationsFor(t *testing.T) {
	tests := []struct {
		method    Method
		precision int
		want      int
	}{
		{Machin, 50, 0},
		{NumericalIntegration, 50, 0},
		{Ramanujan, 1, 2},
		{Ramanujan, 50, 8},
		{Ramanujan, 100, 14},
		{Chudnovsky, 14, 3},
		{Chudnovsky, 50, 5},
		{Chudnovsky, 100, 9},
		{GaussLegendre, 1, 2},
		{GaussLegendre, 50, 8},
		{GaussLegendre, 100, 9},
		{BBP, 1, 2},
		{BBP, 50, 43},
		{Spigot, 1, 11},
		{Spigot, 50, 174},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			got := IterationsFor(tt.method, tt.precision)
			if got != tt.want {
				t.Errorf("IterationsFor(%v, %d) = %d, want %d", tt.method, tt.precision, got, tt.want)
			}
		})
	}
}

func TestIterationsForMonotonic(t *testing.T) {
	for _, m := range Methods() {
		prev := IterationsFor(m, 1)
		for p := 2; p <= MaxPrecision; p++ {
			got := IterationsFor(m, p)
			if got < prev {
				t.Fatalf("IterationsFor(%v, %d) = %d < IterationsFor(%v, %d) = %d",
					m, p, got, m, p-1, prev)
			}
			prev = got
		}
	}
}

func TestSpigotArrayLen(t *testing.T) {
	// 10*(precision+2)/3 + 1 working cells per requested digit count
	tests := []struct {
		precision int
		want      int
	}{
		{1, 11},
		{14, 54},
		{100, 341},
	}
	for _, tt := range tests {
		if got := spigotArrayLen(tt.precision); got != tt.want {
			t.Errorf("spigotArrayLen(%d) = %d, want %d", tt.precision, got, tt.want)
		}
	}
}

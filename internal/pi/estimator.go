// File: estimator.go
// Title: Convergence Estimator
// Description: Maps a (method, precision) pair to the iteration or term
//              count the method needs to reach that precision, derived
//              from each method's convergence rate.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package pi

import (
	"math"
)

// Decimal digits gained per series term, from each method's known
// convergence rate. The +2 terms below over-provision against rounding in
// these constants near precision boundaries.
const (
	ramanujanDigitsPerTerm  = 8    // ~7.98 in theory
	chudnovskyDigitsPerTerm = 14   // ~14.18 in theory
	bbpDigitsPerTerm        = 1.2  // base-16 series evaluated in decimal
)

// IterationsFor returns the number of series terms or iterations the
// given method runs to produce `precision` correct decimal digits.
//
// Machin and NumericalIntegration return 0: they terminate on an internal
// convergence criterion (Machin stops when the current arctangent term
// falls below the working-precision threshold; integration runs a fixed
// discretization). For Spigot the value is the length of the internal
// working array, which is also the number of inner passes.
//
// The result is non-decreasing in precision for every method.
func IterationsFor(method Method, precision int) int {
	switch method {
	case NumericalIntegration, Machin:
		return 0
	case Ramanujan:
		return precision/ramanujanDigitsPerTerm + 2
	case Chudnovsky:
		return precision/chudnovskyDigitsPerTerm + 2
	case GaussLegendre:
		// Quadratic convergence: correct digits double per iteration
		return int(math.Ceil(math.Log2(float64(precision)))) + 2
	case Spigot:
		return spigotArrayLen(precision)
	case BBP:
		return int(float64(precision)/bbpDigitsPerTerm) + 2
	default:
		return 0
	}
}

// spigotArrayLen returns the working array length for the spigot
// algorithm: 10*(precision+2)/3 + 1 cells for precision digits plus the
// leading 3 and one guard digit.
func spigotArrayLen(precision int) int {
	return 10*(precision+2)/3 + 1
}

//go:build !gmp

// File: factorial.go
// Title: Exact Integer Primitives (math/big)
// Description: Exact factorial and fixed-base integer power on math/big,
//              the default arithmetic backend. A GMP-backed variant is
//              available behind the "gmp" build tag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package pi

import (
	"math/big"
)

// factorial returns n! as an exact integer. The series methods feed these
// into big-float division, so no precision is lost before the big-float
// arithmetic begins.
func factorial(n int64) *big.Int {
	result := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result
}

// ipow returns base^exp as an exact integer for exp >= 0
func ipow(base, exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
}

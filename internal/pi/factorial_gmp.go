//go:build gmp

// File: factorial_gmp.go
// Title: Exact Integer Primitives (GMP)
// Description: GMP-backed factorial and fixed-base integer power,
//              conditionally compiled with the "gmp" build tag. Large
//              factorials dominate the Ramanujan and Chudnovsky series at
//              high precision, where GMP's multiplication outperforms
//              math/big; requires libgmp installed on the system.
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

	"github.com/ncw/gmp"
)

// factorial returns n! as an exact integer, computed with GMP
func factorial(n int64) *big.Int {
	result := gmp.NewInt(1)
	t := gmp.NewInt(0)
	for i := int64(2); i <= n; i++ {
		t.SetInt64(i)
		result.Mul(result, t)
	}
	return new(big.Int).SetBytes(result.Bytes())
}

// ipow returns base^exp as an exact integer for exp >= 0
func ipow(base, exp int64) *big.Int {
	result := gmp.NewInt(1)
	b := gmp.NewInt(base)
	for i := int64(0); i < exp; i++ {
		result.Mul(result, b)
	}
	return new(big.Int).SetBytes(result.Bytes())
}

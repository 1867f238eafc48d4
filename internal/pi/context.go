// File: context.go
// Title: Working Precision Context
// Description: Carries the explicit big-float working precision through
//              every arithmetic operation of the engine.
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
	"math/big"
)

// GuardDigits is the number of extra decimal digits computed beyond the
// requested output length. They absorb rounding error at the last
// requested digit before the formatter truncates.
const GuardDigits = 10

// Context owns the working precision for one calculation. Every big-float
// the engine creates goes through the Context, so precision is an explicit
// parameter rather than ambient global state.
type Context struct {
	bits uint
}

// NewContext sizes a working precision for the given number of requested
// decimal digits: (digits + guard) * log2(10) bits, plus a small margin
// for intermediate operations.
func NewContext(digits int) Context {
	bits := uint(math.Ceil(float64(digits+GuardDigits)*math.Log2(10))) + 16
	return Context{bits: bits}
}

// Bits returns the working precision in bits
func (c Context) Bits() uint {
	return c.bits
}

// New returns a zero big-float at the working precision
func (c Context) New() *big.Float {
	return new(big.Float).SetPrec(c.bits)
}

// FromInt64 returns a big-float holding v at the working precision
func (c Context) FromInt64(v int64) *big.Float {
	return new(big.Float).SetPrec(c.bits).SetInt64(v)
}

// FromInt returns a big-float holding the exact integer x at the working
// precision
func (c Context) FromInt(x *big.Int) *big.Float {
	return new(big.Float).SetPrec(c.bits).SetInt(x)
}

// Sqrt returns a newly allocated square root of x at the working precision
func (c Context) Sqrt(x *big.Float) *big.Float {
	return c.New().Sqrt(x)
}

// Negligible reports whether a series term has fallen below the working
// precision and can no longer affect the accumulated result. The threshold
// scales with the working precision; a term with binary exponent below
// -bits contributes nothing at this precision.
func (c Context) Negligible(term *big.Float) bool {
	if term.Sign() == 0 {
		return true
	}
	return term.MantExp(nil) < -int(c.bits)
}

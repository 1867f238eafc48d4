// File: machin.go
// Title: Machin's Formula
// Description: Computes pi via Machin's arctangent identity with a
//              Taylor-series arctangent whose cutoff scales with the
//              working precision.
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

// computeMachin evaluates pi = 16*arctan(1/5) - 4*arctan(1/239)
func computeMachin(ctx Context) *big.Float {
	result := ctx.New().Mul(ctx.FromInt64(16), arctanInv(ctx, 5))
	return result.Sub(result, ctx.New().Mul(ctx.FromInt64(4), arctanInv(ctx, 239)))
}

// arctanInv computes arctan(1/k) by its Taylor series. Each term is
// derived from the previous one (term *= -x^2 * (n-2)/n), and the series
// stops when the term magnitude drops below the working-precision
// threshold, so accuracy follows the requested precision instead of
// capping at a fixed constant.
func arctanInv(ctx Context, k int64) *big.Float {
	x := ctx.New().Quo(ctx.FromInt64(1), ctx.FromInt64(k))

	result := ctx.New()
	term := ctx.New().Set(x)
	negX2 := ctx.New().Mul(x, x)
	negX2.Neg(negX2)

	tmp := ctx.New()
	n := int64(1)

	for !ctx.Negligible(term) {
		result.Add(result, term)
		n += 2
		term.Mul(term, negX2)
		term.Mul(term, tmp.SetInt64(n-2))
		term.Quo(term, tmp.SetInt64(n))
	}

	return result
}

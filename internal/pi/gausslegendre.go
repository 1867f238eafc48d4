// File: gausslegendre.go
// Title: Gauss-Legendre Algorithm
// Description: Computes pi via the arithmetic-geometric mean iteration,
//              doubling the number of correct digits each step.
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

// computeGaussLegendre refines (a, b, t, p) for `iterations` steps from
// a=1, b=1/sqrt(2), t=1/4, p=1 and finalizes pi = (a+b)^2 / (4t).
func computeGaussLegendre(ctx Context, iterations int) *big.Float {
	one := ctx.FromInt64(1)
	two := ctx.FromInt64(2)
	four := ctx.FromInt64(4)

	a := ctx.FromInt64(1)
	b := ctx.New().Quo(one, ctx.Sqrt(two))
	t := ctx.New().Quo(one, four)
	p := ctx.FromInt64(1)

	for i := 0; i < iterations; i++ {
		aNext := ctx.New().Add(a, b)
		aNext.Quo(aNext, two)

		bNext := ctx.Sqrt(ctx.New().Mul(a, b))

		diff := ctx.New().Sub(a, aNext)
		diff.Mul(diff, diff)
		diff.Mul(diff, p)
		t.Sub(t, diff)

		p.Mul(p, two)
		a, b = aNext, bNext
	}

	result := ctx.New().Add(a, b)
	result.Mul(result, result)
	return result.Quo(result, ctx.New().Mul(four, t))
}

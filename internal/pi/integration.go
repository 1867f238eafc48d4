// File: integration.go
// Title: Numerical Integration Method
// Description: Approximates pi by a Riemann sum over 1/(a^2+x^2), running
//              the inner loop in float64 and periodically folding partial
//              sums into the big-float accumulator.
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

// Integration constants. The interval size trades runtime for accuracy;
// with these values the discretization error caps the result at roughly
// 15-17 correct digits no matter the requested precision.
const (
	integrationUpperBound = 27500000
	integrationBatchSize  = 10000
)

// computeIntegration computes pi = 4a * integral of 1/(a^2+x^2) dx over
// [0,a], approximated with unit steps. Partial sums accumulate in float64
// for speed and fold into the big-float accumulator every batch, bounding
// floating-point error accumulation without paying big-float cost per
// step.
func computeIntegration(ctx Context) *big.Float {
	const a = float64(integrationUpperBound)
	const dx = 1.0
	a2 := a * a

	sum := ctx.New()
	tmp := ctx.New()

	batchSum := 0.0
	batchCount := 0

	for x := dx; x <= a-dx; x += dx {
		batchSum += (1.0 / (a2 + x*x)) * dx

		if batchCount++; batchCount == integrationBatchSize {
			sum.Add(sum, tmp.SetFloat64(batchSum))
			batchSum = 0.0
			batchCount = 0
		}
	}

	if batchSum != 0.0 {
		sum.Add(sum, tmp.SetFloat64(batchSum))
	}

	// Midpoint correction for the untreated tail of the interval
	aBig := ctx.FromInt64(integrationUpperBound)
	a2Big := ctx.New().Mul(aBig, aBig)
	one := ctx.FromInt64(1)

	remaining := ctx.New().Quo(one, a2Big)
	remaining.Add(remaining, ctx.New().Quo(one, ctx.New().Mul(ctx.FromInt64(2), a2Big)))
	remaining.Quo(remaining, ctx.FromInt64(2))
	sum.Add(sum, remaining)

	result := ctx.New().Mul(sum, aBig)
	return result.Mul(result, ctx.FromInt64(4))
}

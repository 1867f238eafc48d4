// File: ramanujan.go
// Title: Ramanujan's First Series
// Description: Computes pi via Ramanujan's rapidly converging 1914 series,
//              gaining about eight decimal digits per term.
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

// computeRamanujan accumulates `terms` terms of
//
//	sum_k (4k)! * (1103 + 26390k) / ((k!)^4 * 396^(4k))
//
// and finalizes pi = 1 / (factor * sum) with factor = 2*sqrt(2)/9801.
// Numerator and denominator of each term are exact integers before they
// enter big-float division.
func computeRamanujan(ctx Context, terms int) *big.Float {
	sum := ctx.New()

	for k := 0; k < terms; k++ {
		numerator := new(big.Int).Mul(
			factorial(int64(4*k)),
			big.NewInt(1103+26390*int64(k)),
		)

		kFact := factorial(int64(k))
		kFact4 := new(big.Int).Mul(kFact, kFact)
		kFact4.Mul(kFact4, kFact4)

		denominator := new(big.Int).Mul(kFact4, ipow(396, int64(4*k)))

		sum.Add(sum, ctx.New().Quo(ctx.FromInt(numerator), ctx.FromInt(denominator)))
	}

	factor := ctx.New().Mul(ctx.FromInt64(2), ctx.Sqrt(ctx.FromInt64(2)))
	factor.Quo(factor, ctx.FromInt64(9801))

	return ctx.New().Quo(ctx.FromInt64(1), factor.Mul(factor, sum))
}

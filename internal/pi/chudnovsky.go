// File: chudnovsky.go
// Title: Chudnovsky Algorithm
// Description: Computes pi via the Chudnovsky brothers' series, gaining
//              about fourteen decimal digits per term.
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

// computeChudnovsky accumulates `terms` terms of the alternating series
//
//	sum_k (-1)^k * (6k)! * (13591409 + 545140134k) / ((3k)! * (k!)^3 * 640320^(3k))
//
// and finalizes pi = C / sum with C = 426880 * sqrt(10005).
func computeChudnovsky(ctx Context, terms int) *big.Float {
	sum := ctx.New()

	for k := 0; k < terms; k++ {
		numerator := new(big.Int).Mul(
			factorial(int64(6*k)),
			big.NewInt(13591409+545140134*int64(k)),
		)

		kFact := factorial(int64(k))
		kFact3 := new(big.Int).Mul(kFact, kFact)
		kFact3.Mul(kFact3, kFact)

		denominator := new(big.Int).Mul(factorial(int64(3*k)), kFact3)
		denominator.Mul(denominator, ipow(640320, int64(3*k)))

		term := ctx.New().Quo(ctx.FromInt(numerator), ctx.FromInt(denominator))
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
	}

	c := ctx.New().Mul(ctx.FromInt64(426880), ctx.Sqrt(ctx.FromInt64(10005)))
	return c.Quo(c, sum)
}

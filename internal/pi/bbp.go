// File: bbp.go
// Title: Bailey-Borwein-Plouffe Series
// Description: Computes pi via direct decimal evaluation of the BBP
//              base-16 series.
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

// computeBBP accumulates `terms` terms of
//
//	sum_k (4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6)) / 16^k
//
// Each term needs only one fixed-base integer power, no factorials. The
// base-16 series yields about 1.2 decimal digits per term when evaluated
// in decimal.
func computeBBP(ctx Context, terms int) *big.Float {
	sum := ctx.New()

	for k := 0; k < terms; k++ {
		k8 := int64(8 * k)

		term := ctx.New().Quo(ctx.FromInt64(4), ctx.FromInt64(k8+1))
		term.Sub(term, ctx.New().Quo(ctx.FromInt64(2), ctx.FromInt64(k8+4)))
		term.Sub(term, ctx.New().Quo(ctx.FromInt64(1), ctx.FromInt64(k8+5)))
		term.Sub(term, ctx.New().Quo(ctx.FromInt64(1), ctx.FromInt64(k8+6)))
		term.Quo(term, ctx.FromInt(ipow(16, int64(k))))

		sum.Add(sum, term)
	}

	return sum
}

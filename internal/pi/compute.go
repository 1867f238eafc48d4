// File: compute.go
// Title: Computation Boundary
// Description: Validates requests, sizes the working precision, derives
//              the iteration bound, and dispatches to the chosen method.
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

	"github.com/msto63/pCalc/foundation/core/apperr"
)

// Value is the immutable result of one method run at one precision.
type Value struct {
	value     *big.Float
	method    Method
	precision int
}

// Method returns the method that produced this value
func (v *Value) Method() Method {
	return v.method
}

// Precision returns the decimal digit count the value was computed for
func (v *Value) Precision() int {
	return v.precision
}

// Float returns a copy of the underlying big-float, so the Value itself
// stays immutable
func (v *Value) Float() *big.Float {
	return new(big.Float).Copy(v.value)
}

// Compute runs the chosen method at the given precision. Precision is
// validated here once; the algorithms themselves assume a valid value.
// The call is synchronous and may take long at high precisions; it is
// pure apart from CPU time, so there is nothing to cancel or retry.
func Compute(method Method, precision int) (*Value, error) {
	if precision < 1 {
		return nil, apperr.Newf(apperr.CodeInvalidPrecision, "precision must be at least 1, got %d", precision)
	}
	if precision > MaxPrecision {
		return nil, apperr.Newf(apperr.CodePrecisionUnsupported,
			"precision %d exceeds the %d-digit reference table", precision, MaxPrecision)
	}
	if !method.Valid() {
		return nil, apperr.Newf(apperr.CodeUnknownMethod, "unknown calculation method: %d", int(method))
	}

	ctx := NewContext(precision)
	iterations := IterationsFor(method, precision)

	var result *big.Float
	switch method {
	case NumericalIntegration:
		result = computeIntegration(ctx)
	case Machin:
		result = computeMachin(ctx)
	case Ramanujan:
		result = computeRamanujan(ctx, iterations)
	case Chudnovsky:
		result = computeChudnovsky(ctx, iterations)
	case GaussLegendre:
		result = computeGaussLegendre(ctx, iterations)
	case Spigot:
		result = computeSpigot(ctx, precision)
	case BBP:
		result = computeBBP(ctx, iterations)
	}

	return &Value{value: result, method: method, precision: precision}, nil
}

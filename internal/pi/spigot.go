// File: spigot.go
// Title: Spigot Algorithm
// Description: Streams decimal digits of pi via the Rabinowitz-Wagon
//              spigot, simulating long division over an integer array
//              with deferred handling of 9-runs.
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

// computeSpigot generates the digits of pi with the spigot and converts
// them into a big-float at the working precision.
func computeSpigot(ctx Context, precision int) *big.Float {
	digits := spigotDigits(precision)

	s := make([]byte, 0, len(digits)+1)
	s = append(s, digits[0], '.')
	s = append(s, digits[1:]...)

	result, _, _ := big.ParseFloat(string(s), 10, ctx.Bits(), big.ToNearestEven)
	return result
}

// spigotDigits produces precision+2 decimal digits of pi (the leading 3,
// `precision` digits after the decimal point, and one guard digit) using
// the mixed-radix long division of Rabinowitz and Wagon.
//
// A produced digit cannot be emitted immediately: a pending run of 9s may
// still be turned into a carry by a later digit. The algorithm therefore
// buffers one predigit plus a count of following 9s, and commits them only
// when the next digit resolves the carry: a digit of 10 increments the
// predigit and collapses the 9s to 0s, any other digit commits the run
// as-is. Mishandling this turns digits arbitrarily far back into garbage,
// so the run bookkeeping is the trickiest part of the whole engine.
func spigotDigits(precision int) []byte {
	n := precision + 2
	length := spigotArrayLen(precision)

	a := make([]int, length)
	for i := range a {
		a[i] = 2 // pi = 2 + 2*(1/3) + 2*(1/3)*(2/5) + ...
	}

	// The very first committed predigit is the initial zero placeholder;
	// it is sliced off before returning.
	out := make([]byte, 0, n+1)
	predigit := 0
	nines := 0

	for j := 0; j < n; j++ {
		q := 0
		for i := length - 1; i >= 0; i-- {
			denom := 2*i + 1
			x := 10*a[i] + q*(i+1)
			a[i] = x % denom
			q = x / denom
		}

		a[0] = q % 10
		q /= 10

		switch {
		case q == 9:
			nines++
		case q == 10:
			// Carry: the buffered predigit rounds up, the 9-run
			// collapses to zeros
			out = append(out, byte('0'+predigit+1))
			for ; nines > 0; nines-- {
				out = append(out, '0')
			}
			predigit = 0
		default:
			out = append(out, byte('0'+predigit))
			predigit = q
			for ; nines > 0; nines-- {
				out = append(out, '9')
			}
		}
	}

	// Flush the trailing predigit and any still-pending 9s. An unresolved
	// run at the very end lands in the guard zone, where truncation makes
	// the committed 9s correct either way.
	out = append(out, byte('0'+predigit))
	for ; nines > 0; nines-- {
		out = append(out, '9')
	}

	return out[1:]
}

// File: doc.go
// Title: Pi Engine Package Documentation
// Description: Package documentation for the arbitrary-precision pi
//              computation engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

// Package pi implements an arbitrary-precision pi computation engine.
//
// Seven independent methods are provided: numerical integration, Machin's
// formula, Ramanujan's first series, the Chudnovsky series, Gauss-Legendre
// AGM iteration, a Rabinowitz-Wagon spigot, and the Bailey-Borwein-Plouffe
// series. Each computes pi to a requested number of decimal digits; the
// iteration count (or internal convergence threshold) is derived from the
// requested precision, never hardcoded.
//
// The entry points mirror the three operations of the engine:
//
//	value, err := pi.Compute(pi.Chudnovsky, 50)
//	digits, err := pi.Format(value, 50)   // "3." + 50 digits
//	report, err := pi.Check(value, 50)    // digit-by-digit verification
//
// All arithmetic runs at an explicit working precision carried by a
// Context; there is no ambient global precision state. Formatting
// truncates after computing guard digits, so formatting one value at a
// smaller precision always yields a prefix of the longer form.
//
// Numerical integration is a fixed-accuracy legacy method: its result is
// capped at roughly 15-17 correct digits by discretization error
// regardless of the requested precision. The accuracy report, not an
// error, surfaces this.
package pi

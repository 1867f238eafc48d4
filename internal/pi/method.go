// File: method.go
// Title: Calculation Method Enumeration
// Description: Defines the closed set of pi calculation methods with
//              display names and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package pi

import (
	"strings"

	"github.com/msto63/pCalc/foundation/core/apperr"
)

// Method identifies one of the supported pi calculation methods
type Method int

const (
	// NumericalIntegration approximates pi via a Riemann sum. Fixed
	// accuracy ceiling of roughly 15-17 digits.
	NumericalIntegration Method = iota

	// Machin evaluates Machin's arctangent formula
	Machin

	// Ramanujan evaluates Ramanujan's first series (~8 digits per term)
	Ramanujan

	// Chudnovsky evaluates the Chudnovsky series (~14 digits per term)
	Chudnovsky

	// GaussLegendre runs the arithmetic-geometric mean iteration
	// (digit count doubles per iteration)
	GaussLegendre

	// Spigot streams decimal digits via the Rabinowitz-Wagon algorithm
	Spigot

	// BBP evaluates the Bailey-Borwein-Plouffe series in decimal
	BBP

	methodCount
)

// Methods returns all supported methods in menu order
func Methods() []Method {
	out := make([]Method, 0, methodCount)
	for m := Method(0); m < methodCount; m++ {
		out = append(out, m)
	}
	return out
}

// String returns the canonical identifier used on the command line
func (m Method) String() string {
	switch m {
	case NumericalIntegration:
		return "integration"
	case Machin:
		return "machin"
	case Ramanujan:
		return "ramanujan"
	case Chudnovsky:
		return "chudnovsky"
	case GaussLegendre:
		return "gauss-legendre"
	case Spigot:
		return "spigot"
	case BBP:
		return "bbp"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable name shown in menus
func (m Method) DisplayName() string {
	switch m {
	case NumericalIntegration:
		return "Numerical Integration"
	case Machin:
		return "Machin's Formula"
	case Ramanujan:
		return "Ramanujan's First Series"
	case Chudnovsky:
		return "Chudnovsky Algorithm"
	case GaussLegendre:
		return "Gauss-Legendre Algorithm"
	case Spigot:
		return "Spigot Algorithm"
	case BBP:
		return "Bailey-Borwein-Plouffe Series"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is a member of the closed method set
func (m Method) Valid() bool {
	return m >= 0 && m < methodCount
}

// ParseMethod parses a method identifier as used on the command line.
// Matching is case-insensitive and accepts a few common aliases.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integration", "numerical-integration", "numint":
		return NumericalIntegration, nil
	case "machin":
		return Machin, nil
	case "ramanujan":
		return Ramanujan, nil
	case "chudnovsky":
		return Chudnovsky, nil
	case "gauss-legendre", "gausslegendre", "agm":
		return GaussLegendre, nil
	case "spigot":
		return Spigot, nil
	case "bbp", "bailey-borwein-plouffe":
		return BBP, nil
	default:
		return 0, apperr.Newf(apperr.CodeUnknownMethod, "unknown calculation method: %q", s)
	}
}

// ============================================================================
// pCalc - Arbitrary-Precision Pi Engine
// ============================================================================
//
// Package:     calculator
// Description: Message types for async operations in the calculator TUI
// Author:      Mike Stoffels
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package calculator

import (
	"time"
)

// Message types for tea.Cmd async operations

// computeDoneMsg is sent when a pi computation finishes
type computeDoneMsg struct {
	digits        string
	reportLines   []string
	mismatchIndex int
	elapsed       time.Duration
	err           error
}

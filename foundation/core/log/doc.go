// File: doc.go
// Title: Logging Package Documentation
// Description: Package documentation for the pCalc structured logging system.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

// Package log provides structured, leveled logging for pCalc.
//
// The package offers a Logger with pluggable output formats (text, console,
// JSON), typed field helpers for structured context, and a Timer for
// measuring calculation durations. Loggers are immutable: the With* methods
// return modified clones, so a configured logger can be shared freely.
//
// Basic usage:
//
//	logger := log.New().WithName("pcalc").WithLevel(log.LevelDebug)
//	logger.Info("calculation started", log.String("method", "chudnovsky"))
//
//	timer := logger.StartTimer("compute pi")
//	// ... work ...
//	timer.Stop()
//
// The Timer treats non-positive clock deltas as unknown rather than
// reporting a negative duration, which matters on platforms with
// inaccurate or emulated clocks.
package log

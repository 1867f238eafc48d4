// ============================================================================
// pCalc - Arbitrary-Precision Pi Engine
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive calculator TUI
// Author:      Mike Stoffels
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/pCalc/foundation/core/log"
	"github.com/msto63/pCalc/internal/pi"
	"github.com/msto63/pCalc/internal/tui/calculator"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"ui", "interactive"},
	Short:   "Startet den interaktiven Rechner",
	Long: `Startet den interaktiven Pi-Rechner in einer Terminal-UI.

Tastenkürzel:
  ↑/↓          Verfahren wählen / Genauigkeit ±1
  ←/→          Genauigkeit ±5
  PgUp/PgDn    Genauigkeit ±10
  Enter        Auswahl bestätigen / Berechnung starten
  g / G        Zum Anfang / Ende springen
  Esc          Zurück
  Ctrl+C       Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return err
	}

	tuiCfg := calculator.DefaultConfig()
	if method, err := pi.ParseMethod(cfg.DefaultMethod); err == nil {
		tuiCfg.DefaultMethod = method
	}
	if cfg.DefaultPrecision >= 1 && cfg.DefaultPrecision <= pi.MaxPrecision {
		tuiCfg.DefaultPrecision = cfg.DefaultPrecision
	}

	store, err := openStore(cfg)
	if err != nil {
		// The calculator works without history, so only warn
		log.GetDefault().WarnWithErr("history store not available", err)
	} else if store != nil {
		tuiCfg.Store = store
		defer store.Close()
	}

	return calculator.Run(tuiCfg)
}

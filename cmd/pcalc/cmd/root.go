package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/pCalc/foundation/core/config"
	"github.com/msto63/pCalc/foundation/core/log"
	"github.com/msto63/pCalc/internal/history"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pcalc",
	Short: "pCalc - Pi mit beliebiger Genauigkeit",
	Long: `pCalc berechnet Pi mit bis zu 100 Nachkommastellen und prüft das
Ergebnis gegen eine Referenztabelle.

Verfahren:
  integration     - Numerische Integration eines Viertelkreises
  machin          - Machins Arcustangens-Formel
  ramanujan       - Ramanujans 1/Pi-Reihe
  chudnovsky      - Chudnovsky-Reihe
  gauss-legendre  - Gauss-Legendre-Iteration (AGM)
  spigot          - Rabinowitz-Wagon Spigot
  bbp             - Bailey-Borwein-Plouffe-Reihe`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// initLogging configures the default logger from config file and flags
func initLogging() {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.DefaultLevel()
	}
	if verbose {
		level = log.LevelDebug
	}

	format, err := log.ParseFormat(cfg.Log.Format)
	if err != nil {
		format = log.FormatConsole
	}

	log.SetDefault(log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Name:   "pcalc",
	}))
}

// loadConfig loads the configuration honoring the --config flag
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "./configs/config.toml"
	}
	return config.LoadOrDefault(path)
}

// openStore opens the history store if history is enabled; a nil store
// with nil error means history is switched off
func openStore(cfg *config.Config) (history.Store, error) {
	if !cfg.HistoryEnabled {
		return nil, nil
	}
	return history.NewSQLiteStore(history.SQLiteConfig{Path: cfg.HistoryPath})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

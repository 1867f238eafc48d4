package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/pCalc/foundation/core/config"
	"github.com/msto63/pCalc/foundation/core/log"
	"github.com/msto63/pCalc/internal/history"
	"github.com/msto63/pCalc/internal/pi"
)

var (
	computePrecision int
	computeNoHistory bool
	computeQuiet     bool
)

var computeCmd = &cobra.Command{
	Use:   "compute [method]",
	Short: "Berechnet Pi mit dem gewählten Verfahren",
	Long: `Berechnet Pi mit dem gewählten Verfahren und prüft jede Stelle
gegen die Referenztabelle.

Ohne Argument wird das in der Konfiguration hinterlegte Verfahren
verwendet. Die Genauigkeit reicht von 1 bis 100 Nachkommastellen.

Beispiele:
  pcalc compute chudnovsky -p 50
  pcalc compute spigot -p 100
  pcalc compute agm -p 30 --no-history`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().IntVarP(&computePrecision, "precision", "p", 0,
		"Anzahl der Nachkommastellen (default aus der Konfiguration)")
	computeCmd.Flags().BoolVar(&computeNoHistory, "no-history", false,
		"Ergebnis nicht in der Historie speichern")
	computeCmd.Flags().BoolVarP(&computeQuiet, "quiet", "q", false,
		"Nur die Ziffernfolge ausgeben")
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return err
	}

	methodName := cfg.DefaultMethod
	if len(args) > 0 {
		methodName = args[0]
	}

	method, err := pi.ParseMethod(methodName)
	if err != nil {
		printError("unbekanntes Verfahren", err)
		return err
	}

	precision := computePrecision
	if precision == 0 {
		precision = cfg.DefaultPrecision
	}

	logger := log.GetDefault()
	timer := logger.StartTimer("compute")

	started := time.Now()
	value, err := pi.Compute(method, precision)
	if err != nil {
		timer.StopWithError(err)
		printError("Berechnung fehlgeschlagen", err)
		return err
	}
	elapsed := time.Since(started)
	timer.Stop()

	digits, err := pi.Format(value, precision)
	if err != nil {
		printError("Formatierung fehlgeschlagen", err)
		return err
	}

	if computeQuiet {
		fmt.Println(digits)
		return nil
	}

	report, err := pi.Check(value, precision)
	if err != nil {
		printError("Vergleich fehlgeschlagen", err)
		return err
	}

	fmt.Printf("Verfahren:   %s\n", method.DisplayName())
	fmt.Printf("Genauigkeit: %d Nachkommastellen\n", precision)
	fmt.Printf("Dauer:       %s\n", log.FormatDuration(elapsed))
	fmt.Println()
	fmt.Println(digits)
	fmt.Println()
	for _, line := range report.Lines() {
		fmt.Println(line)
	}

	if !computeNoHistory {
		recordComputation(cfg, method, precision, elapsed, digits, report)
	}

	return nil
}

// recordComputation writes the result to the history store, best effort
func recordComputation(cfg *config.Config, method pi.Method, precision int, elapsed time.Duration, digits string, report *pi.Report) {
	store, err := openStore(cfg)
	if err != nil {
		log.GetDefault().WarnWithErr("history store not available", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = store.Record(ctx, &history.Entry{
		Method:        method.String(),
		Precision:     precision,
		ElapsedMS:     elapsed.Milliseconds(),
		Digits:        digits,
		MismatchIndex: report.MismatchIndex(),
	})
	if err != nil {
		log.GetDefault().WarnWithErr("could not record computation", err)
	}
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/pCalc/internal/history"
	"github.com/msto63/pCalc/internal/pi"
)

var (
	historyLimit  int
	historyMethod string
	historyPrune  time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Zeigt frühere Berechnungen an",
	Long: `Zeigt die gespeicherten Berechnungen an, neueste zuerst.

Mit --prune werden Einträge gelöscht, die älter als die angegebene
Dauer sind (z.B. --prune 720h).`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20,
		"Maximale Anzahl der angezeigten Einträge")
	historyCmd.Flags().StringVarP(&historyMethod, "method", "m", "",
		"Nur Einträge dieses Verfahrens anzeigen")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0,
		"Einträge löschen, die älter als die angegebene Dauer sind")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		printError("Historie konnte nicht geöffnet werden", err)
		return err
	}
	if store == nil {
		fmt.Println("Die Historie ist in der Konfiguration deaktiviert.")
		return nil
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if historyPrune > 0 {
		deleted, err := store.Prune(ctx, historyPrune)
		if err != nil {
			printError("Löschen fehlgeschlagen", err)
			return err
		}
		fmt.Printf("%d Einträge gelöscht.\n", deleted)
		return nil
	}

	filter := history.Filter{Limit: historyLimit}
	if historyMethod != "" {
		method, err := pi.ParseMethod(historyMethod)
		if err != nil {
			printError("unbekanntes Verfahren", err)
			return err
		}
		filter.Method = method.String()
	}

	entries, err := store.Query(ctx, filter)
	if err != nil {
		printError("Abfrage fehlgeschlagen", err)
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Keine Einträge vorhanden.")
		return nil
	}

	fmt.Printf("%-20s %-16s %10s %10s  %s\n", "Zeitpunkt", "Verfahren", "Stellen", "Dauer", "Ergebnis")
	for _, entry := range entries {
		result := "korrekt"
		if entry.MismatchIndex >= 0 {
			result = fmt.Sprintf("Abweichung ab Stelle %d", entry.MismatchIndex+1)
		}

		fmt.Printf("%-20s %-16s %10d %8dms  %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.Method,
			entry.Precision,
			entry.ElapsedMS,
			result,
		)
	}

	return nil
}

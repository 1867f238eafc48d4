package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/pCalc/internal/pi"
)

var methodsPrecision int

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "Listet die verfügbaren Verfahren auf",
	Long: `Listet alle Verfahren mit der für die gewählte Genauigkeit
geschätzten Anzahl an Iterationen auf.

Eine Schätzung von 0 bedeutet, dass das Verfahren selbst terminiert,
sobald die Terme unter die Arbeitsgenauigkeit fallen.`,
	RunE: runMethods,
}

func init() {
	rootCmd.AddCommand(methodsCmd)

	methodsCmd.Flags().IntVarP(&methodsPrecision, "precision", "p", 50,
		"Genauigkeit für die Iterationsschätzung")
}

func runMethods(cmd *cobra.Command, args []string) error {
	fmt.Printf("Verfahren (Genauigkeit: %d Nachkommastellen)\n", methodsPrecision)
	fmt.Println("---------------------------------------------")

	for _, method := range pi.Methods() {
		iterations := pi.IterationsFor(method, methodsPrecision)

		estimate := fmt.Sprintf("%d Iterationen", iterations)
		if iterations == 0 {
			estimate = "selbstterminierend"
		}

		fmt.Printf("  %-16s %-28s %s\n", method.String(), method.DisplayName(), estimate)
	}

	return nil
}

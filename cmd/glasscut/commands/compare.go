package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glasscut/internal/engine"
	"glasscut/internal/importer"
	"glasscut/internal/model"
)

var compareCmd = &cobra.Command{
	Use:   "compare <cutlist file>",
	Short: "Pack the same cut list under alternative settings",
	Long: `Packs the cut list under the current settings and a set of what-if
variants (other heuristics, the genetic search, rotation off) and prints
the results side by side.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromConfig()
	if err != nil {
		return err
	}

	imported := importer.Import(args[0])
	for _, w := range imported.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	for _, e := range imported.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
	if len(imported.Items) == 0 {
		return fmt.Errorf("no usable rows in %s", args[0])
	}

	pieces := model.ExpandCutList(imported.Items)
	results, err := engine.CompareScenarios(engine.DefaultScenarios(settings), pieces)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("%-24s %8s %8s %10s %9s\n", "Scenario", "Sheets", "Placed", "Unplaced", "Waste %")
	for _, r := range results {
		fmt.Printf("%-24s %8d %8d %10d %8.1f%%\n",
			r.Scenario.Name, r.SheetsUsed, r.PiecesPlaced, r.UnplacedCount, r.WastePct)
	}
	return nil
}

// Package summary prints the monthly summary of a ledger file
package summary

import (
	"fmt"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/console"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/logging"
	monthly "fjacquet/expense-tracker/internal/summary"
	"fjacquet/expense-tracker/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary FILE.csv",
	Short: "Print the monthly summary of a CSV ledger file",
	Long: `Load a CSV ledger file and print income, expenses and balance for
each month, without starting the interactive menu.`,
	Args: cobra.ExactArgs(1),
	RunE: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	path := args[0]
	root.Log.Debug("Summary command called", logging.F(logging.FieldFile, path))

	l := ledger.New()
	result, err := root.AppContainer.GetCSVStore().Load(path, l)
	if err != nil {
		return fmt.Errorf("failed to load transactions from %s: %w", path, err)
	}

	out := console.NewPrinter(cmd.OutOrStdout())
	out.Heading(tracker.SummaryTitle)
	summaries := root.AppContainer.GetSummaryEngine().Summarize(l.All())
	for _, line := range monthly.Lines(summaries) {
		out.Println(line)
	}

	root.Log.Info("Summary printed",
		logging.F(logging.FieldCount, result.Loaded),
		logging.F(logging.FieldSkipped, result.Skipped),
		logging.F(logging.FieldMonths, len(summaries)))
	return nil
}

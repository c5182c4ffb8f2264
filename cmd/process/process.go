// Package process handles the end-to-end statement pipeline command.
package process

import (
	"os"

	"github.com/spf13/cobra"

	"mwirth/statement-csv/cmd/root"
	"mwirth/statement-csv/internal/common"
	"mwirth/statement-csv/internal/extractor"
	"mwirth/statement-csv/internal/labeler"
)

// Cmd represents the process command.
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Extract and label a statement in one step",
	Long:  `Extract transactions from raw statement text and label them with spending categories in a single run.`,
	Run:   processFunc,
}

func processFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("both --input and --output are required")
	}

	formatName := root.SharedFlags.Format
	if formatName == "" {
		formatName = root.Cfg.Extraction.DefaultFormat
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.WithError(err).Fatal("failed to read input file")
	}

	table, err := root.RuleStore().LoadRules()
	if err != nil {
		root.Log.WithError(err).Fatal("failed to load rules")
	}

	transactions := extractor.ExtractTransactions(string(data), formatName)
	cls := root.Cfg.Classification
	labeled, stats := labeler.NewWithThresholds(table, root.Log, cls.AutoAssignThreshold, cls.ReviewThreshold).Label(transactions)

	if err := common.WriteLabeledToCSV(labeled, root.SharedFlags.Output); err != nil {
		root.Log.WithError(err).Fatal("failed to write output file")
	}

	stats.LogSummary(root.Log)
}

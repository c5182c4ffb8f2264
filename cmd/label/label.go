// Package label handles the transaction labeling command.
package label

import (
	"github.com/spf13/cobra"

	"mwirth/statement-csv/cmd/root"
	"mwirth/statement-csv/internal/common"
	"mwirth/statement-csv/internal/labeler"
	"mwirth/statement-csv/internal/models"
)

// Cmd represents the label command.
var Cmd = &cobra.Command{
	Use:   "label",
	Short: "Label transactions with spending categories",
	Long: `Label a CSV file of extracted transactions with spending categories.
Confident classifications are applied automatically; uncertain ones are
flagged for review with a suggested category.`,
	Run: labelFunc,
}

func labelFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("both --input and --output are required")
	}

	transactions, err := common.ReadCSVFile[models.Transaction](root.SharedFlags.Input)
	if err != nil {
		root.Log.WithError(err).Fatal("failed to read transactions")
	}

	table, err := root.RuleStore().LoadRules()
	if err != nil {
		root.Log.WithError(err).Fatal("failed to load rules")
	}

	cls := root.Cfg.Classification
	labeled, stats := labeler.NewWithThresholds(table, root.Log, cls.AutoAssignThreshold, cls.ReviewThreshold).Label(transactions)
	if err := common.WriteLabeledToCSV(labeled, root.SharedFlags.Output); err != nil {
		root.Log.WithError(err).Fatal("failed to write output file")
	}

	stats.LogSummary(root.Log)
}

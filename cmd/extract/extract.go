// Package extract handles the statement text extraction command.
package extract

import (
	"os"

	"github.com/spf13/cobra"

	"mwirth/statement-csv/cmd/root"
	"mwirth/statement-csv/internal/common"
	"mwirth/statement-csv/internal/extractor"
	"mwirth/statement-csv/internal/logging"
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract transactions from statement text",
	Long:  `Extract structured transactions from a raw bank statement text file and write them to CSV.`,
	Run:   extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
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

	transactions := extractor.ExtractTransactions(string(data), formatName)
	if err := common.WriteTransactionsToCSV(transactions, root.SharedFlags.Output); err != nil {
		root.Log.WithError(err).Fatal("failed to write output file")
	}

	root.Log.Info("extraction completed",
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "output", Value: root.SharedFlags.Output})
}

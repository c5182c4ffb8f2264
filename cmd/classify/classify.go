// Package classify handles the single-transaction classification command.
package classify

import (
	"github.com/spf13/cobra"

	"mwirth/statement-csv/cmd/root"
	"mwirth/statement-csv/internal/amountutils"
	"mwirth/statement-csv/internal/classifier"
	"mwirth/statement-csv/internal/dateutils"
	"mwirth/statement-csv/internal/logging"
	"mwirth/statement-csv/internal/models"
)

var (
	description string
	recipient   string
	amount      string
	date        string
)

// Cmd represents the classify command.
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single transaction",
	Long:  `Classify a single transaction given on the command line and print the resulting category and confidence.`,
	Run:   classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&recipient, "recipient", "r", "", "Counterparty name")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount, e.g. -54,30 or 2.500,00")
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date (optional)")
	_ = Cmd.MarkFlagRequired("recipient")
	_ = Cmd.MarkFlagRequired("amount")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	table, err := root.RuleStore().LoadRules()
	if err != nil {
		root.Log.WithError(err).Fatal("failed to load rules")
	}

	tx := models.Transaction{
		Date:        dateutils.NormalizeDate(date),
		Amount:      amountutils.NormalizeAmount(amount),
		Description: description,
		Recipient:   recipient,
	}

	cls := root.Cfg.Classification
	result := classifier.NewWithThresholds(table, root.Log, cls.AutoAssignThreshold, cls.ReviewThreshold).Classify(tx)

	root.Log.Info("classification result",
		logging.Field{Key: "category", Value: result.Category},
		logging.Field{Key: "confidence_percent", Value: result.ConfidencePercent},
		logging.Field{Key: "auto_assign", Value: result.AutoAssign},
		logging.Field{Key: "needs_review", Value: result.NeedsReview},
		logging.Field{Key: "reasons", Value: result.Reasons})
}

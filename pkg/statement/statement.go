// Package statement is the public entry point for turning raw bank
// statement text into labeled transactions. It wraps the internal
// extractor, classifier, and labeler behind a small stable surface so
// callers never import internal packages directly.
package statement

import (
	"mwirth/statement-csv/internal/classifier"
	"mwirth/statement-csv/internal/extractor"
	"mwirth/statement-csv/internal/labeler"
	"mwirth/statement-csv/internal/models"
)

// Type aliases so library callers can work with a single import.
type (
	Transaction          = models.Transaction
	LabeledTransaction   = models.LabeledTransaction
	CategoryRule         = models.CategoryRule
	ClassificationResult = models.ClassificationResult
	LabelingStats        = models.LabelingStats
)

// ExtractTransactions parses raw statement text using the named format
// and returns the transactions found in it. An unknown format name
// falls back to the generic format. Extraction never fails: blocks
// that cannot be parsed are skipped and the rest are returned.
func ExtractTransactions(rawText, formatName string) []Transaction {
	return extractor.ExtractTransactions(rawText, formatName)
}

// Classify runs the classification engine on a single transaction with
// the default rule table.
func Classify(tx Transaction) ClassificationResult {
	return classifier.Classify(tx)
}

// LabelTransactions classifies a batch of transactions with the
// default rule table and returns the labeled batch plus statistics.
func LabelTransactions(transactions []Transaction) ([]LabeledTransaction, LabelingStats) {
	return labeler.LabelTransactions(transactions)
}

// LabelTransactionsWithRules classifies a batch against a custom rule
// table, for callers that loaded an override from disk.
func LabelTransactionsWithRules(transactions []Transaction, table []CategoryRule) ([]LabeledTransaction, LabelingStats) {
	return labeler.New(table, nil).Label(transactions)
}

// Process is the end-to-end pipeline: extract transactions from raw
// statement text, then label them.
func Process(rawText, formatName string) ([]LabeledTransaction, LabelingStats) {
	return LabelTransactions(ExtractTransactions(rawText, formatName))
}

// Formats lists the names of the registered statement formats.
func Formats() []string {
	return extractor.FormatNames()
}

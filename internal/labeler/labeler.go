// Package labeler runs the classification engine over whole statement
// batches and reports how much of the batch could be labeled without a
// human in the loop.
package labeler

import (
	"mwirth/statement-csv/internal/classifier"
	"mwirth/statement-csv/internal/logging"
	"mwirth/statement-csv/internal/models"
)

var log = logging.GetLogger()

// SetLogger overrides the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Labeler classifies batches of transactions.
type Labeler struct {
	classifier *classifier.Classifier
	logger     logging.Logger
}

// New returns a Labeler over the given rule table. A nil or empty table
// uses the built-in default rules.
func New(table []models.CategoryRule, logger logging.Logger) *Labeler {
	if logger == nil {
		logger = log
	}
	return &Labeler{
		classifier: classifier.New(table, logger),
		logger:     logger,
	}
}

// NewWithThresholds returns a Labeler whose classifier uses configured
// auto-assign and review thresholds instead of the built-in values.
func NewWithThresholds(table []models.CategoryRule, logger logging.Logger, autoAssign, review float64) *Labeler {
	if logger == nil {
		logger = log
	}
	return &Labeler{
		classifier: classifier.NewWithThresholds(table, logger, autoAssign, review),
		logger:     logger,
	}
}

// LabelTransactions classifies every transaction with the default rule
// table and returns the labeled batch plus its statistics.
func LabelTransactions(transactions []models.Transaction) ([]models.LabeledTransaction, models.LabelingStats) {
	return New(nil, nil).Label(transactions)
}

// Label classifies every transaction in the batch. Output order matches
// input order. Category is only set when the classifier is confident
// enough to auto-assign; SuggestedCategory always carries the best
// guess so a reviewer never starts from scratch.
func (l *Labeler) Label(transactions []models.Transaction) ([]models.LabeledTransaction, models.LabelingStats) {
	labeled := make([]models.LabeledTransaction, 0, len(transactions))
	stats := models.LabelingStats{Total: len(transactions)}
	seen := make(map[string]struct{})

	for _, tx := range transactions {
		result := l.classifier.Classify(tx)

		entry := models.LabeledTransaction{
			Transaction:       tx,
			SuggestedCategory: result.Category,
			Confidence:        result.Confidence,
			NeedsReview:       result.NeedsReview,
			AutoLabeled:       result.AutoAssign,
		}
		if result.AutoAssign {
			entry.Category = result.Category
			stats.AutoAssigned++
		}
		if result.NeedsReview {
			stats.NeedsReview++
		}
		if _, ok := seen[result.Category]; !ok {
			seen[result.Category] = struct{}{}
			stats.Categories = append(stats.Categories, result.Category)
		}
		labeled = append(labeled, entry)
	}

	if stats.Total > 0 {
		stats.AutoAssignedPercent = float64(stats.AutoAssigned) / float64(stats.Total) * 100
		stats.NeedsReviewPercent = float64(stats.NeedsReview) / float64(stats.Total) * 100
	}

	l.logger.WithFields(
		logging.Field{Key: "total", Value: stats.Total},
		logging.Field{Key: "auto_assigned", Value: stats.AutoAssigned},
		logging.Field{Key: "needs_review", Value: stats.NeedsReview},
	).Info("labeled transaction batch")
	return labeled, stats
}

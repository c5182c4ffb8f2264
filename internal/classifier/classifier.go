// Package classifier assigns spending categories to transactions by
// scoring them against an ordered rule table and then refining the
// result with amount and direction heuristics. Classification never
// fails: a transaction that matches nothing comes back as "Other" with
// zero confidence.
package classifier

import (
	"math"
	"strings"

	"mwirth/statement-csv/internal/logging"
	"mwirth/statement-csv/internal/models"
	"mwirth/statement-csv/internal/rules"
)

var log = logging.GetLogger()

// SetLogger overrides the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Classifier scores transactions against a fixed rule table.
type Classifier struct {
	table               []models.CategoryRule
	adjustments         []adjustment
	autoAssignThreshold float64
	reviewThreshold     float64
	logger              logging.Logger
}

// New returns a Classifier over the given rule table with the built-in
// decision thresholds. A nil or empty table falls back to the built-in
// default rules.
func New(table []models.CategoryRule, logger logging.Logger) *Classifier {
	return NewWithThresholds(table, logger, models.AutoAssignThreshold, models.ReviewThreshold)
}

// NewWithThresholds returns a Classifier with configured auto-assign and
// review thresholds. Non-positive thresholds fall back to the built-in
// values.
func NewWithThresholds(table []models.CategoryRule, logger logging.Logger, autoAssign, review float64) *Classifier {
	if len(table) == 0 {
		table = rules.Default()
	}
	if logger == nil {
		logger = log
	}
	if autoAssign <= 0 {
		autoAssign = models.AutoAssignThreshold
	}
	if review <= 0 {
		review = models.ReviewThreshold
	}
	return &Classifier{
		table:               table,
		adjustments:         defaultAdjustments(),
		autoAssignThreshold: autoAssign,
		reviewThreshold:     review,
		logger:              logger,
	}
}

// Classify is a convenience wrapper over a Classifier with the default
// rule table.
func Classify(tx models.Transaction) models.ClassificationResult {
	return New(nil, nil).Classify(tx)
}

// Classify scores the transaction against every rule, applies the
// amount and direction adjustments in order, and derives the final
// decision. The same input always yields the same result.
func (c *Classifier) Classify(tx models.Transaction) models.ClassificationResult {
	result := c.scorePatterns(tx)
	for _, adjust := range c.adjustments {
		result = adjust(tx, result)
	}
	result.ConfidencePercent = int(math.Round(result.Confidence * 100))
	result.AutoAssign = result.Confidence > c.autoAssignThreshold
	result.NeedsReview = result.Confidence < c.reviewThreshold

	c.logger.WithFields(
		logging.Field{Key: "category", Value: result.Category},
		logging.Field{Key: "confidence", Value: result.ConfidencePercent},
		logging.Field{Key: "auto_assign", Value: result.AutoAssign},
	).Debug("classified transaction")
	return result
}

// scorePatterns finds the best-scoring rule for the transaction. Each
// rule scores its base confidence weighted by the fraction of its
// patterns found in the search text. Ties keep the earlier rule, so
// table order is the priority order.
func (c *Classifier) scorePatterns(tx models.Transaction) models.ClassificationResult {
	text := tx.SearchText()
	best := models.ClassificationResult{Category: models.CategoryOther}

	for _, rule := range c.table {
		var matched []string
		for _, pattern := range rule.Patterns {
			if pattern == "" {
				continue
			}
			if strings.Contains(text, strings.ToLower(pattern)) {
				matched = append(matched, pattern)
			}
		}
		if len(matched) == 0 {
			continue
		}
		score := rule.BaseConfidence * float64(len(matched)) / float64(len(rule.Patterns))
		if score > best.Confidence {
			best.Category = rule.Category
			best.Confidence = score
			best.Reasons = matched
		}
	}
	return best
}

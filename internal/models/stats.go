package models

import (
	"mwirth/statement-csv/internal/logging"
)

// LabelingStats is an aggregate view over a labeled batch. Computed on
// demand, never persisted.
type LabelingStats struct {
	Total               int      `yaml:"total"`
	AutoAssigned        int      `yaml:"auto_assigned"`
	NeedsReview         int      `yaml:"needs_review"`
	AutoAssignedPercent float64  `yaml:"auto_assigned_percent"`
	NeedsReviewPercent  float64  `yaml:"needs_review_percent"`
	Categories          []string `yaml:"categories"` // distinct suggested categories, first-appearance order
}

// LogSummary logs a one-line summary of a labeling run.
func (s LabelingStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	logger.Info("Labeling summary",
		logging.Field{Key: "total", Value: s.Total},
		logging.Field{Key: "auto_assigned", Value: s.AutoAssigned},
		logging.Field{Key: "auto_assigned_percent", Value: s.AutoAssignedPercent},
		logging.Field{Key: "needs_review", Value: s.NeedsReview},
		logging.Field{Key: "needs_review_percent", Value: s.NeedsReviewPercent},
		logging.Field{Key: "categories", Value: len(s.Categories)},
	)
}

package models

// CategoryRule maps a set of text patterns to a spending category with a
// base confidence. Rules are immutable and loaded once at startup; the
// position of a rule in the table is its priority, used only to break ties
// between equal scores.
type CategoryRule struct {
	Category       string   `yaml:"category"`
	Patterns       []string `yaml:"patterns"`
	BaseConfidence float64  `yaml:"base_confidence"` // in (0,1]
}

// ClassificationResult is the outcome of classifying one transaction.
// It is derived data, merged onto the transaction to produce a
// LabeledTransaction, never stored on its own.
type ClassificationResult struct {
	Category          string
	Confidence        float64 // in [0,1]
	ConfidencePercent int     // round(Confidence * 100)
	AutoAssign        bool    // confident enough to set the category without confirmation
	NeedsReview       bool    // below the reliability threshold, flag for manual correction
	Reasons           []string
}

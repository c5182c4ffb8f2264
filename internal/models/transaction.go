// Package models provides the data structures shared by the statement
// extractor, the classification engine, and the labeling pipeline.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a normalized bank-statement transaction, the canonical
// unit passed between subsystems. Date and Amount are always present and
// well-formed once a transaction leaves the extractor; unparseable source
// text is defaulted there, never propagated.
type Transaction struct {
	Date          string          `csv:"Date" yaml:"date"`                    // ISO-8601 calendar date (YYYY-MM-DD)
	Amount        decimal.Decimal `csv:"Amount" yaml:"amount"`                // signed, cent precision; negative = debit
	Description   string          `csv:"Description" yaml:"description"`      // free-text purpose line
	Recipient     string          `csv:"Recipient" yaml:"recipient"`          // counterparty name, best-effort
	SourceAccount string          `csv:"SourceAccount" yaml:"source_account"` // originating bank/format identifier
}

// IsDebit returns true if the transaction is outgoing money.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if the transaction is incoming money.
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// SearchText returns the lowercased description+recipient text the
// classification engine matches rule patterns against.
func (t Transaction) SearchText() string {
	return strings.ToLower(strings.TrimSpace(t.Description + " " + t.Recipient))
}

// LabeledTransaction is a Transaction merged with its classification
// outcome. Category is populated only when the classification was confident
// enough to auto-assign; otherwise it stays empty pending manual review.
type LabeledTransaction struct {
	Transaction
	Category          string  `csv:"Category" yaml:"category"`
	SuggestedCategory string  `csv:"SuggestedCategory" yaml:"suggested_category"`
	Confidence        float64 `csv:"Confidence" yaml:"confidence"`
	NeedsReview       bool    `csv:"NeedsReview" yaml:"needs_review"`
	AutoLabeled       bool    `csv:"AutoLabeled" yaml:"auto_labeled"`
}

// Package amountutils provides the amount normalization used throughout
// the application.
package amountutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyMarkerPattern strips currency markers and whitespace. EUR and its
// symbol are what German bank exports carry; stray codes from OCR noise are
// covered by the generic three-letter form.
var currencyMarkerPattern = regexp.MustCompile(`(?i)(EUR|€|\s)`)

// NormalizeAmount turns a locale-formatted amount string into a signed
// decimal with cent semantics. The sign of the result is the authoritative
// debit/credit indicator downstream.
//
// Separator handling: when both '.' and ',' appear, '.' is a thousands
// separator and ',' the decimal point; a lone ',' is the decimal point.
// An explicit leading '-' forces a negative result. Unparseable input
// yields zero, never an error.
func NormalizeAmount(amountStr string) decimal.Decimal {
	cleaned := currencyMarkerPattern.ReplaceAllString(amountStr, "")
	if cleaned == "" {
		return decimal.Zero
	}

	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "+")

	cleaned = standardizeSeparators(cleaned)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	if negative {
		amount = amount.Abs().Neg()
	}
	return amount
}

// standardizeSeparators converts European separator conventions to the
// canonical form decimal.NewFromString accepts.
func standardizeSeparators(amountStr string) string {
	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		// European format: 2.500,00 -> 2500.00
		amountStr = strings.ReplaceAll(amountStr, ".", "")
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	} else if strings.Contains(amountStr, ",") {
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}
	return amountStr
}

// FormatAmount formats a decimal amount with two decimal places and the
// EUR currency marker, the display form used in reports.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " EUR"
}

// IsLargeAmount reports whether the absolute amount exceeds the given
// threshold.
func IsLargeAmount(amount decimal.Decimal, threshold int64) bool {
	return amount.Abs().GreaterThan(decimal.NewFromInt(threshold))
}

// IsSmallAmount reports whether the absolute amount is strictly below
// the given threshold.
func IsSmallAmount(amount decimal.Decimal, threshold int64) bool {
	return amount.Abs().LessThan(decimal.NewFromInt(threshold))
}

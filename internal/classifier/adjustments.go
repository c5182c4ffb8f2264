package classifier

import (
	"mwirth/statement-csv/internal/amountutils"
	"mwirth/statement-csv/internal/models"
)

// Amount boundaries used by the heuristic adjustments. Values are
// strictly compared: 500.00 exactly is not "large", 5.00 exactly is
// not "small".
const (
	largeAmountThreshold = 500
	smallAmountThreshold = 5
)

// adjustment refines a pattern-scoring result with knowledge about the
// transaction's amount or direction. Adjustments are pure functions and
// run in a fixed order, each seeing the previous one's output.
type adjustment func(tx models.Transaction, result models.ClassificationResult) models.ClassificationResult

func defaultAdjustments() []adjustment {
	return []adjustment{
		adjustLargeCredit,
		adjustLargeUnknownDebit,
		adjustSmallUnknownDebit,
		adjustDirectionMismatch,
	}
}

// adjustLargeCredit treats any incoming amount above the large
// threshold as income. A pattern match that is already more confident
// keeps its confidence.
func adjustLargeCredit(tx models.Transaction, result models.ClassificationResult) models.ClassificationResult {
	if !tx.IsCredit() || !amountutils.IsLargeAmount(tx.Amount, largeAmountThreshold) {
		return result
	}
	result.Category = models.CategoryIncome
	if result.Confidence < 0.7 {
		result.Confidence = 0.7
	}
	return result
}

// adjustLargeUnknownDebit guesses that a large unmatched debit is a
// recurring housing or utility payment.
func adjustLargeUnknownDebit(tx models.Transaction, result models.ClassificationResult) models.ClassificationResult {
	if result.Category != models.CategoryOther || !tx.IsDebit() || !amountutils.IsLargeAmount(tx.Amount, largeAmountThreshold) {
		return result
	}
	result.Category = models.CategoryHousing
	result.Confidence = 0.6
	return result
}

// adjustSmallUnknownDebit guesses that a tiny unmatched debit is a
// bank fee.
func adjustSmallUnknownDebit(tx models.Transaction, result models.ClassificationResult) models.ClassificationResult {
	if result.Category != models.CategoryOther || !tx.IsDebit() || !amountutils.IsSmallAmount(tx.Amount, smallAmountThreshold) {
		return result
	}
	result.Category = models.CategoryBankFees
	result.Confidence = 0.5
	return result
}

// expenseOnlyCategories are categories that only make sense for money
// leaving the account. A credit landing in one of them is almost
// certainly a refund or a mismatch, so its confidence is cut hard.
var expenseOnlyCategories = map[string]struct{}{
	models.CategoryShopping:  {},
	models.CategoryGroceries: {},
	models.CategoryTransport: {},
}

func adjustDirectionMismatch(tx models.Transaction, result models.ClassificationResult) models.ClassificationResult {
	if !tx.IsCredit() {
		return result
	}
	if _, ok := expenseOnlyCategories[result.Category]; !ok {
		return result
	}
	result.Confidence *= 0.3
	return result
}

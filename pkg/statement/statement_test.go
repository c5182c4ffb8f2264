package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwirth/statement-csv/internal/models"
)

const sampleStatement = `Kontoauszug Januar 2025

05.01.2025 Ueberweisung
Von EMPLOYER AG
Gehalt Januar 2025
2.500,00 EUR

07.01.2025 Lastschrift
An REWE Markt GmbH
Kartenzahlung vom 06.01.
-54,30 EUR
`

func TestProcessEndToEnd(t *testing.T) {
	labeled, stats := Process(sampleStatement, "generic")
	require.Len(t, labeled, 2)

	salary := labeled[0]
	assert.Equal(t, "2025-01-05", salary.Date)
	assert.Equal(t, "EMPLOYER AG", salary.Recipient)
	assert.Equal(t, models.CategoryIncome, salary.SuggestedCategory)

	groceries := labeled[1]
	assert.Equal(t, "REWE Markt GmbH", groceries.Recipient)
	assert.Equal(t, models.CategoryGroceries, groceries.SuggestedCategory)
	assert.True(t, groceries.IsDebit())

	assert.Equal(t, 2, stats.Total)
}

func TestExtractThenLabel(t *testing.T) {
	transactions := ExtractTransactions(sampleStatement, "generic")
	require.Len(t, transactions, 2)

	labeled, stats := LabelTransactions(transactions)
	assert.Len(t, labeled, 2)
	assert.Equal(t, 2, stats.Total)
}

func TestLabelTransactionsWithRules(t *testing.T) {
	table := []CategoryRule{
		{Category: "Payroll", Patterns: []string{"gehalt"}, BaseConfidence: 0.9},
	}
	labeled, _ := LabelTransactionsWithRules(ExtractTransactions(sampleStatement, "generic"), table)
	require.Len(t, labeled, 2)
	// The large-credit heuristic still reroutes salary-sized credits to
	// the income category.
	assert.Equal(t, models.CategoryIncome, labeled[0].SuggestedCategory)
}

func TestClassifySingleTransaction(t *testing.T) {
	transactions := ExtractTransactions(sampleStatement, "generic")
	require.NotEmpty(t, transactions)

	result := Classify(transactions[0])
	assert.Equal(t, models.CategoryIncome, result.Category)
	assert.NotEmpty(t, result.Reasons)
}

func TestFormatsListsBuiltins(t *testing.T) {
	names := Formats()
	assert.Contains(t, names, "generic")
	assert.Contains(t, names, "sparkasse")
	assert.Contains(t, names, "volksbank")
}

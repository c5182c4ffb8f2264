package amountutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"German thousands and decimal", "2.500,00", "2500"},
		{"Comma decimal only", "42,50", "42.5"},
		{"Plain decimal point", "42.50", "42.5"},
		{"Negative German amount", "-1.234,56", "-1234.56"},
		{"Explicit plus sign", "+2.500,00 EUR", "2500"},
		{"Currency code stripped", "19,99 EUR", "19.99"},
		{"Euro sign stripped", "19,99 €", "19.99"},
		{"Internal whitespace", " 1 234,56 ", "1234.56"},
		{"Multiple thousands groups", "1.234.567,89", "1234567.89"},
		{"Integer only", "100", "100"},
		{"Empty string defaults to zero", "", "0"},
		{"Garbage defaults to zero", "abc", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAmount(tc.input)
			assert.Equal(t, tc.expected, got.String())
		})
	}
}

func TestNormalizeAmountPreservesSign(t *testing.T) {
	assert.True(t, NormalizeAmount("-89,00 EUR").IsNegative())
	assert.True(t, NormalizeAmount("+89,00 EUR").IsPositive())
	assert.True(t, NormalizeAmount("89,00 EUR").IsPositive())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2500.00 EUR", FormatAmount(decimal.NewFromInt(2500)))
	assert.Equal(t, "-42.50 EUR", FormatAmount(decimal.NewFromFloat(-42.5)))
}

func TestIsLargeAmount(t *testing.T) {
	assert.True(t, IsLargeAmount(decimal.NewFromFloat(500.01), 500))
	assert.True(t, IsLargeAmount(decimal.NewFromFloat(-500.01), 500))
	assert.False(t, IsLargeAmount(decimal.NewFromInt(500), 500))
	assert.False(t, IsLargeAmount(decimal.NewFromInt(499), 500))
}

func TestIsSmallAmount(t *testing.T) {
	assert.True(t, IsSmallAmount(decimal.NewFromFloat(4.99), 5))
	assert.True(t, IsSmallAmount(decimal.NewFromFloat(-4.99), 5))
	assert.False(t, IsSmallAmount(decimal.NewFromInt(5), 5))
	assert.False(t, IsSmallAmount(decimal.NewFromInt(-5), 5))
}

package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `Kontoauszug Januar 2025
Girokonto DE89 3704 0044 0532 0130 00

05.01.2025 Ueberweisung
Von EMPLOYER AG
Gehalt Januar 2025
2.500,00 EUR

07.01.2025 Lastschrift
An REWE Markt GmbH
Kartenzahlung vom 06.01.
-54,30 EUR

15.01.2025 Dauerauftrag
An Vermieter Schmidt
Miete Januar
-890,00 EUR
`

func TestExtractSampleStatement(t *testing.T) {
	transactions := ExtractTransactions(sampleStatement, "generic")
	require.Len(t, transactions, 3)

	first := transactions[0]
	assert.Equal(t, "2025-01-05", first.Date)
	assert.Equal(t, "2500", first.Amount.String())
	assert.Equal(t, "EMPLOYER AG", first.Recipient)
	assert.Equal(t, "Gehalt Januar 2025", first.Description)
	assert.Equal(t, "generic", first.SourceAccount)

	second := transactions[1]
	assert.Equal(t, "2025-01-07", second.Date)
	assert.Equal(t, "-54.3", second.Amount.String())
	assert.Equal(t, "REWE Markt GmbH", second.Recipient)
	assert.True(t, second.IsDebit())

	third := transactions[2]
	assert.Equal(t, "Vermieter Schmidt", third.Recipient)
	assert.Equal(t, "Miete Januar", third.Description)
	assert.Equal(t, "-890", third.Amount.String())
}

func TestExtractPreservesStatementOrder(t *testing.T) {
	transactions := ExtractTransactions(sampleStatement, "generic")
	require.Len(t, transactions, 3)
	assert.Equal(t, "2025-01-05", transactions[0].Date)
	assert.Equal(t, "2025-01-07", transactions[1].Date)
	assert.Equal(t, "2025-01-15", transactions[2].Date)
}

func TestExtractUnknownFormatFallsBack(t *testing.T) {
	transactions := ExtractTransactions(sampleStatement, "no-such-bank")
	assert.Len(t, transactions, 3)
}

func TestExtractNoBoundaries(t *testing.T) {
	transactions := ExtractTransactions("just some header text\nwith no transactions", "generic")
	assert.Empty(t, transactions)
}

func TestExtractDropsIncompleteBlocks(t *testing.T) {
	// Second block has no amount token and must be dropped.
	text := `05.01.2025 Ueberweisung
Von EMPLOYER AG
Gehalt Januar 2025
2.500,00 EUR

07.01.2025 Lastschrift
An REWE Markt GmbH
Kartenzahlung ohne Betrag
`
	transactions := ExtractTransactions(text, "generic")
	require.Len(t, transactions, 1)
	assert.Equal(t, "EMPLOYER AG", transactions[0].Recipient)
}

func TestExtractDropsShortBlocks(t *testing.T) {
	// The trailing boundary fragment is below the minimum block length.
	text := `05.01.2025 Ueberweisung
Von EMPLOYER AG
Gehalt Januar 2025
2.500,00 EUR

09.01.2025 Entgelt`
	transactions := ExtractTransactions(text, "generic")
	assert.Len(t, transactions, 1)
}

func TestExtractTwoLineBlock(t *testing.T) {
	// With only two remaining lines the recipient doubles as first line
	// source and the description comes from the second.
	text := `05.01.2025 Gutschrift
ACME GmbH
120,00 EUR
`
	transactions := ExtractTransactions(text, "generic")
	require.Len(t, transactions, 1)
	assert.Equal(t, "ACME GmbH", transactions[0].Recipient)
}

func TestExtractSparkasseFormat(t *testing.T) {
	text := `01.02.2025 KARTENZAHLUNG
EDEKA FIL. 2241
Lebensmittel
-23,45 EUR

03.02.2025 LOHN GEHALT
EMPLOYER AG
Februar
2.600,00 EUR
`
	transactions := ExtractTransactions(text, "sparkasse")
	require.Len(t, transactions, 2)
	assert.Equal(t, "sparkasse", transactions[0].SourceAccount)
	assert.Equal(t, "EDEKA FIL. 2241", transactions[0].Recipient)
	assert.Equal(t, "EMPLOYER AG", transactions[1].Recipient)
}

func TestExtractWithClockFallback(t *testing.T) {
	format, err := NewFormat(FormatConfig{
		Name:        "undated",
		Boundary:    `(?m)^TXN`,
		DatePattern: `\d{2}/\d{2}/\d{4}`,
	})
	require.NoError(t, err)
	Register(format)

	fixed := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	e := NewWithClock(nil, func() time.Time { return fixed })

	text := `TXN 01/15/2025
An ACME GmbH
Rechnung 4711
-42,00 EUR
`
	transactions := e.Extract(text, "undated")
	require.Len(t, transactions, 1)
	// The US-style token is found but carries no German pattern, so the
	// normalizer falls back to the injected clock.
	assert.Equal(t, "2025-06-01", transactions[0].Date)
	assert.Equal(t, "ACME GmbH", transactions[0].Recipient)
}

func TestTrailingAmountTokenWins(t *testing.T) {
	// An amount-shaped string inside the purpose line must not win over
	// the trailing amount token.
	text := `05.01.2025 Lastschrift
An Stadtwerke
Abschlag 120,00 laut Vertrag
-130,00 EUR
`
	transactions := ExtractTransactions(text, "generic")
	require.Len(t, transactions, 1)
	assert.Equal(t, "-130", transactions[0].Amount.String())
}

func TestAmountRemovalKeepsIdenticalPurposeText(t *testing.T) {
	// The purpose line repeats the exact amount text. Only the trailing
	// token may be cut from the block; the purpose line stays intact.
	text := `05.01.2025 Gutschrift
Von ACME GmbH
Erstattung 25,00 EUR
25,00 EUR
`
	transactions := ExtractTransactions(text, "generic")
	require.Len(t, transactions, 1)
	assert.Equal(t, "25", transactions[0].Amount.String())
	assert.Equal(t, "Erstattung 25,00 EUR", transactions[0].Description)
}

func TestExtractAmountWithoutThousandsSeparator(t *testing.T) {
	// Not every export groups thousands with dots; the full digit run
	// must be captured, not just its last three digits.
	text := `05.01.2025 Ueberweisung
An Autohaus Meyer
Rechnung 4711
-1234,56 EUR
`
	transactions := ExtractTransactions(text, "generic")
	require.Len(t, transactions, 1)
	assert.Equal(t, "-1234.56", transactions[0].Amount.String())
}

func TestStripRecipientPrefix(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Von EMPLOYER AG", "EMPLOYER AG"},
		{"An REWE Markt GmbH", "REWE Markt GmbH"},
		{"ACME GmbH", "ACME GmbH"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, stripRecipientPrefix(tc.in, defaultRecipientPrefixes))
	}
}

func TestFormatRegistry(t *testing.T) {
	names := FormatNames()
	assert.Contains(t, names, "generic")
	assert.Contains(t, names, "sparkasse")
	assert.Contains(t, names, "volksbank")

	_, ok := Lookup("SPARKASSE")
	assert.True(t, ok, "lookup should be case-insensitive")

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestNewFormatValidation(t *testing.T) {
	_, err := NewFormat(FormatConfig{Boundary: `abc`})
	assert.Error(t, err)

	_, err = NewFormat(FormatConfig{Name: "broken", Boundary: `([`})
	assert.Error(t, err)

	format, err := NewFormat(FormatConfig{Name: "minimal", Boundary: `(?m)^X`})
	require.NoError(t, err)
	assert.Equal(t, defaultDatePattern, format.DatePattern)
	assert.Equal(t, defaultAmountPattern, format.AmountPattern)
}

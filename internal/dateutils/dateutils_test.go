package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateAt(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Standard German date", "05.01.2025", "2025-01-05"},
		{"Single-digit day and month", "5.1.2025", "2025-01-05"},
		{"Date embedded in text", "Buchung vom 17.03.2024 Lastschrift", "2024-03-17"},
		{"Surrounding whitespace", "  24.12.2023  ", "2023-12-24"},
		{"End of year", "31.12.2024", "2024-12-31"},
		{"Empty string falls back to now", "", "2025-03-10"},
		{"Garbage falls back to now", "not a date", "2025-03-10"},
		{"ISO input is not recognized", "2025-01-05", "2025-03-10"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeDateAt(tc.input, now))
		})
	}
}

func TestNormalizeDateUsesCurrentDateAsFallback(t *testing.T) {
	today := time.Now().Format(DateLayoutISO)
	assert.Equal(t, today, NormalizeDate("no date here"))
}

func TestParseISODate(t *testing.T) {
	date, err := ParseISODate("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 5, date.Day())

	_, err = ParseISODate("05.01.2025")
	assert.Error(t, err)
}

func TestFormatRoundTrip(t *testing.T) {
	date := time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-07-03", ToISODate(date))
	assert.Equal(t, "03.07.2024", ToEuropeanFormat(date))
	assert.Equal(t, "", ToEuropeanFormat(time.Time{}))
}

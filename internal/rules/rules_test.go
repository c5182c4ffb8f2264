package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwirth/statement-csv/internal/models"
)

func TestDefaultTableIsValid(t *testing.T) {
	table := Default()
	require.NotEmpty(t, table)
	assert.NoError(t, Validate(table))
}

func TestDefaultTablePrioritizesIncome(t *testing.T) {
	table := Default()
	assert.Equal(t, models.CategoryIncome, table[0].Category)
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	first := Default()
	first[0].Category = "mutated"
	assert.Equal(t, models.CategoryIncome, Default()[0].Category)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   []models.CategoryRule
		wantErr bool
	}{
		{
			"valid single rule",
			[]models.CategoryRule{{Category: "A", Patterns: []string{"x"}, BaseConfidence: 0.5}},
			false,
		},
		{
			"missing category",
			[]models.CategoryRule{{Patterns: []string{"x"}, BaseConfidence: 0.5}},
			true,
		},
		{
			"no patterns",
			[]models.CategoryRule{{Category: "A", BaseConfidence: 0.5}},
			true,
		},
		{
			"zero confidence",
			[]models.CategoryRule{{Category: "A", Patterns: []string{"x"}}},
			true,
		},
		{
			"confidence above one",
			[]models.CategoryRule{{Category: "A", Patterns: []string{"x"}, BaseConfidence: 1.5}},
			true,
		},
		{
			"confidence of exactly one",
			[]models.CategoryRule{{Category: "A", Patterns: []string{"x"}, BaseConfidence: 1.0}},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.table)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

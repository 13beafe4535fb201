package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_RateFor(t *testing.T) {
	table := Default()

	tests := []struct {
		category string
		expected float64
	}{
		{category: "Food", expected: 0.05},
		{category: "Medication", expected: 0.00},
		{category: "Cleaning", expected: 0.13},
		{category: "Other", expected: 0.13},
		{category: "Pets", expected: DefaultRate},
		{category: "food", expected: DefaultRate},
		{category: "", expected: DefaultRate},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.InDelta(t, tt.expected, table.RateFor(tt.category), 1e-12)
		})
	}
}

func TestNew_CopiesRates(t *testing.T) {
	rates := map[string]float64{"Books": 0.0}
	table := New(rates, 0.2)

	rates["Books"] = 0.5
	rates["Toys"] = 0.1

	assert.Equal(t, 0.0, table.RateFor("Books"))
	assert.Equal(t, 0.2, table.RateFor("Toys"))
	assert.False(t, table.Has("Toys"))
	assert.True(t, table.Has("Books"))
	assert.Equal(t, 0.2, table.DefaultRate())
}

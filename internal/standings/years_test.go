package standings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/seasonrank/internal/standings"
)

func TestDistinctYearsDesc(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"empty", nil, []int{}},
		{"single", []int{2021}, []int{2021}},
		{"duplicates", []int{2023, 2022, 2023, 2024, 2022}, []int{2024, 2023, 2022}},
		{"already sorted", []int{2025, 2020}, []int{2025, 2020}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := standings.DistinctYearsDesc(tt.input)
			assert.Equal(t, tt.expected, got)
			for i := 1; i < len(got); i++ {
				assert.Greater(t, got[i-1], got[i])
			}
		})
	}
}

func TestDistinctYearsDesc_DoesNotMutateInput(t *testing.T) {
	input := []int{2022, 2024, 2022}
	standings.DistinctYearsDesc(input)
	assert.Equal(t, []int{2022, 2024, 2022}, input)
}

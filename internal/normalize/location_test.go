package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"au-jobs-scraper/internal/gazetteer"
	"au-jobs-scraper/internal/models"
)

func TestNormalizeLocations(t *testing.T) {
	n := NewLocationNormalizer(gazetteer.Default())

	tests := []struct {
		name  string
		input []string
		want  []models.Location
	}{
		{
			name:  "known city",
			input: []string{"Sydney"},
			want:  []models.Location{{City: "Sydney", State: "NSW"}},
		},
		{
			name:  "suburb collapses onto main city",
			input: []string{"Fortitude Valley, Brisbane QLD"},
			want:  []models.Location{{City: "Brisbane", State: "QLD"}},
		},
		{
			name:  "city with trailing state abbreviation",
			input: []string{"Perth WA"},
			want:  []models.Location{{City: "Perth", State: "WA"}},
		},
		{
			name:  "state name alone is dropped",
			input: []string{"New South Wales"},
			want:  nil,
		},
		{
			name:  "regional descriptor is dropped",
			input: []string{"CBD and Inner Suburbs"},
			want:  nil,
		},
		{
			name:  "greater area descriptor is dropped",
			input: []string{"Greater Melbourne"},
			want:  nil,
		},
		{
			name:  "country sentinel survives and dedupes",
			input: []string{"Australia", "AU"},
			want:  []models.Location{{City: "Australia", State: ""}},
		},
		{
			name:  "city with country suffix",
			input: []string{"Melbourne, Australia"},
			want:  []models.Location{{City: "Melbourne", State: "VIC"}},
		},
		{
			name:  "unknown city with known state is skipped",
			input: []string{"Springfield West QLD"},
			want:  nil,
		},
		{
			name:  "unrecognized entry is skipped",
			input: []string{"Remote"},
			want:  nil,
		},
		{
			name:  "case-insensitive dedup",
			input: []string{"Melbourne", "melbourne", "MELBOURNE VIC"},
			want:  []models.Location{{City: "Melbourne", State: "VIC"}},
		},
		{
			name:  "mixed list keeps order",
			input: []string{"Sydney", "Victoria", "Canberra ACT"},
			want: []models.Location{
				{City: "Sydney", State: "NSW"},
				{City: "Canberra", State: "ACT"},
			},
		},
		{
			name:  "empty and blank entries",
			input: []string{"", "   "},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeLocationsNeverEmitsEmptyCity(t *testing.T) {
	n := NewLocationNormalizer(gazetteer.Default())

	inputs := []string{"QLD", "NSW", "Somewhere NSW", "Metro Area", ","}
	for _, loc := range n.Normalize(inputs) {
		assert.NotEmpty(t, loc.City, "input %v produced empty city", inputs)
	}
}

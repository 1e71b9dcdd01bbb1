package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
)

func defaultCatalog(t *testing.T) *criteria.Catalog {
	t.Helper()
	cat, err := criteria.Default()
	require.NoError(t, err)
	return cat
}

func TestAggregateWorkedExample(t *testing.T) {
	cat := defaultCatalog(t)
	raw := domain.RawScores{0: 8, 1: 6, 2: 7, 3: 9, 4: 5, 5: 10}

	got := Aggregate(raw, cat)

	// S is exactly 77.5 before rounding.
	assert.Equal(t, domain.DimensionResult{E: 72, S: 78, G: 83, Total: 78}, got)
}

func TestAggregateUniformRatingCancelsWeights(t *testing.T) {
	cat := defaultCatalog(t)
	for r := 1; r <= 10; r++ {
		raw := domain.RawScores{}
		for i := 0; i < cat.Len(); i++ {
			raw[i] = float64(r)
		}
		got := Aggregate(raw, cat)
		want := r * 10
		assert.Equal(t, domain.DimensionResult{E: want, S: want, G: want, Total: want}, got, "rating %d", r)
	}

	// Decimal ratings too.
	raw := domain.RawScores{0: 7.5, 1: 7.5}
	assert.Equal(t, 75, Aggregate(raw, cat).E)
}

func TestAggregateUnratedCriteriaAreExcluded(t *testing.T) {
	cat := defaultCatalog(t)

	tests := []struct {
		name string
		raw  domain.RawScores
		want domain.DimensionResult
	}{
		{
			name: "nothing rated",
			raw:  domain.RawScores{},
			want: domain.DimensionResult{},
		},
		{
			name: "one criterion per dimension",
			raw:  domain.RawScores{0: 8, 3: 4, 5: 6},
			want: domain.DimensionResult{E: 80, S: 40, G: 60, Total: 60},
		},
		{
			name: "zero means not rated",
			raw:  domain.RawScores{0: 10, 1: 0},
			want: domain.DimensionResult{E: 100, Total: 33},
		},
		{
			name: "negative means not rated",
			raw:  domain.RawScores{4: -3, 5: 9},
			want: domain.DimensionResult{G: 90, Total: 30},
		},
		{
			name: "indices outside the catalog are ignored",
			raw:  domain.RawScores{2: 5, 99: 10},
			want: domain.DimensionResult{S: 50, Total: 17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.raw, cat))
		})
	}
}

func TestAggregateRoundsDimensionsBeforeTotal(t *testing.T) {
	cat := defaultCatalog(t)
	// E = 75.5, S = 60.5, G = 51 before rounding.
	raw := domain.RawScores{0: 7.55, 2: 6.05, 4: 5.1}
	got := Aggregate(raw, cat)
	require.Equal(t, 76, got.E)
	require.Equal(t, 61, got.S)
	require.Equal(t, 51, got.G)
	// Mean of rounded values is 62.67; the unrounded mean would give 62.
	assert.Equal(t, 63, got.Total)
}

func TestRated(t *testing.T) {
	assert.True(t, Rated(1))
	assert.True(t, Rated(0.5))
	assert.False(t, Rated(0))
	assert.False(t, Rated(-1))
}

func TestRoundResult(t *testing.T) {
	assert.Equal(t, domain.DimensionResult{E: 73, S: 78, G: 0, Total: 50}, RoundResult(72.5, 77.6, 0.2, 49.5))
}

func TestParseRawScoresCoercesValues(t *testing.T) {
	var in map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"0": 8, "1": "6.5", "2": "abc", "3": null, "4": true, "x": 9, "-1": 4}`), &in))

	got := ParseRawScores(in)

	assert.Equal(t, domain.RawScores{0: 8, 1: 6.5, 2: 0, 3: 0, 4: 0}, got)
}

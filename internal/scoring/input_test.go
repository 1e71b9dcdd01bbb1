package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"esgtracker/internal/domain"
)

func TestParseRawScoresDropsNonFiniteValues(t *testing.T) {
	got := ParseRawScores(map[string]any{
		"0": "NaN",
		"1": "Infinity",
		"2": "-Inf",
		"3": math.NaN(),
		"4": math.Inf(1),
		"5": "8",
	})
	assert.Equal(t, domain.RawScores{0: 0, 1: 0, 2: 0, 3: 0, 4: 0, 5: 8}, got)
}

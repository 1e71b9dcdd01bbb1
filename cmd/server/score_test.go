package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
)

func TestParseRatings(t *testing.T) {
	raw, err := parseRatings([]string{"0=8", "3=9.5"})
	require.NoError(t, err)
	assert.Equal(t, domain.RawScores{0: 8, 3: 9.5}, raw)

	for _, bad := range []string{"8", "x=1", "-1=4", "2=high"} {
		_, err := parseRatings([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestPrintScore(t *testing.T) {
	cat, err := criteria.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	printScore(&buf, cat, domain.RawScores{0: 8, 1: 6, 2: 7, 3: 9, 4: 5, 5: 10})
	out := buf.String()

	assert.Contains(t, out, "Carbon Emissions")
	assert.Contains(t, out, " 72%")
	assert.Contains(t, out, " 78%")
	assert.Contains(t, out, " 83%")
	assert.Contains(t, out, "(good)")
	assert.Contains(t, out, "Focus on areas with lower scores.")
}

func TestPrintScoreUnrated(t *testing.T) {
	cat, err := criteria.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	printScore(&buf, cat, domain.RawScores{0: 3})
	out := buf.String()
	assert.Contains(t, out, "not rated")
	assert.Contains(t, out, "(needs-improvement)")
}

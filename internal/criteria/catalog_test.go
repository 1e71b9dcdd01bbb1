package criteria

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgtracker/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	require.Equal(t, 6, cat.Len())

	all := cat.All()
	assert.Equal(t, "Carbon Emissions", all[0].Name)
	assert.Equal(t, domain.Environmental, all[0].Dimension)
	assert.Equal(t, "0.3", all[0].Weight.String())
	assert.Equal(t, domain.Governance, all[5].Dimension)

	for i, c := range all {
		assert.Equal(t, i, c.Index)
	}
	assert.Len(t, cat.ByDimension(domain.Social), 2)
}

func TestAllReturnsCopy(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	all := cat.All()
	all[0].Name = "mutated"
	assert.Equal(t, "Carbon Emissions", cat.All()[0].Name)
}

func TestWeightShare(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "0.6", cat.WeightShare(0).String())
	assert.Equal(t, "0.4", cat.WeightShare(1).String())
	assert.True(t, cat.WeightShare(42).IsZero())
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{"unknown dimension", "criteria:\n  - {dimension: X, name: Foo, weight: 0.1}\n"},
		{"zero weight", "criteria:\n  - {dimension: E, name: Foo, weight: 0}\n"},
		{"negative weight", "criteria:\n  - {dimension: S, name: Foo, weight: -1}\n"},
		{"empty name", "criteria:\n  - {dimension: G, name: \"\", weight: 0.2}\n"},
		{"empty list", "criteria: []\n"},
		{"not yaml", "criteria: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.yaml")
	yml := "criteria:\n  - {dimension: E, name: Energy Mix, weight: 1}\n  - {dimension: G, name: Audit, weight: 2.5}\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())
	assert.Equal(t, "Audit", cat.All()[1].Name)
	assert.Equal(t, "2.5", cat.All()[1].Weight.String())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

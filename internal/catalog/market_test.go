package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMarketTable(t *testing.T) {
	m, err := DefaultMarketTable()
	require.NoError(t, err)
	assert.Greater(t, m.Len(), 0)

	e, ok := m.Lookup("React")
	require.True(t, ok)
	assert.Equal(t, 92.0, e.DemandScore)
	assert.Equal(t, "Frontend", e.Category)
	assert.Equal(t, TrendUp, e.Trend)
}

func TestMarketTable_LookupNormalizesNames(t *testing.T) {
	m, err := DefaultMarketTable()
	require.NoError(t, err)

	for _, alias := range []string{"react", "reactjs", "React.js", "REACT"} {
		e, ok := m.Lookup(alias)
		require.True(t, ok, alias)
		assert.Equal(t, "React", e.Name)
	}
}

func TestMarketTable_DefaultsForUnknownSkills(t *testing.T) {
	m, err := DefaultMarketTable()
	require.NoError(t, err)

	assert.Equal(t, 75.0, m.Demand("Problem Solving"))
	assert.Equal(t, "Technical", m.Category("Problem Solving"))
	assert.Equal(t, "Backend", m.Category("Django"))
}

func TestMarketTable_NilIsEmpty(t *testing.T) {
	var m *MarketTable
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 75.0, m.Demand("Go"))
	assert.Equal(t, "Programming Languages", m.Category("Go"))
}

func TestNewMarketTable_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  MarketDocument
	}{
		{"empty name", MarketDocument{Skills: []MarketEntry{{Name: ""}}}},
		{"duplicate after normalization", MarketDocument{Skills: []MarketEntry{{Name: "React"}, {Name: "reactjs"}}}},
		{"demand above range", MarketDocument{Skills: []MarketEntry{{Name: "Go", DemandScore: 101}}}},
		{"demand below range", MarketDocument{Skills: []MarketEntry{{Name: "Go", DemandScore: -1}}}},
		{"unknown trend", MarketDocument{Skills: []MarketEntry{{Name: "Go", DemandScore: 80, Trend: "sideways"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMarketTable(tt.doc)
			var loadErr *LoadError
			assert.True(t, errors.As(err, &loadErr))
		})
	}
}

func TestNewMarketTable_DefaultsTrend(t *testing.T) {
	m, err := NewMarketTable(MarketDocument{Skills: []MarketEntry{{Name: "Go", DemandScore: 80}}})
	require.NoError(t, err)
	e, ok := m.Lookup("golang")
	require.True(t, ok)
	assert.Equal(t, TrendStable, e.Trend)
}

func TestMarketTable_EntriesKeepDocumentOrder(t *testing.T) {
	m, err := NewMarketTable(MarketDocument{Skills: []MarketEntry{
		{Name: "Rust", Category: "Programming Languages", DemandScore: 66, Trend: TrendUp},
		{Name: "Kubernetes", DemandScore: 85},
		{Name: "COBOL", Category: "Legacy", DemandScore: 20, Trend: TrendDown},
	}})
	require.NoError(t, err)

	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Rust", entries[0].Name)
	assert.Equal(t, "Kubernetes", entries[1].Name)
	assert.Equal(t, "COBOL", entries[2].Name)

	// Missing categories are inferred once at load time
	assert.Equal(t, "DevOps", entries[1].Category)
	assert.Equal(t, TrendStable, entries[1].Trend)

	var nilTable *MarketTable
	assert.Nil(t, nilTable.Entries())
}

func TestValidTrend(t *testing.T) {
	for _, trend := range []string{TrendUp, TrendStable, TrendDown} {
		assert.True(t, ValidTrend(trend), trend)
	}
	assert.False(t, ValidTrend(""))
	assert.False(t, ValidTrend("UP"))
}

func TestLoadMarketTable_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills":[{"name":"Rust","category":"Programming Languages","demandScore":66}]}`), 0644))

	m, err := LoadMarketTable(path)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 66.0, m.Demand("rust"))
	assert.Equal(t, 75.0, m.Demand("React"))
}

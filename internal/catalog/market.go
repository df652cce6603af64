package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/skillgap/internal/skills"
)

//go:embed data/market.json
var embeddedMarket []byte

// Trend directions reported by the market table
const (
	TrendUp     = "up"
	TrendStable = "stable"
	TrendDown   = "down"
)

// ValidTrend reports whether t is one of the known trend directions
func ValidTrend(t string) bool {
	return t == TrendUp || t == TrendStable || t == TrendDown
}

// MarketEntry is the market metadata for one skill
type MarketEntry struct {
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	DemandScore     float64 `json:"demandScore"`
	Trend           string  `json:"trend,omitempty"`
	TrendPercentage float64 `json:"trendPercentage,omitempty"`
}

// MarketDocument is the on-disk shape of a market table
type MarketDocument struct {
	Skills []MarketEntry `json:"skills"`
}

// MarketTable supplies category and demand metadata for skills the user has not rated.
// Lookups go through skills.LookupKey, so aliases such as "reactjs" resolve to "React".
type MarketTable struct {
	entries map[string]MarketEntry
	order   []string
}

// NewMarketTable builds a MarketTable from a parsed document
func NewMarketTable(doc MarketDocument) (*MarketTable, error) {
	m := &MarketTable{
		entries: make(map[string]MarketEntry, len(doc.Skills)),
		order:   make([]string, 0, len(doc.Skills)),
	}
	for i, e := range doc.Skills {
		key := skills.LookupKey(e.Name)
		if key == "" {
			return nil, &LoadError{Message: fmt.Sprintf("market entry at index %d has no name", i)}
		}
		if _, dup := m.entries[key]; dup {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate market entry %q", e.Name)}
		}
		if e.DemandScore < 0 || e.DemandScore > 100 {
			return nil, &LoadError{Message: fmt.Sprintf("market entry %q: demandScore %.1f out of range [0, 100]", e.Name, e.DemandScore)}
		}
		if e.Trend == "" {
			e.Trend = TrendStable
		}
		if !ValidTrend(e.Trend) {
			return nil, &LoadError{Message: fmt.Sprintf("market entry %q: unknown trend %q", e.Name, e.Trend)}
		}
		if strings.TrimSpace(e.Category) == "" {
			e.Category = InferCategory(e.Name)
		}
		m.entries[key] = e
		m.order = append(m.order, key)
	}
	return m, nil
}

// ParseMarketTable builds a MarketTable from JSON bytes
func ParseMarketTable(data []byte) (*MarketTable, error) {
	var doc MarketDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Message: "failed to parse market JSON", Cause: err}
	}
	return NewMarketTable(doc)
}

// LoadMarketTable reads a market table from path. An empty path returns the embedded table.
func LoadMarketTable(path string) (*MarketTable, error) {
	if path == "" {
		return DefaultMarketTable()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read market file %s", path), Cause: err}
	}
	return ParseMarketTable(data)
}

// DefaultMarketTable returns the market table compiled into the binary
func DefaultMarketTable() (*MarketTable, error) {
	return ParseMarketTable(embeddedMarket)
}

// Lookup returns the market entry for a skill name
func (m *MarketTable) Lookup(name string) (MarketEntry, bool) {
	if m == nil {
		return MarketEntry{}, false
	}
	e, ok := m.entries[skills.LookupKey(name)]
	return e, ok
}

// Demand returns the skill's demand score, or skills.DefaultMarketDemand when unknown
func (m *MarketTable) Demand(name string) float64 {
	if e, ok := m.Lookup(name); ok {
		return e.DemandScore
	}
	return skills.DefaultMarketDemand
}

// Category returns the table category for a skill, falling back to keyword inference
func (m *MarketTable) Category(name string) string {
	if e, ok := m.Lookup(name); ok && strings.TrimSpace(e.Category) != "" {
		return e.Category
	}
	return InferCategory(name)
}

// Entries returns every skill in document order
func (m *MarketTable) Entries() []MarketEntry {
	if m == nil {
		return nil
	}
	out := make([]MarketEntry, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, m.entries[key])
	}
	return out
}

// Len returns the number of skills in the table
func (m *MarketTable) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

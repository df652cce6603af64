package gap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skillgap/internal/catalog"
)

// Market listing sort fields and orders
const (
	SortByDemand   = "demand"
	SortByName     = "name"
	SortByCategory = "category"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// MarketSkill is a market table entry with the estimates a gap entry for the skill would carry
type MarketSkill struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DemandScore     float64 `json:"demandScore"`
	Trend           string  `json:"trend"`
	TrendPercentage float64 `json:"trendPercentage"`
	SalaryImpact    float64 `json:"salaryImpact"`  // lakhs, learning the skill from scratch
	LearningHours   int     `json:"learningHours"`
}

// MarketQuery filters and orders a market listing. Zero values mean no filter,
// demand-descending order and no limit.
type MarketQuery struct {
	Category string
	Trend    string
	SortBy   string
	Order    string
	Limit    int
}

// Validate rejects unknown trend, sort and order values
func (q MarketQuery) Validate() error {
	if q.Trend != "" && !catalog.ValidTrend(q.Trend) {
		return fmt.Errorf("invalid trend %q: must be one of up, stable, down", q.Trend)
	}
	switch q.SortBy {
	case "", SortByDemand, SortByName, SortByCategory:
	default:
		return fmt.Errorf("invalid sort %q: must be one of demand, name, category", q.SortBy)
	}
	switch q.Order {
	case "", OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("invalid order %q: must be asc or desc", q.Order)
	}
	if q.Limit < 0 {
		return fmt.Errorf("invalid limit %d: must not be negative", q.Limit)
	}
	return nil
}

func newMarketSkill(e catalog.MarketEntry) MarketSkill {
	return MarketSkill{
		Name:            e.Name,
		Category:        e.Category,
		DemandScore:     e.DemandScore,
		Trend:           e.Trend,
		TrendPercentage: e.TrendPercentage,
		SalaryImpact:    SalaryImpact(e.DemandScore, 0, gapTargetLevel),
		LearningHours:   LearningHours(e.DemandScore),
	}
}

// MarketSkill returns one skill from the market table. Aliases resolve to the canonical entry.
func (a *Analyzer) MarketSkill(name string) (MarketSkill, bool) {
	e, ok := a.market.Lookup(name)
	if !ok {
		return MarketSkill{}, false
	}
	return newMarketSkill(e), true
}

// MarketSkills lists the market table filtered and sorted by q. The second return value
// is the number of matches before the limit is applied.
func (a *Analyzer) MarketSkills(q MarketQuery) ([]MarketSkill, int, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}

	out := make([]MarketSkill, 0, a.market.Len())
	for _, e := range a.market.Entries() {
		if q.Category != "" && !strings.EqualFold(e.Category, q.Category) {
			continue
		}
		if q.Trend != "" && e.Trend != q.Trend {
			continue
		}
		out = append(out, newMarketSkill(e))
	}

	compare := marketCompare(q.SortBy)
	desc := q.Order != OrderAsc
	sort.SliceStable(out, func(i, j int) bool {
		if c := compare(out[i], out[j]); c != 0 {
			if desc {
				return c > 0
			}
			return c < 0
		}
		// Ties list by name regardless of order
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})

	total := len(out)
	if q.Limit > 0 && q.Limit < total {
		out = out[:q.Limit]
	}
	return out, total, nil
}

// marketCompare compares two skills on the sort field
func marketCompare(sortBy string) func(x, y MarketSkill) int {
	switch sortBy {
	case SortByName:
		return func(x, y MarketSkill) int {
			return strings.Compare(strings.ToLower(x.Name), strings.ToLower(y.Name))
		}
	case SortByCategory:
		return func(x, y MarketSkill) int {
			return strings.Compare(x.Category, y.Category)
		}
	default:
		return func(x, y MarketSkill) int {
			switch {
			case x.DemandScore < y.DemandScore:
				return -1
			case x.DemandScore > y.DemandScore:
				return 1
			}
			return 0
		}
	}
}

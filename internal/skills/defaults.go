package skills

import (
	"strings"

	"github.com/jonathan/skillgap/internal/types"
)

const (
	// DefaultProficiency applies when a user skill carries no proficiency
	DefaultProficiency = 3.0
	// DefaultCategory applies when a skill has no category and none can be inferred
	DefaultCategory = "Technical"
	// DefaultMarketDemand applies when neither the user nor the market table supplies a demand score
	DefaultMarketDemand = 75.0
)

// Proficiency returns the skill's proficiency or DefaultProficiency when absent
func Proficiency(s types.UserSkill) float64 {
	if s.Proficiency == nil {
		return DefaultProficiency
	}
	return *s.Proficiency
}

// Category returns the skill's category or DefaultCategory when absent or blank
func Category(s types.UserSkill) string {
	if strings.TrimSpace(s.Category) == "" {
		return DefaultCategory
	}
	return s.Category
}

// MarketDemand returns the skill's market demand or DefaultMarketDemand when absent
func MarketDemand(s types.UserSkill) float64 {
	if s.MarketDemand == nil {
		return DefaultMarketDemand
	}
	return *s.MarketDemand
}

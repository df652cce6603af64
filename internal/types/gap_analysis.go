// Package types provides type definitions for structured data used throughout the skill gap analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority ranks a classified skill for display and sorting
type Priority string

// Priority values, ordered High < Medium < Low by Rank
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns the sort position of a priority. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// RoleRequirement lists the skills a job role asks for
type RoleRequirement struct {
	RoleName        string   `json:"roleName"`
	CriticalSkills  []string `json:"criticalSkills"`
	ImportantSkills []string `json:"importantSkills"`
}

// RequiredSkills returns the deduplicated union of critical and important skills,
// critical first, each list in catalog order.
func (r RoleRequirement) RequiredSkills() []string {
	seen := make(map[string]bool, len(r.CriticalSkills)+len(r.ImportantSkills))
	out := make([]string, 0, len(r.CriticalSkills)+len(r.ImportantSkills))
	for _, list := range [][]string{r.CriticalSkills, r.ImportantSkills} {
		for _, name := range list {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// IsCritical reports whether name is one of the role's critical skills
func (r RoleRequirement) IsCritical(name string) bool {
	for _, s := range r.CriticalSkills {
		if s == name {
			return true
		}
	}
	return false
}

// UserSkill is one skill contributed by the user's resume.
// Optional numeric fields are pointers so that "absent" can be told apart from zero.
type UserSkill struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Proficiency  *float64 `json:"proficiency,omitempty" validate:"omitempty,gte=0,lte=5"`
	Category     string   `json:"category,omitempty" validate:"max=100"`
	MarketDemand *float64 `json:"marketDemand,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// ClassifiedSkill is one output entry of a gap analysis
type ClassifiedSkill struct {
	Name         string   `json:"name"`
	Priority     Priority `json:"priority"`
	Category     string   `json:"category"`
	MarketDemand float64  `json:"marketDemand"`

	// Improve bucket only
	YourLevel     string `json:"yourLevel,omitempty"`
	RequiredLevel string `json:"requiredLevel,omitempty"`
	Gap           int    `json:"gap,omitempty"`

	// Match bucket only
	MatchPercentage int  `json:"matchPercentage,omitempty"`
	Bonus           bool `json:"bonus,omitempty"`

	// Gap and improve buckets
	SalaryImpact  float64 `json:"salaryImpact,omitempty"`  // lakhs
	LearningHours int     `json:"learningHours,omitempty"` // estimated hours to close the gap

	Insight string `json:"insight"`
}

// AnalysisResult is the combined classifier and scorer output
type AnalysisResult struct {
	Role              string            `json:"role"`
	RequiredCount     int               `json:"requiredCount"`
	MatchPercentage   int               `json:"matchPercentage"`
	CriticalGaps      []ClassifiedSkill `json:"criticalGaps"`
	SkillsToImprove   []ClassifiedSkill `json:"skillsToImprove"`
	MatchingSkills    []ClassifiedSkill `json:"matchingSkills"`
	OverallMatchScore int               `json:"overallMatchScore"`
}

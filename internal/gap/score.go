package gap

import (
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/skillgap/internal/types"
)

// Score bounds
const (
	MinScore = 30
	MaxScore = 95

	baseScoreOffset = 40.0
	baseScoreWeight = 0.5
)

// experienceFactors maps experience labels to score adjustments
var experienceFactors = map[string]int{
	"Intern":                 -15,
	"Entry-Level":            -10,
	"Junior (0-2 years)":     -5,
	"Mid-Level (2-5 years)":  5,
	"Senior (5-8 years)":     10,
	"Lead (8-12 years)":      15,
	"Staff Engineer":         18,
	"Principal Engineer":     20,
	"Distinguished Engineer": 22,
}

// ExperienceLevels returns the recognized experience labels, most junior first
func ExperienceLevels() []string {
	return []string{
		"Intern",
		"Entry-Level",
		"Junior (0-2 years)",
		"Mid-Level (2-5 years)",
		"Senior (5-8 years)",
		"Lead (8-12 years)",
		"Staff Engineer",
		"Principal Engineer",
		"Distinguished Engineer",
	}
}

type salaryBand struct {
	min    float64
	factor int
}

// salaryBands are checked top-down; salaries below every band get belowBandFactor
var salaryBands = map[string][]salaryBand{
	types.CurrencyINR: {{3000000, 8}, {2000000, 5}, {1000000, 2}},
	types.CurrencyUSD: {{300000, 8}, {200000, 5}, {100000, 2}},
}

const belowBandFactor = -3

// ScoreInput carries what the Scorer needs from a classification and the request
type ScoreInput struct {
	MatchingCount   int
	RequiredCount   int
	ExperienceLevel string
	TargetSalary    string
	SalaryCurrency  string
}

// ScoreBreakdown exposes every term of the overall score
type ScoreBreakdown struct {
	MatchPercentage  int `json:"matchPercentage"`
	BaseScore        int `json:"baseScore"`
	ExperienceFactor int `json:"experienceFactor"`
	SalaryFactor     int `json:"salaryFactor"`
	Overall          int `json:"overall"`
}

// Score reduces bucket sizes and the two adjustment factors to one score in [MinScore, MaxScore].
// It never fails; missing or malformed inputs contribute zero.
func Score(in ScoreInput) ScoreBreakdown {
	var b ScoreBreakdown
	if in.RequiredCount > 0 {
		b.MatchPercentage = roundHalfUp(float64(in.MatchingCount) / float64(in.RequiredCount) * 100)
	}
	b.BaseScore = roundHalfUp(baseScoreOffset + float64(b.MatchPercentage)*baseScoreWeight)
	b.ExperienceFactor = ExperienceFactor(in.ExperienceLevel)
	b.SalaryFactor = SalaryFactor(in.TargetSalary, in.SalaryCurrency)
	b.Overall = clamp(b.BaseScore+b.ExperienceFactor+b.SalaryFactor, MinScore, MaxScore)
	return b
}

// ExperienceFactor returns the adjustment for an experience label. Matching ignores
// case and surrounding whitespace; unknown labels return 0.
func ExperienceFactor(level string) int {
	level = strings.TrimSpace(level)
	if f, ok := experienceFactors[level]; ok {
		return f
	}
	for label, f := range experienceFactors {
		if strings.EqualFold(label, level) {
			return f
		}
	}
	return 0
}

// SalaryFactor returns the adjustment for a target salary. An empty currency means INR;
// unknown currencies and unparseable or non-positive salaries return 0.
func SalaryFactor(targetSalary, currency string) int {
	amount, ok := ParseSalary(targetSalary)
	if !ok {
		return 0
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = types.CurrencyINR
	}
	bands, ok := salaryBands[currency]
	if !ok {
		return 0
	}
	for _, band := range bands {
		if amount >= band.min {
			return band.factor
		}
	}
	return belowBandFactor
}

// ParseSalary parses a salary string such as "35,00,000", "₹3500000" or "$120_000".
// Grouping commas, spaces, underscores and one leading currency symbol are ignored.
func ParseSalary(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "$")
	s = strings.NewReplacer(",", "", " ", "", "_", "").Replace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

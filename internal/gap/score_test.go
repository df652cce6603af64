package gap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_SeniorINRExample(t *testing.T) {
	b := Score(ScoreInput{
		MatchingCount:   6,
		RequiredCount:   10,
		ExperienceLevel: "Senior (5-8 years)",
		TargetSalary:    "3500000",
		SalaryCurrency:  "INR",
	})

	assert.Equal(t, 60, b.MatchPercentage)
	assert.Equal(t, 70, b.BaseScore)
	assert.Equal(t, 10, b.ExperienceFactor)
	assert.Equal(t, 8, b.SalaryFactor)
	assert.Equal(t, 88, b.Overall)
}

func TestScore_ZeroRequirements(t *testing.T) {
	b := Score(ScoreInput{MatchingCount: 3})
	assert.Equal(t, 0, b.MatchPercentage)
	assert.Equal(t, 40, b.BaseScore)
	assert.Equal(t, 40, b.Overall)
}

func TestScore_Clamps(t *testing.T) {
	low := Score(ScoreInput{MatchingCount: 0, RequiredCount: 10, ExperienceLevel: "Intern", TargetSalary: "1", SalaryCurrency: "USD"})
	assert.Equal(t, 40-15-3, low.BaseScore+low.ExperienceFactor+low.SalaryFactor)
	assert.Equal(t, MinScore, low.Overall)

	high := Score(ScoreInput{MatchingCount: 10, RequiredCount: 10, ExperienceLevel: "Distinguished Engineer", TargetSalary: "$500,000", SalaryCurrency: "USD"})
	assert.Equal(t, 90+22+8, high.BaseScore+high.ExperienceFactor+high.SalaryFactor)
	assert.Equal(t, MaxScore, high.Overall)
}

func TestScore_BaseScoreRoundsHalfUp(t *testing.T) {
	// 1/3 -> 33%, 40 + 16.5 -> 57
	b := Score(ScoreInput{MatchingCount: 1, RequiredCount: 3})
	assert.Equal(t, 33, b.MatchPercentage)
	assert.Equal(t, 57, b.BaseScore)
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	levels := append(ExperienceLevels(), "", "CEO")
	salaries := []string{"", "abc", "-5", "0", "50000", "150000", "250000", "999999", "1500000", "2500000", "9999999"}
	currencies := []string{"", "INR", "USD", "EUR"}

	for i := 0; i < 2000; i++ {
		required := rng.Intn(40)
		matching := 0
		if required > 0 {
			matching = rng.Intn(required + 1)
		}
		b := Score(ScoreInput{
			MatchingCount:   matching,
			RequiredCount:   required,
			ExperienceLevel: levels[rng.Intn(len(levels))],
			TargetSalary:    salaries[rng.Intn(len(salaries))],
			SalaryCurrency:  currencies[rng.Intn(len(currencies))],
		})
		assert.GreaterOrEqual(t, b.Overall, MinScore)
		assert.LessOrEqual(t, b.Overall, MaxScore)
	}
}

func TestExperienceFactor(t *testing.T) {
	tests := []struct {
		level    string
		expected int
	}{
		{"Intern", -15},
		{"Entry-Level", -10},
		{"Junior (0-2 years)", -5},
		{"Mid-Level (2-5 years)", 5},
		{"Senior (5-8 years)", 10},
		{"Lead (8-12 years)", 15},
		{"Staff Engineer", 18},
		{"Principal Engineer", 20},
		{"Distinguished Engineer", 22},
		{"principal engineer", 20},
		{"  Intern ", -15},
		{"", 0},
		{"Wizard", 0},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceFactor(tt.level))
		})
	}
}

func TestExperienceLevels_AllHaveFactors(t *testing.T) {
	for _, level := range ExperienceLevels() {
		_, ok := experienceFactors[level]
		assert.True(t, ok, level)
	}
	assert.Len(t, ExperienceLevels(), len(experienceFactors))
}

func TestSalaryFactor(t *testing.T) {
	tests := []struct {
		name     string
		salary   string
		currency string
		expected int
	}{
		{"INR top band", "3000000", "INR", 8},
		{"INR second band", "2000000", "INR", 5},
		{"INR third band", "1000000", "INR", 2},
		{"INR below bands", "999999", "INR", -3},
		{"INR lakh grouping", "35,00,000", "INR", 8},
		{"INR symbol", "₹25,00,000", "INR", 5},
		{"missing currency means INR", "1500000", "", 2},
		{"USD top band", "300000", "USD", 8},
		{"USD second band", "$200,000", "USD", 5},
		{"USD third band", "100_000", "USD", 2},
		{"USD below bands", "99999", "USD", -3},
		{"lowercase currency", "300000", "usd", 8},
		{"unknown currency", "300000", "EUR", 0},
		{"empty salary", "", "INR", 0},
		{"unparseable salary", "lots", "INR", 0},
		{"zero salary", "0", "INR", 0},
		{"negative salary", "-100", "USD", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SalaryFactor(tt.salary, tt.currency))
		})
	}
}

func TestParseSalary(t *testing.T) {
	v, ok := ParseSalary(" 12 00 000 ")
	assert.True(t, ok)
	assert.Equal(t, 1200000.0, v)

	v, ok = ParseSalary("$95000.50")
	assert.True(t, ok)
	assert.Equal(t, 95000.5, v)

	_, ok = ParseSalary("NaN")
	assert.False(t, ok)
	_, ok = ParseSalary("Inf")
	assert.False(t, ok)
	_, ok = ParseSalary("₹")
	assert.False(t, ok)
}

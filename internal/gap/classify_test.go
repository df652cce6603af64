package gap

import (
	"fmt"
	"testing"

	"github.com/jonathan/skillgap/internal/catalog"
	"github.com/jonathan/skillgap/internal/skills"
	"github.com/jonathan/skillgap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	market, err := catalog.DefaultMarketTable()
	require.NoError(t, err)
	return NewAnalyzer(cat, market)
}

func names(entries []types.ClassifiedSkill) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestClassify_EmptySkillsPutsEveryRequirementInGaps(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, roleName := range a.Catalog().Roles() {
		t.Run(roleName, func(t *testing.T) {
			role := a.Catalog().Lookup(roleName)
			c := a.classifier.Classify(role, skills.Build(nil))

			assert.ElementsMatch(t, role.RequiredSkills(), names(c.CriticalGaps))
			assert.Empty(t, c.SkillsToImprove)
			assert.Empty(t, c.MatchingSkills)
		})
	}
}

func TestClassify_HighProficiencyRequiredSkillsAlwaysMatch(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, roleName := range a.Catalog().Roles() {
		t.Run(roleName, func(t *testing.T) {
			role := a.Catalog().Lookup(roleName)
			var userSkills []types.UserSkill
			for i, name := range role.RequiredSkills() {
				userSkills = append(userSkills, types.UserSkill{Name: name, Proficiency: ptr(4.0 + float64(i%3)*0.5)})
			}

			c := a.classifier.Classify(role, skills.Build(userSkills))
			assert.Empty(t, c.CriticalGaps)
			assert.Empty(t, c.SkillsToImprove)
			assert.ElementsMatch(t, role.RequiredSkills(), names(c.MatchingSkills))
		})
	}
}

func TestClassify_ThresholdBoundaryIsInclusiveOnMatchSide(t *testing.T) {
	role := types.RoleRequirement{RoleName: "R", CriticalSkills: []string{"Go", "SQL"}}
	c := NewClassifier(nil).Classify(role, skills.Build([]types.UserSkill{
		{Name: "Go", Proficiency: ptr(3.5)},
		{Name: "SQL", Proficiency: ptr(3.49)},
	}))

	require.Len(t, c.MatchingSkills, 1)
	assert.Equal(t, "Go", c.MatchingSkills[0].Name)
	assert.Equal(t, 70, c.MatchingSkills[0].MatchPercentage)
	require.Len(t, c.SkillsToImprove, 1)
	assert.Equal(t, "SQL", c.SkillsToImprove[0].Name)
}

func TestClassify_MissingProficiencyUsesDefault(t *testing.T) {
	role := types.RoleRequirement{RoleName: "R", CriticalSkills: []string{"Go"}}
	c := NewClassifier(nil).Classify(role, skills.Build([]types.UserSkill{{Name: "Go"}}))

	require.Len(t, c.SkillsToImprove, 1)
	entry := c.SkillsToImprove[0]
	assert.Equal(t, types.PriorityHigh, entry.Priority)
	assert.Equal(t, "Advanced", entry.YourLevel)
	assert.Equal(t, "Master", entry.RequiredLevel)
	assert.Equal(t, 40, entry.Gap)
	assert.Equal(t, "Technical", entry.Category)
	assert.Equal(t, 75.0, entry.MarketDemand)
}

func TestClassify_ImproveEntryFields(t *testing.T) {
	tests := []struct {
		proficiency   float64
		yourLevel     string
		requiredLevel string
		gap           int
	}{
		{0.0, "Beginner", "Intermediate", 100},
		{1.0, "Beginner", "Advanced", 80},
		{1.5, "Beginner", "Advanced", 70},
		{2.0, "Intermediate", "Expert", 60},
		{2.75, "Intermediate", "Expert", 45},
		{3.0, "Advanced", "Master", 40},
		{3.4, "Advanced", "Master", 32},
	}

	role := types.RoleRequirement{RoleName: "R", ImportantSkills: []string{"Go"}}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("p=%.2f", tt.proficiency), func(t *testing.T) {
			c := NewClassifier(nil).Classify(role, skills.Build([]types.UserSkill{{Name: "Go", Proficiency: ptr(tt.proficiency)}}))
			require.Len(t, c.SkillsToImprove, 1)
			e := c.SkillsToImprove[0]
			assert.Equal(t, types.PriorityMedium, e.Priority)
			assert.Equal(t, tt.yourLevel, e.YourLevel)
			assert.Equal(t, tt.requiredLevel, e.RequiredLevel)
			assert.Equal(t, tt.gap, e.Gap)
			assert.GreaterOrEqual(t, e.SalaryImpact, 1.5)
			assert.Equal(t, 150, e.LearningHours)
		})
	}
}

func TestClassify_GapEntryUsesMarketTable(t *testing.T) {
	market, err := catalog.DefaultMarketTable()
	require.NoError(t, err)

	role := types.RoleRequirement{RoleName: "Frontend Developer", CriticalSkills: []string{"React"}, ImportantSkills: []string{"Problem Solving"}}
	c := NewClassifier(market).Classify(role, skills.Build(nil))

	require.Len(t, c.CriticalGaps, 2)
	react := c.CriticalGaps[0]
	assert.Equal(t, "React", react.Name)
	assert.Equal(t, types.PriorityHigh, react.Priority)
	assert.Equal(t, "Frontend", react.Category)
	assert.Equal(t, 92.0, react.MarketDemand)
	assert.InDelta(t, 5.5, react.SalaryImpact, 1e-9)
	assert.Equal(t, 184, react.LearningHours)
	assert.Contains(t, react.Insight, "critical skill for Frontend Developer")
	assert.Empty(t, react.YourLevel)
	assert.Zero(t, react.Gap)

	ps := c.CriticalGaps[1]
	assert.Equal(t, types.PriorityMedium, ps.Priority)
	assert.Equal(t, "Technical", ps.Category)
	assert.Equal(t, 75.0, ps.MarketDemand)
}

func TestClassify_SortsByPriorityThenDemand(t *testing.T) {
	role := types.RoleRequirement{
		RoleName:        "R",
		CriticalSkills:  []string{"A", "B"},
		ImportantSkills: []string{"C", "D", "E"},
	}
	userSkills := []types.UserSkill{
		{Name: "A", Proficiency: ptr(2), MarketDemand: ptr(50)},
		{Name: "B", Proficiency: ptr(2), MarketDemand: ptr(90)},
		{Name: "C", Proficiency: ptr(2), MarketDemand: ptr(99)},
		{Name: "D", Proficiency: ptr(2), MarketDemand: ptr(60)},
		{Name: "E", Proficiency: ptr(2), MarketDemand: ptr(60)},
	}

	c := NewClassifier(nil).Classify(role, skills.Build(userSkills))
	assert.Equal(t, []string{"B", "A", "C", "D", "E"}, names(c.SkillsToImprove))
}

func TestClassify_SortsMatchesByDemandOnly(t *testing.T) {
	role := types.RoleRequirement{
		RoleName:        "R",
		CriticalSkills:  []string{"A"},
		ImportantSkills: []string{"B", "C"},
	}
	userSkills := []types.UserSkill{
		{Name: "A", Proficiency: ptr(4), MarketDemand: ptr(40)},
		{Name: "B", Proficiency: ptr(4), MarketDemand: ptr(80)},
		{Name: "C", Proficiency: ptr(4), MarketDemand: ptr(40)},
	}

	c := NewClassifier(nil).Classify(role, skills.Build(userSkills))
	assert.Equal(t, []string{"B", "A", "C"}, names(c.MatchingSkills))
	for _, m := range c.MatchingSkills {
		assert.Equal(t, types.PriorityLow, m.Priority)
	}
}

func TestClassify_BonusCap(t *testing.T) {
	required := make([]string, 10)
	for i := range required {
		required[i] = fmt.Sprintf("Req%d", i)
	}
	role := types.RoleRequirement{RoleName: "R", CriticalSkills: required[:5], ImportantSkills: required[5:]}

	extras := make([]types.UserSkill, 20)
	for i := range extras {
		extras[i] = types.UserSkill{Name: fmt.Sprintf("Extra%d", i), Proficiency: ptr(4.5)}
	}

	c := NewClassifier(nil).Classify(role, skills.Build(extras))
	bonus := 0
	for _, m := range c.MatchingSkills {
		if m.Bonus {
			bonus++
		}
	}
	assert.Equal(t, 4, bonus)
	assert.Equal(t, []string{"Extra0", "Extra1", "Extra2", "Extra3"}, names(c.MatchingSkills))
}

func TestClassify_BonusCapCountsRequiredMatches(t *testing.T) {
	role := types.RoleRequirement{RoleName: "R", CriticalSkills: []string{"A", "B", "C", "D", "E"}}
	userSkills := []types.UserSkill{
		{Name: "A", Proficiency: ptr(5)},
		{Name: "X", Proficiency: ptr(5)},
		{Name: "Y", Proficiency: ptr(5)},
	}

	// cap is 5 * 0.4 = 2: one required match leaves room for one bonus
	c := NewClassifier(nil).Classify(role, skills.Build(userSkills))
	require.Len(t, c.MatchingSkills, 2)
	assert.False(t, c.MatchingSkills[0].Bonus)
	assert.True(t, c.MatchingSkills[1].Bonus)
	assert.Equal(t, "X", c.MatchingSkills[1].Name)
}

func TestClassify_BonusSkipsLowProficiency(t *testing.T) {
	role := types.RoleRequirement{RoleName: "R", CriticalSkills: []string{"A", "B", "C", "D", "E"}}
	userSkills := []types.UserSkill{
		{Name: "X", Proficiency: ptr(3.99)},
		{Name: "Y"},
		{Name: "Z", Proficiency: ptr(4.0)},
	}

	c := NewClassifier(nil).Classify(role, skills.Build(userSkills))
	assert.Equal(t, []string{"Z"}, names(c.MatchingSkills))
	assert.Equal(t, 80, c.MatchingSkills[0].MatchPercentage)
}

func TestClassify_ZeroRequirementRole(t *testing.T) {
	role := types.RoleRequirement{RoleName: "Empty"}
	c := NewClassifier(nil).Classify(role, skills.Build([]types.UserSkill{{Name: "Go", Proficiency: ptr(5)}}))

	assert.Empty(t, c.CriticalGaps)
	assert.Empty(t, c.SkillsToImprove)
	assert.Empty(t, c.MatchingSkills)
}

func TestClassify_DuplicateUserSkillsLastWriteWins(t *testing.T) {
	role := types.RoleRequirement{RoleName: "R", CriticalSkills: []string{"Go"}}
	c := NewClassifier(nil).Classify(role, skills.Build([]types.UserSkill{
		{Name: "Go", Proficiency: ptr(4.5)},
		{Name: "Go", Proficiency: ptr(2.0)},
	}))

	assert.Empty(t, c.MatchingSkills)
	require.Len(t, c.SkillsToImprove, 1)
	assert.Equal(t, 60, c.SkillsToImprove[0].Gap)
}

func TestLevelAtClamps(t *testing.T) {
	assert.Equal(t, "Beginner", levelAt(-3))
	assert.Equal(t, "Master", levelAt(4))
	assert.Equal(t, "Master", levelAt(9.9))
	assert.Equal(t, "Expert", levelAt(3.99))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 1, roundHalfUp(0.5))
	assert.Equal(t, 3, roundHalfUp(2.5))
	assert.Equal(t, 2, roundHalfUp(2.49))
	assert.Equal(t, 32, roundHalfUp((5-3.4)*20))
	assert.Equal(t, 0, roundHalfUp(0.49))
}

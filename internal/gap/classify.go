// Package gap classifies a user's skills against a role's requirements and scores the overall match.
//
// Everything in this package is a pure function of its inputs: there is no I/O and no shared
// mutable state, so a single Analyzer can serve concurrent callers.
package gap

import (
	"sort"

	"github.com/jonathan/skillgap/internal/catalog"
	"github.com/jonathan/skillgap/internal/skills"
	"github.com/jonathan/skillgap/internal/types"
)

// Classification is the bucketed outcome for one role
type Classification struct {
	Role            string
	Required        []string
	CriticalGaps    []types.ClassifiedSkill
	SkillsToImprove []types.ClassifiedSkill
	MatchingSkills  []types.ClassifiedSkill
}

// Classifier partitions required skills into gap, improve and match buckets.
// The market table fills in category and demand for skills the user does not have.
type Classifier struct {
	market *catalog.MarketTable
}

// NewClassifier creates a Classifier. A nil market table is allowed and yields default metadata.
func NewClassifier(market *catalog.MarketTable) *Classifier {
	return &Classifier{market: market}
}

// Classify runs the classification for one role against the user's skill index
func (c *Classifier) Classify(role types.RoleRequirement, idx *skills.Index) Classification {
	required := role.RequiredSkills()
	result := Classification{
		Role:            role.RoleName,
		Required:        required,
		CriticalGaps:    make([]types.ClassifiedSkill, 0),
		SkillsToImprove: make([]types.ClassifiedSkill, 0),
		MatchingSkills:  make([]types.ClassifiedSkill, 0),
	}

	requiredSet := make(map[string]bool, len(required))
	for _, name := range required {
		requiredSet[name] = true
		critical := role.IsCritical(name)

		userSkill, ok := idx.Get(name)
		if !ok {
			result.CriticalGaps = append(result.CriticalGaps, c.gapEntry(name, role.RoleName, critical))
			continue
		}

		p := skills.Proficiency(userSkill)
		if p < ImproveThreshold {
			result.SkillsToImprove = append(result.SkillsToImprove, improveEntry(userSkill, p, critical))
			continue
		}
		result.MatchingSkills = append(result.MatchingSkills, matchEntry(userSkill, p))
	}

	c.addBonusMatches(&result, role.RoleName, idx, requiredSet)

	sortByPriorityThenDemand(result.CriticalGaps)
	sortByPriorityThenDemand(result.SkillsToImprove)
	sortByDemand(result.MatchingSkills)

	return result
}

func (c *Classifier) gapEntry(name, role string, critical bool) types.ClassifiedSkill {
	demand := c.market.Demand(name)
	impact := SalaryImpact(demand, 0, gapTargetLevel)
	return types.ClassifiedSkill{
		Name:          name,
		Priority:      priorityFor(critical),
		Category:      c.market.Category(name),
		MarketDemand:  demand,
		SalaryImpact:  impact,
		LearningHours: LearningHours(demand),
		Insight:       gapInsight(name, role, critical, demand, impact),
	}
}

func improveEntry(s types.UserSkill, p float64, critical bool) types.ClassifiedSkill {
	demand := skills.MarketDemand(s)
	from, to := yourLevel(p), requiredLevel(p)
	gap := roundHalfUp((maxProficiency - p) * 20)
	return types.ClassifiedSkill{
		Name:          s.Name,
		Priority:      priorityFor(critical),
		Category:      skills.Category(s),
		MarketDemand:  demand,
		YourLevel:     from,
		RequiredLevel: to,
		Gap:           gap,
		SalaryImpact:  SalaryImpact(demand, p, improveTargetLevel),
		LearningHours: LearningHours(demand),
		Insight:       improveInsight(s.Name, from, to, gap),
	}
}

func matchEntry(s types.UserSkill, p float64) types.ClassifiedSkill {
	pct := matchPercentage(p)
	return types.ClassifiedSkill{
		Name:            s.Name,
		Priority:        types.PriorityLow,
		Category:        skills.Category(s),
		MarketDemand:    skills.MarketDemand(s),
		MatchPercentage: pct,
		Insight:         matchInsight(s.Name, pct),
	}
}

// addBonusMatches appends high-proficiency skills the role does not ask for, in index order.
// The cap is checked before every addition, so the bucket never exceeds BonusCapRatio of the
// requirement count because of bonuses.
func (c *Classifier) addBonusMatches(result *Classification, role string, idx *skills.Index, required map[string]bool) {
	capacity := float64(len(result.Required)) * BonusCapRatio

	inMatches := make(map[string]bool, len(result.MatchingSkills))
	for _, m := range result.MatchingSkills {
		inMatches[m.Name] = true
	}

	for _, s := range idx.Skills() {
		if float64(len(result.MatchingSkills)) >= capacity {
			return
		}
		if required[s.Name] || inMatches[s.Name] {
			continue
		}
		p := skills.Proficiency(s)
		if p < BonusThreshold {
			continue
		}
		entry := matchEntry(s, p)
		entry.Bonus = true
		entry.Insight = bonusInsight(s.Name, role)
		result.MatchingSkills = append(result.MatchingSkills, entry)
		inMatches[s.Name] = true
	}
}

func matchPercentage(p float64) int {
	return roundHalfUp(p / maxProficiency * 100)
}

func priorityFor(critical bool) types.Priority {
	if critical {
		return types.PriorityHigh
	}
	return types.PriorityMedium
}

func sortByPriorityThenDemand(entries []types.ClassifiedSkill) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := entries[i].Priority.Rank(), entries[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return entries[i].MarketDemand > entries[j].MarketDemand
	})
}

func sortByDemand(entries []types.ClassifiedSkill) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MarketDemand > entries[j].MarketDemand
	})
}

package gap

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/jonathan/skillgap/internal/catalog"
	"github.com/jonathan/skillgap/internal/skills"
	"github.com/jonathan/skillgap/internal/types"
)

// Analyzer combines role lookup, classification and scoring behind one call
type Analyzer struct {
	catalog     *catalog.Catalog
	market      *catalog.MarketTable
	classifier  *Classifier
	fingerprint string
}

// NewAnalyzer creates an Analyzer over an immutable catalog and market table.
// The catalog must not be nil; the market table may be.
func NewAnalyzer(cat *catalog.Catalog, market *catalog.MarketTable) *Analyzer {
	return &Analyzer{
		catalog:     cat,
		market:      market,
		classifier:  NewClassifier(market),
		fingerprint: fingerprint(cat, market),
	}
}

// Fingerprint identifies the catalog and market table contents. Two analyzers built from
// the same data report the same value.
func (a *Analyzer) Fingerprint() string {
	return a.fingerprint
}

func fingerprint(cat *catalog.Catalog, market *catalog.MarketTable) string {
	names := cat.Roles()
	roles := make([]types.RoleRequirement, 0, len(names))
	for _, name := range names {
		if role, ok := cat.Get(name); ok {
			roles = append(roles, role)
		}
	}
	data, err := json.Marshal(struct {
		DefaultRole string                  `json:"defaultRole"`
		Roles       []types.RoleRequirement `json:"roles"`
		Market      []catalog.MarketEntry   `json:"market"`
	}{cat.DefaultRole(), roles, market.Entries()})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Catalog returns the role catalog the analyzer resolves roles against
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

// Market returns the skill market table, which may be nil
func (a *Analyzer) Market() *catalog.MarketTable {
	return a.market
}

// Analyze classifies the request's skills against its role and scores the result.
// Unknown or empty role names resolve to the catalog's default role.
func (a *Analyzer) Analyze(req types.AnalysisRequest) *types.AnalysisResult {
	result, _ := a.AnalyzeWithBreakdown(req)
	return result
}

// AnalyzeWithBreakdown is Analyze plus the individual score terms
func (a *Analyzer) AnalyzeWithBreakdown(req types.AnalysisRequest) (*types.AnalysisResult, ScoreBreakdown) {
	role := a.catalog.Lookup(req.RoleName)
	idx := skills.Build(req.UserSkills)
	c := a.classifier.Classify(role, idx)

	score := Score(ScoreInput{
		MatchingCount:   len(c.MatchingSkills),
		RequiredCount:   len(c.Required),
		ExperienceLevel: req.ExperienceLevel,
		TargetSalary:    req.TargetSalary,
		SalaryCurrency:  req.SalaryCurrency,
	})

	return &types.AnalysisResult{
		Role:              c.Role,
		RequiredCount:     len(c.Required),
		MatchPercentage:   score.MatchPercentage,
		CriticalGaps:      c.CriticalGaps,
		SkillsToImprove:   c.SkillsToImprove,
		MatchingSkills:    c.MatchingSkills,
		OverallMatchScore: score.Overall,
	}, score
}

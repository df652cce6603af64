package server

import (
	"net/http"
	"testing"

	"github.com/jonathan/skillgap/internal/gap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marketListResponse struct {
	Skills []gap.MarketSkill `json:"skills"`
	Count  int               `json:"count"`
	Total  int               `json:"total"`
}

func TestListMarketSkills(t *testing.T) {
	s := newTestServer(t, Config{})

	w := do(t, s.Handler(), http.MethodGet, "/market/skills", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[marketListResponse](t, w)
	assert.Equal(t, s.analyzer.Market().Len(), resp.Total)
	assert.Equal(t, resp.Total, resp.Count)
	require.NotEmpty(t, resp.Skills)
	for i := 1; i < len(resp.Skills); i++ {
		assert.GreaterOrEqual(t, resp.Skills[i-1].DemandScore, resp.Skills[i].DemandScore)
	}
	for _, skill := range resp.Skills {
		assert.NotEmpty(t, skill.Category, skill.Name)
		assert.NotEmpty(t, skill.Trend, skill.Name)
		assert.GreaterOrEqual(t, skill.SalaryImpact, 1.5, skill.Name)
		assert.GreaterOrEqual(t, skill.LearningHours, 50, skill.Name)
	}
}

func TestListMarketSkills_FiltersAndLimit(t *testing.T) {
	s := newTestServer(t, Config{})
	h := s.Handler()

	w := do(t, h, http.MethodGet, "/market/skills?trend=down", "")
	require.Equal(t, http.StatusOK, w.Code)
	down := decode[marketListResponse](t, w)
	require.NotEmpty(t, down.Skills)
	for _, skill := range down.Skills {
		assert.Equal(t, "down", skill.Trend)
	}

	w = do(t, h, http.MethodGet, "/market/skills?category=frontend&sort_by=name&order=asc", "")
	require.Equal(t, http.StatusOK, w.Code)
	frontend := decode[marketListResponse](t, w)
	require.NotEmpty(t, frontend.Skills)
	for i, skill := range frontend.Skills {
		assert.Equal(t, "Frontend", skill.Category)
		if i > 0 {
			assert.LessOrEqual(t, frontend.Skills[i-1].Name, skill.Name)
		}
	}

	w = do(t, h, http.MethodGet, "/market/skills?limit=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	limited := decode[marketListResponse](t, w)
	assert.Equal(t, 3, limited.Count)
	assert.Greater(t, limited.Total, 3)
}

func TestListMarketSkills_BadQuery(t *testing.T) {
	s := newTestServer(t, Config{})

	for _, path := range []string{
		"/market/skills?trend=sideways",
		"/market/skills?sort_by=salary",
		"/market/skills?order=up",
		"/market/skills?limit=abc",
		"/market/skills?limit=-2",
	} {
		w := do(t, s.Handler(), http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, decode[map[string]string](t, w)["error"], "validation error", path)
	}
}

func TestGetMarketSkill(t *testing.T) {
	s := newTestServer(t, Config{})

	w := do(t, s.Handler(), http.MethodGet, "/market/skills/reactjs", "")
	require.Equal(t, http.StatusOK, w.Code)
	skill := decode[gap.MarketSkill](t, w)
	assert.Equal(t, "React", skill.Name)
	assert.Equal(t, "Frontend", skill.Category)
	assert.Equal(t, 92.0, skill.DemandScore)
	assert.Equal(t, "up", skill.Trend)
	assert.Equal(t, gap.SalaryImpact(92, 0, 3), skill.SalaryImpact)
	assert.Equal(t, gap.LearningHours(92), skill.LearningHours)

	w = do(t, s.Handler(), http.MethodGet, "/market/skills/Underwater%20Basket%20Weaving", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "skill not found: Underwater Basket Weaving", decode[map[string]string](t, w)["error"])
}

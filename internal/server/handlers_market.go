package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/skillgap/internal/gap"
)

// handleListMarketSkills lists the skill market table.
// Query parameters: category, trend, sort_by (demand, name, category), order (asc, desc), limit.
func (s *Server) handleListMarketSkills(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := gap.MarketQuery{
		Category: strings.TrimSpace(q.Get("category")),
		Trend:    q.Get("trend"),
		SortBy:   q.Get("sort_by"),
		Order:    q.Get("order"),
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			s.errorFromErr(w, &ErrValidation{Field: "limit", Message: "must be an integer"})
			return
		}
		query.Limit = limit
	}

	skills, total, err := s.analyzer.MarketSkills(query)
	if err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "query", Message: err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
		"total":  total,
	})
}

// handleGetMarketSkill returns one skill's market data. Aliases such as "golang" resolve.
func (s *Server) handleGetMarketSkill(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Skill name is required")
		return
	}

	skill, ok := s.analyzer.MarketSkill(name)
	if !ok {
		s.errorFromErr(w, &ErrSkillNotFound{Name: name})
		return
	}

	s.jsonResponse(w, http.StatusOK, skill)
}

package server

import (
	"net/http"
	"strings"
)

// RoleSummary is one entry in the /roles listing
type RoleSummary struct {
	RoleName       string `json:"roleName"`
	CriticalCount  int    `json:"criticalCount"`
	ImportantCount int    `json:"importantCount"`
	Default        bool   `json:"default,omitempty"`
}

// handleListRoles returns every catalog role with its requirement counts
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	cat := s.analyzer.Catalog()
	defaultRole := cat.DefaultRole()

	names := cat.Roles()
	roles := make([]RoleSummary, 0, len(names))
	for _, name := range names {
		role, ok := cat.Get(name)
		if !ok {
			continue
		}
		roles = append(roles, RoleSummary{
			RoleName:       role.RoleName,
			CriticalCount:  len(role.CriticalSkills),
			ImportantCount: len(role.ImportantSkills),
			Default:        role.RoleName == defaultRole,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roles":       roles,
		"count":       len(roles),
		"defaultRole": defaultRole,
	})
}

// handleGetRole returns one role's requirements. Unknown names are 404, never the default role.
func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Role name is required")
		return
	}

	role, ok := s.analyzer.Catalog().Get(name)
	if !ok {
		s.errorFromErr(w, &ErrRoleNotFound{Name: name})
		return
	}

	s.jsonResponse(w, http.StatusOK, role)
}

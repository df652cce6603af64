// Package server provides the HTTP REST API for the skill gap analyzer.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAnalysisNotFound indicates a saved analysis was not found
type ErrAnalysisNotFound struct {
	ID string
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrRoleNotFound indicates a role is not in the catalog
type ErrRoleNotFound struct {
	Name string
}

func (e *ErrRoleNotFound) Error() string {
	return fmt.Sprintf("role not found: %s", e.Name)
}

// ErrSkillNotFound indicates a skill is not in the market table
type ErrSkillNotFound struct {
	Name string
}

func (e *ErrSkillNotFound) Error() string {
	return fmt.Sprintf("skill not found: %s", e.Name)
}

// ErrStoreUnavailable indicates an endpoint needs persistence but none is configured
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "persistence is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrAnalysisNotFound, *ErrRoleNotFound, *ErrSkillNotFound:
		return http.StatusNotFound
	case *ErrStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

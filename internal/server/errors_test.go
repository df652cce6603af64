package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "candidateId", Message: "required when save is true"}
	assert.Equal(t, "validation error: candidateId - required when save is true", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrAnalysisNotFound(t *testing.T) {
	err := &ErrAnalysisNotFound{ID: "abc"}
	assert.Equal(t, "analysis not found: abc", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrRoleNotFound(t *testing.T) {
	err := &ErrRoleNotFound{Name: "Astronaut"}
	assert.Equal(t, "role not found: Astronaut", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrSkillNotFound(t *testing.T) {
	err := &ErrSkillNotFound{Name: "COBOL"}
	assert.Equal(t, "skill not found: COBOL", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "ErrValidation", err: &ErrValidation{Field: "f", Message: "m"}, expected: http.StatusBadRequest},
		{name: "ErrAnalysisNotFound", err: &ErrAnalysisNotFound{ID: "x"}, expected: http.StatusNotFound},
		{name: "ErrRoleNotFound", err: &ErrRoleNotFound{Name: "x"}, expected: http.StatusNotFound},
		{name: "ErrSkillNotFound", err: &ErrSkillNotFound{Name: "x"}, expected: http.StatusNotFound},
		{name: "ErrStoreUnavailable", err: &ErrStoreUnavailable{}, expected: http.StatusServiceUnavailable},
		{name: "generic error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillgap/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-5, DefaultListLimit},
		{0, DefaultListLimit},
		{1, 1},
		{25, 25},
		{50, 50},
		{51, MaxListLimit},
		{1000, MaxListLimit},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClampLimit(tt.input), "limit %d", tt.input)
	}
}

func TestSavedAnalysis_Summary(t *testing.T) {
	now := time.Now()
	saved := SavedAnalysis{
		ID:              uuid.New(),
		CandidateID:     "cand-1",
		TargetRole:      "Data Engineer",
		MatchScore:      72,
		CriticalGaps:    3,
		SkillsToImprove: 1,
		Result:          &types.AnalysisResult{Role: "Data Engineer"},
		CreatedAt:       now,
	}

	s := saved.Summary()
	assert.Equal(t, saved.ID, s.ID)
	assert.Equal(t, "cand-1", s.CandidateID)
	assert.Equal(t, "Data Engineer", s.TargetRole)
	assert.Equal(t, 72, s.MatchScore)
	assert.Equal(t, 3, s.CriticalGaps)
	assert.Equal(t, 1, s.SkillsToImprove)
	assert.Equal(t, now, s.CreatedAt)
}

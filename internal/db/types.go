package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillgap/internal/types"
)

// List limits for saved analyses
const (
	DefaultListLimit = 10
	MaxListLimit     = 50
)

// SavedAnalysis is a persisted gap analysis with its full result
type SavedAnalysis struct {
	ID              uuid.UUID             `json:"id"`
	CandidateID     string                `json:"candidate_id"`
	TargetRole      string                `json:"target_role"`
	MatchScore      int                   `json:"match_score"`
	CriticalGaps    int                   `json:"critical_gaps"`
	SkillsToImprove int                   `json:"skills_to_improve"`
	Result          *types.AnalysisResult `json:"result"`
	CreatedAt       time.Time             `json:"created_at"`
}

// SavedAnalysisSummary is the list view of a saved analysis, without the full result
type SavedAnalysisSummary struct {
	ID              uuid.UUID `json:"id"`
	CandidateID     string    `json:"candidate_id"`
	TargetRole      string    `json:"target_role"`
	MatchScore      int       `json:"match_score"`
	CriticalGaps    int       `json:"critical_gaps"`
	SkillsToImprove int       `json:"skills_to_improve"`
	CreatedAt       time.Time `json:"created_at"`
}

// Summary strips the full result
func (a *SavedAnalysis) Summary() SavedAnalysisSummary {
	return SavedAnalysisSummary{
		ID:              a.ID,
		CandidateID:     a.CandidateID,
		TargetRole:      a.TargetRole,
		MatchScore:      a.MatchScore,
		CriticalGaps:    a.CriticalGaps,
		SkillsToImprove: a.SkillsToImprove,
		CreatedAt:       a.CreatedAt,
	}
}

// ClampLimit maps a requested page size into [1, MaxListLimit]; non-positive values mean DefaultListLimit
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

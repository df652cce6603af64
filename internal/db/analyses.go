package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/skillgap/internal/types"
)

// -----------------------------------------------------------------------------
// Saved Gap Analyses Methods
// -----------------------------------------------------------------------------

// SaveAnalysis persists a result for a candidate and returns the stored record
func (db *DB) SaveAnalysis(ctx context.Context, candidateID string, result *types.AnalysisResult) (*SavedAnalysis, error) {
	if candidateID == "" {
		return nil, fmt.Errorf("candidate id is required")
	}
	if result == nil {
		return nil, fmt.Errorf("analysis result is required")
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	saved := SavedAnalysis{
		ID:              uuid.New(),
		CandidateID:     candidateID,
		TargetRole:      result.Role,
		MatchScore:      result.OverallMatchScore,
		CriticalGaps:    len(result.CriticalGaps),
		SkillsToImprove: len(result.SkillsToImprove),
		Result:          result,
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO saved_gap_analyses (id, candidate_id, target_role, match_score, critical_gaps, skills_to_improve, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		saved.ID, saved.CandidateID, saved.TargetRole, saved.MatchScore,
		saved.CriticalGaps, saved.SkillsToImprove, resultJSON,
	).Scan(&saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return &saved, nil
}

// GetAnalysis retrieves a saved analysis by ID. Returns nil, nil when it does not exist.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*SavedAnalysis, error) {
	var saved SavedAnalysis
	var resultJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, target_role, match_score, critical_gaps, skills_to_improve, result, created_at
		 FROM saved_gap_analyses
		 WHERE id = $1`,
		id,
	).Scan(&saved.ID, &saved.CandidateID, &saved.TargetRole, &saved.MatchScore,
		&saved.CriticalGaps, &saved.SkillsToImprove, &resultJSON, &saved.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	saved.Result = &result

	return &saved, nil
}

// ListAnalyses returns summaries newest first. An empty candidateID lists across candidates;
// limit is clamped with ClampLimit.
func (db *DB) ListAnalyses(ctx context.Context, candidateID string, limit int) ([]SavedAnalysisSummary, error) {
	query := `SELECT id, candidate_id, target_role, match_score, critical_gaps, skills_to_improve, created_at
	          FROM saved_gap_analyses`
	args := []interface{}{}
	argPos := 1

	if candidateID != "" {
		query += fmt.Sprintf(" WHERE candidate_id = $%d", argPos)
		args = append(args, candidateID)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d", argPos)
	args = append(args, ClampLimit(limit))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	summaries := make([]SavedAnalysisSummary, 0)
	for rows.Next() {
		var s SavedAnalysisSummary
		if err := rows.Scan(&s.ID, &s.CandidateID, &s.TargetRole, &s.MatchScore,
			&s.CriticalGaps, &s.SkillsToImprove, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}

	return summaries, nil
}

// DeleteAnalysis removes a saved analysis. It reports whether a row was deleted.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM saved_gap_analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAnalysesOlderThan prunes analyses created before the cutoff and returns how many were removed
func (db *DB) DeleteAnalysesOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM saved_gap_analyses WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune analyses: %w", err)
	}
	return tag.RowsAffected(), nil
}

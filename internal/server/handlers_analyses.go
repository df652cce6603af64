package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillgap/internal/cache"
	"github.com/jonathan/skillgap/internal/db"
	"github.com/jonathan/skillgap/internal/metrics"
	"github.com/jonathan/skillgap/internal/schemas"
	"github.com/jonathan/skillgap/internal/types"
	"go.uber.org/zap"
)

// maxRequestBytes caps POST /analyses bodies
const maxRequestBytes = 1 << 20

// handleCreateAnalysis validates a request, analyzes it and optionally saves the result
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := schemas.ValidateAnalysisRequest(body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":   "request failed schema validation",
				"details": ve.Errors,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var req types.AnalysisRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "request", Message: err.Error()})
		return
	}
	if req.Save {
		if req.CandidateID == "" {
			s.errorFromErr(w, &ErrValidation{Field: "candidateId", Message: "required when save is true"})
			return
		}
		if s.store == nil {
			s.errorFromErr(w, &ErrStoreUnavailable{})
			return
		}
	}

	result := s.analyze(r.Context(), req)

	if !req.Save {
		s.jsonResponse(w, http.StatusOK, result)
		return
	}

	saved, err := s.store.SaveAnalysis(r.Context(), req.CandidateID, result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, saved)
}

// analyze serves from the cache when possible. Cache failures fall back to computing.
func (s *Server) analyze(ctx context.Context, req types.AnalysisRequest) *types.AnalysisResult {
	key, err := cache.Key(req, s.analyzer.Fingerprint())
	if err != nil {
		s.logger.Warn("failed to build cache key", zap.Error(err))
		key = ""
	}

	if key != "" {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("analysis cache read failed", zap.Error(err))
		}
		if ok {
			return cached
		}
	}

	start := time.Now()
	result := s.analyzer.Analyze(req)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysesTotal.WithLabelValues(result.Role).Inc()

	if key != "" {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.logger.Warn("analysis cache write failed", zap.Error(err))
		}
	}

	return result
}

// handleListAnalyses returns saved analysis summaries, newest first
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, &ErrStoreUnavailable{})
		return
	}

	limit := db.DefaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			s.errorFromErr(w, &ErrValidation{Field: "limit", Message: "must be an integer"})
			return
		}
		limit = parsed
	}

	summaries, err := s.store.ListAnalyses(r.Context(), r.URL.Query().Get("candidate_id"), db.ClampLimit(limit))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if summaries == nil {
		summaries = []db.SavedAnalysisSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": summaries,
		"count":    len(summaries),
	})
}

// parseAnalysisID reads and validates the {id} path value
func (s *Server) parseAnalysisID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Analysis ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return uuid.Nil, false
	}
	return id, true
}

// handleGetAnalysis returns one saved analysis with its full result
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, &ErrStoreUnavailable{})
		return
	}
	id, ok := s.parseAnalysisID(w, r)
	if !ok {
		return
	}

	saved, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if saved == nil {
		s.errorFromErr(w, &ErrAnalysisNotFound{ID: id.String()})
		return
	}

	s.jsonResponse(w, http.StatusOK, saved)
}

// handleDeleteAnalysis deletes a saved analysis
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, &ErrStoreUnavailable{})
		return
	}
	id, ok := s.parseAnalysisID(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.DeleteAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorFromErr(w, &ErrAnalysisNotFound{ID: id.String()})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillgap/internal/cache"
	"github.com/jonathan/skillgap/internal/db"
	"github.com/jonathan/skillgap/internal/gap"
	"github.com/jonathan/skillgap/internal/metrics"
	"github.com/jonathan/skillgap/internal/server/middleware"
	"github.com/jonathan/skillgap/internal/server/ratelimit"
	"github.com/jonathan/skillgap/internal/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// AnalysisStore persists analyses. *db.DB implements it.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, candidateID string, result *types.AnalysisResult) (*db.SavedAnalysis, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*db.SavedAnalysis, error)
	ListAnalyses(ctx context.Context, candidateID string, limit int) ([]db.SavedAnalysisSummary, error)
	DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error)
	Ping(ctx context.Context) error
}

// healthCheckTimeout bounds each dependency check made by /health
const healthCheckTimeout = 2 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	analyzer        *gap.Analyzer
	store           AnalysisStore
	cache           *cache.AnalysisCache
	logger          *zap.Logger
	rateLimiter     *ratelimit.Limiter
	shutdownTimeout time.Duration
}

// Config holds server configuration. Store and Cache are optional.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Analyzer        *gap.Analyzer
	Store           AnalysisStore
	Cache           *cache.AnalysisCache
	Logger          *zap.Logger
	RateLimit       *ratelimit.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	s := &Server{
		analyzer:        cfg.Analyzer,
		store:           cfg.Store,
		cache:           cfg.Cache,
		logger:          logger,
		rateLimiter:     ratelimit.NewLimiter(cfg.RateLimit),
		shutdownTimeout: shutdownTimeout,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes registers every endpoint on a fresh mux
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Role catalog
	mux.HandleFunc("GET /roles", s.handleListRoles)
	mux.HandleFunc("GET /roles/{name}", s.handleGetRole)

	// Skill market
	mux.HandleFunc("GET /market/skills", s.handleListMarketSkills)
	mux.HandleFunc("GET /market/skills/{name}", s.handleGetMarketSkill)

	// Analyses
	mux.HandleFunc("POST /analyses", s.handleCreateAnalysis)
	mux.HandleFunc("GET /analyses", s.handleListAnalyses)
	mux.HandleFunc("GET /analyses/{id}", s.handleGetAnalysis)
	mux.HandleFunc("DELETE /analyses/{id}", s.handleDeleteAnalysis)

	return mux
}

// Handler returns the routed API wrapped in the middleware chain
func (s *Server) Handler() http.Handler {
	return s.withRateLimit(middleware.RequestID(s.withLogging(s.withCORS(s.routes()))))
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	s.rateLimiter.Stop()

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)

		if !allowed {
			s.logger.Warn("rate limit exceeded",
				zap.String("client", clientID),
				zap.String("path", r.URL.Path),
				zap.Int("limit", info.Limit))
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging logs each request and counts it by route pattern
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := routeLabel(r)
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()

		requestID, _ := middleware.GetRequestID(r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", requestID),
		)
	})
}

// routeLabel returns the matched mux pattern without its method, keeping metric label values bounded
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return path
	}
	return r.Pattern
}

// handleHealth reports server health. Configured dependencies are pinged and any failure
// turns the response into a 503.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	resp := map[string]string{"status": "ok"}

	check := func(name string, ping func(context.Context) error) {
		if err := ping(ctx); err != nil {
			s.logger.Warn("health check failed", zap.String("dependency", name), zap.Error(err))
			resp[name] = "unavailable"
			status = http.StatusServiceUnavailable
			return
		}
		resp[name] = "ok"
	}
	if s.store != nil {
		check("database", s.store.Ping)
	}
	if s.cache != nil {
		check("cache", s.cache.Ping)
	}

	if status != http.StatusOK {
		resp["status"] = "degraded"
	}
	s.jsonResponse(w, status, resp)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errorFromErr maps a typed error to its status and writes it
func (s *Server) errorFromErr(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// Only RemoteAddr is used; forwarded headers are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

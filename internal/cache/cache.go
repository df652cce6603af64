// Package cache provides a Redis-backed cache for computed gap analyses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/skillgap/internal/metrics"
	"github.com/jonathan/skillgap/internal/types"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key this package writes
const KeyPrefix = "skillgap:analysis:"

// AnalysisCache stores AnalysisResults keyed by a hash of the request that produced them.
// A nil *AnalysisCache is valid and behaves as an always-empty cache.
type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New wraps an existing client
func New(client *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL, creates a client and pings it
func Connect(ctx context.Context, redisURL string, ttl time.Duration) (*AnalysisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return New(client, ttl), nil
}

// Close closes the Redis connection
func (c *AnalysisCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// cacheableRequest is the part of a request that determines the result, plus the
// version of the reference data it was computed against.
// Persistence fields are excluded so saved and unsaved runs share entries.
type cacheableRequest struct {
	DataVersion     string            `json:"dataVersion"`
	RoleName        string            `json:"roleName"`
	UserSkills      []types.UserSkill `json:"userSkills"`
	ExperienceLevel string            `json:"experienceLevel"`
	TargetSalary    string            `json:"targetSalary"`
	SalaryCurrency  string            `json:"salaryCurrency"`
}

// Key returns the cache key for a request. dataVersion identifies the role catalog and
// market table in use, so entries computed against other reference data are never served.
func Key(req types.AnalysisRequest, dataVersion string) (string, error) {
	data, err := json.Marshal(cacheableRequest{
		DataVersion:     dataVersion,
		RoleName:        req.RoleName,
		UserSkills:      req.UserSkills,
		ExperienceLevel: req.ExperienceLevel,
		TargetSalary:    req.TargetSalary,
		SalaryCurrency:  req.SalaryCurrency,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return KeyPrefix + hex.EncodeToString(sum[:]), nil
}

// Get returns the cached result for key. A miss is (nil, false, nil).
func (c *AnalysisCache) Get(ctx context.Context, key string) (*types.AnalysisResult, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheRequests.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.CacheRequests.WithLabelValues(metrics.CacheError).Inc()
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(val, &result); err != nil {
		metrics.CacheRequests.WithLabelValues(metrics.CacheError).Inc()
		return nil, false, fmt.Errorf("failed to decode cached analysis: %w", err)
	}
	metrics.CacheRequests.WithLabelValues(metrics.CacheHit).Inc()
	return &result, true, nil
}

// Set stores result under key with the configured TTL
func (c *AnalysisCache) Set(ctx context.Context, key string, result *types.AnalysisResult) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (c *AnalysisCache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Package ratelimit provides per-client request throttling backed by golang.org/x/time/rate.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// defaultBucket names the shared bucket for paths without an endpoint config
const defaultBucket = "*"

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type entry struct {
	limiter  *rate.Limiter
	limit    int
	lastSeen time.Time
}

// Limiter manages one token bucket per client and endpoint.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	config   *Config
	done     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		limiters: make(map[string]*entry),
		config:   config,
		done:     make(chan struct{}),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupRoutine(config.CleanupInterval)
	}

	return l
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	var key string
	if endpointConfig == nil {
		// Unconfigured paths share one bucket per client and method so that
		// varying the path never yields a fresh bucket.
		key = clientID + ":" + method + ":" + defaultBucket
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	} else {
		// Prefix configs share one bucket across every path they match
		key = clientID + ":" + method + ":" + endpointConfig.Path
	}

	if endpointConfig.Limit <= 0 || endpointConfig.Window <= 0 {
		return true, Info{Allowed: true}
	}

	now := time.Now()
	e := l.getEntry(key, endpointConfig, now)

	allowed := e.limiter.AllowN(now, 1)
	tokens := e.limiter.TokensAt(now)
	perSecond := float64(e.limiter.Limit())
	burst := e.limiter.Burst()

	info := Info{
		Allowed:   allowed,
		Limit:     e.limit,
		Remaining: max(0, int(tokens)),
		ResetTime: now,
	}
	if missing := float64(burst) - tokens; missing > 0 && perSecond > 0 {
		info.ResetTime = now.Add(time.Duration(missing / perSecond * float64(time.Second)))
	}
	if !allowed && perSecond > 0 {
		info.RetryAfter = time.Duration((1 - tokens) / perSecond * float64(time.Second))
	}

	return allowed, info
}

// getEntry gets or creates the limiter for key.
func (l *Limiter) getEntry(key string, cfg *EndpointConfig, now time.Time) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.limiters[key]
	if !ok {
		burst := cfg.Burst
		if burst <= 0 {
			burst = cfg.Limit
		}
		// rate.Limit is tokens per second
		r := rate.Limit(float64(cfg.Limit) / cfg.Window.Seconds())
		e = &entry{limiter: rate.NewLimiter(r, burst), limit: cfg.Limit}
		l.limiters[key] = e
	}
	e.lastSeen = now
	return e
}

// Len returns the number of tracked client buckets
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *Limiter) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Now())
		case <-l.done:
			return
		}
	}
}

// cleanup removes limiters idle for longer than the configured idle timeout.
func (l *Limiter) cleanup(now time.Time) {
	idle := l.config.IdleTimeout
	if idle <= 0 {
		idle = time.Hour
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) > idle {
			delete(l.limiters, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Limiter counts requests per client in a fixed one-minute window.
type Limiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
	now          func() time.Time

	// Configuration
	requestsPerMinute int
	cleanupInterval   time.Duration
	staleAfter        time.Duration
}

type clientInfo struct {
	windowStart time.Time
	lastRequest time.Time
	requests    int
	rejected    int
}

// Config holds rate limiter configuration
type Config struct {
	RequestsPerMinute int
	CleanupInterval   time.Duration
	// StaleAfter drops clients idle for longer than this. Zero means 10m.
	StaleAfter time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		RequestsPerMinute: 60,
		CleanupInterval:   5 * time.Minute,
		StaleAfter:        10 * time.Minute,
	}
}

// NewLimiter creates a new rate limiter and starts its cleanup loop.
// Call Stop to end it.
func NewLimiter(config Config) *Limiter {
	defaults := DefaultConfig()
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = defaults.RequestsPerMinute
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = defaults.CleanupInterval
	}
	if config.StaleAfter <= 0 {
		config.StaleAfter = defaults.StaleAfter
	}

	rl := &Limiter{
		clients:           make(map[string]*clientInfo),
		stopCleanup:       make(chan struct{}),
		now:               time.Now,
		requestsPerMinute: config.RequestsPerMinute,
		cleanupInterval:   config.CleanupInterval,
		staleAfter:        config.StaleAfter,
	}
	go rl.startCleanup()
	return rl
}

// WithClock replaces the time source. Tests only.
func (rl *Limiter) WithClock(now func() time.Time) *Limiter {
	rl.mu.Lock()
	rl.now = now
	rl.mu.Unlock()
	return rl
}

// Allow checks if a request from the given client should be allowed
func (rl *Limiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	client, exists := rl.clients[clientIP]

	if !exists {
		rl.clients[clientIP] = &clientInfo{
			windowStart: now,
			lastRequest: now,
			requests:    1,
		}
		return true
	}

	client.lastRequest = now

	// Start a new window once a minute has passed
	if now.Sub(client.windowStart) >= time.Minute {
		client.windowStart = now
		client.requests = 1
		return true
	}

	if client.requests >= rl.requestsPerMinute {
		client.rejected++
		return false
	}
	client.requests++
	return true
}

// RetryAfter returns how long clientIP has to wait for a new window.
func (rl *Limiter) RetryAfter(clientIP string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, ok := rl.clients[clientIP]
	if !ok {
		return 0
	}
	wait := time.Minute - rl.now().Sub(client.windowStart)
	if wait < 0 {
		return 0
	}
	return wait
}

// startCleanup runs periodic cleanup to remove stale client entries
func (rl *Limiter) startCleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.CleanStale()
		case <-rl.stopCleanup:
			return
		}
	}
}

// CleanStale removes clients idle for longer than StaleAfter and returns
// how many were dropped.
func (rl *Limiter) CleanStale() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.staleAfter)
	removed := 0
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// ActiveClients returns the number of currently tracked clients
func (rl *Limiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Rejected returns how many requests were refused for clientIP in its
// current tracking lifetime.
func (rl *Limiter) Rejected(clientIP string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if c, ok := rl.clients[clientIP]; ok {
		return c.rejected
	}
	return 0
}

// Stop gracefully shuts down the rate limiter cleanup goroutine
func (rl *Limiter) Stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

// Middleware creates HTTP middleware for rate limiting. Only the methods
// listed are counted; no methods means every request.
func (rl *Limiter) Middleware(extractIP func(*http.Request) string, onLimit func(http.ResponseWriter, *http.Request), methods ...string) func(http.Handler) http.Handler {
	limited := make(map[string]bool, len(methods))
	for _, m := range methods {
		limited[m] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(limited) > 0 && !limited[r.Method] {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := extractIP(r)
			if !rl.Allow(clientIP) {
				secs := int(rl.RetryAfter(clientIP).Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				if onLimit != nil {
					onLimit(w, r)
				} else {
					http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

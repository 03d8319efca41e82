// Package cache provides the in-process LRU used for login sessions and
// a manager that periodically drops expired entries.
package cache

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner is a cache that can drop its expired entries.
type Cleaner interface {
	CleanExpired() int
}

// Manager runs periodic cleanup for every registered cache.
type Manager struct {
	caches []namedCleaner
}

type namedCleaner struct {
	name string
	c    Cleaner
}

func NewManager() *Manager {
	return &Manager{}
}

// Register adds a cache to the cleanup cycle. Call before Run.
func (m *Manager) Register(name string, c Cleaner) {
	m.caches = append(m.caches, namedCleaner{name: name, c: c})
}

// CleanOnce cleans every registered cache and returns the total removed.
func (m *Manager) CleanOnce() int {
	total := 0
	for _, nc := range m.caches {
		n := nc.c.CleanExpired()
		if n > 0 {
			slog.Debug("Expired cache entries removed", "cache", nc.name, "count", n)
		}
		total += n
	}
	return total
}

// Run cleans on every tick until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CleanOnce()
		case <-ctx.Done():
			return nil
		}
	}
}

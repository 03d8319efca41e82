package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"smartspend/internal/cache"
)

// Sessions maps opaque bearer tokens to usernames.
type Sessions struct {
	tokens *cache.LRUCache[string]
}

func NewSessions(maxEntries int, ttl time.Duration) *Sessions {
	return &Sessions{tokens: cache.NewLRUCache[string](maxEntries, ttl)}
}

// WithClock replaces the time source of the underlying cache.
func (s *Sessions) WithClock(now func() time.Time) *Sessions {
	s.tokens.WithClock(now)
	return s
}

// Create issues a new token for user.
func (s *Sessions) Create(user string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(b)
	s.tokens.Set(token, user)
	return token, nil
}

// Lookup returns the user behind token if it is still valid.
func (s *Sessions) Lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	return s.tokens.Get(token)
}

// Revoke drops token and reports whether it existed.
func (s *Sessions) Revoke(token string) bool {
	return s.tokens.Delete(token)
}

// CleanExpired implements cache.Cleaner.
func (s *Sessions) CleanExpired() int {
	return s.tokens.CleanExpired()
}

func (s *Sessions) Len() int {
	return s.tokens.Size()
}

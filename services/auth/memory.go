package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocations is the process-local revocation set used when no redis
// is configured.
type MemoryRevocations struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{tokens: map[string]time.Time{}, now: time.Now}
}

func (m *MemoryRevocations) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	// sweep expired entries on write so the set stays bounded
	for t, until := range m.tokens {
		if !until.After(now) {
			delete(m.tokens, t)
		}
	}
	m.tokens[token] = now.Add(ttl)
	return nil
}

func (m *MemoryRevocations) IsRevoked(ctx context.Context, token string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	until, ok := m.tokens[token]
	return ok && until.After(m.now()), nil
}

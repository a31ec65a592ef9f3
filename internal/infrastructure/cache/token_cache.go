package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
)

// MemoryTokenCache is a process-local supplier token cache guarded by a mutex.
// Suitable for single-instance deployments.
type MemoryTokenCache struct {
	mu    sync.RWMutex
	token *supplier.Token
}

// NewMemoryTokenCache creates a new MemoryTokenCache
func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{}
}

// Get returns the cached token, or nil when none is cached or the cached
// token has fully expired
func (c *MemoryTokenCache) Get(ctx context.Context) (*supplier.Token, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == nil || !c.token.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	tok := *c.token
	return &tok, nil
}

// Set stores the token
func (c *MemoryTokenCache) Set(ctx context.Context, token *supplier.Token) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token == nil {
		c.token = nil
		return nil
	}
	tok := *token
	c.token = &tok
	return nil
}

// Ensure MemoryTokenCache implements supplier.TokenCache
var _ supplier.TokenCache = (*MemoryTokenCache)(nil)

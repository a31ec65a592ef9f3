package supplier

import (
	"context"
	"time"
)

// ReuseMargin is the safety window subtracted from a token's expiry when
// deciding whether it can be reused. A token expiring within the margin is
// treated as already expired so a request in flight never carries a dead token.
const ReuseMargin = 30 * time.Second

// FallbackTokenTTL is assumed when the auth endpoint does not report an
// expiry for the issued token
const FallbackTokenTTL = 5 * time.Minute

// Token is a supplier access token with its absolute expiry
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Usable reports whether the token can still be attached to a request
// starting at the given instant
func (t *Token) Usable(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	return t.ExpiresAt.After(now.Add(ReuseMargin))
}

// TokenCache stores the current supplier token between requests. The memory
// implementation is per-process; the redis implementation shares one token
// across instances so each replica does not burn its own credential exchange.
type TokenCache interface {
	// Get returns the cached token, or nil when none is cached. Backend
	// failures are reported as errors and treated by callers as a miss.
	Get(ctx context.Context) (*Token, error)

	// Set stores the token until its expiry
	Set(ctx context.Context, token *Token) error
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
	"github.com/redis/go-redis/v9"
)

const tokenKey = "supplier:avasam:token"

// RedisTokenCache shares one supplier token across instances, so each replica
// does not spend a separate credential exchange against the supplier.
type RedisTokenCache struct {
	client *redis.Client
}

// NewRedisTokenCache creates a new RedisTokenCache
func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

// Get returns the cached token, or nil on a miss
func (c *RedisTokenCache) Get(ctx context.Context) (*supplier.Token, error) {
	data, err := c.client.Get(ctx, tokenKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read supplier token from redis: %w", err)
	}

	var token supplier.Token
	if err := json.Unmarshal(data, &token); err != nil {
		// A corrupt entry is treated as a miss so the caller re-authenticates
		return nil, nil
	}
	return &token, nil
}

// Set stores the token with a TTL matching its expiry
func (c *RedisTokenCache) Set(ctx context.Context, token *supplier.Token) error {
	if token == nil {
		return c.client.Del(ctx, tokenKey).Err()
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal supplier token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := c.client.Set(ctx, tokenKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write supplier token to redis: %w", err)
	}
	return nil
}

// Ensure RedisTokenCache implements supplier.TokenCache
var _ supplier.TokenCache = (*RedisTokenCache)(nil)

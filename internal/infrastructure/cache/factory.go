package cache

import (
	"fmt"

	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
	"github.com/Quiggy85/itstheseason/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// NewTokenCache builds the configured token cache backend
func NewTokenCache(cfg *config.Config) (supplier.TokenCache, error) {
	switch cfg.Cache.TokenBackend {
	case "memory":
		return NewMemoryTokenCache(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisTokenCache(client), nil
	default:
		return nil, fmt.Errorf("unknown token cache backend: %q", cfg.Cache.TokenBackend)
	}
}

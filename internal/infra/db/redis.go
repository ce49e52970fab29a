// Package db provides storage connection management.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/krigzlist/backend/config"
)

// NewRedisClient creates a Redis client for the snapshot store and verifies
// the connection. An unreachable Redis is returned anyway: the list runs
// from memory and persistence recovers when the store comes back.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable at startup, persistence degraded", "error", err)
	} else {
		slog.Info("Redis connection established", "db", opts.DB)
	}

	return client, nil
}

// RedisHealthChecker returns a connectivity check for the given client.
func RedisHealthChecker(client *redis.Client) func() bool {
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}

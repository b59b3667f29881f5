// internal/common/database/redis.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tribunal-workers/internal/common/config"
)

// RedisClient wraps the Redis client
type RedisClient struct {
	Client *redis.Client
}

func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &RedisClient{Client: rdb}, nil
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// Guard marks keys as done exactly once within a TTL. Workers use it to make
// job retries idempotent.
type Guard struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewGuard(client redis.Cmdable, prefix string, ttl time.Duration) *Guard {
	return &Guard{client: client, prefix: prefix, ttl: ttl}
}

func (g *Guard) Key(id string) string {
	return g.prefix + ":" + id
}

// Acquire returns true for the first caller of id and false while the key is
// held.
func (g *Guard) Acquire(ctx context.Context, id string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.Key(id), id, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis guard %s: %w", g.Key(id), err)
	}
	return ok, nil
}

// Release drops the key so a failed write can be retried.
func (g *Guard) Release(ctx context.Context, id string) error {
	if err := g.client.Del(ctx, g.Key(id)).Err(); err != nil {
		return fmt.Errorf("redis guard release %s: %w", g.Key(id), err)
	}
	return nil
}

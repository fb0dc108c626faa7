package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a thin wrapper over redis.Client that degrades to a no-op cache:
// a nil client, an unreachable server, or any redis error all behave like a
// cache miss. SQLite remains the source of truth either way.
type Client struct {
	client *redis.Client
}

// New creates a redis-backed cache client.
func New(addr, password string, db int) *Client {
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the cached value, or nil on miss or redis failure.
func (c *Client) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return res
}

// Set stores a value with a TTL. Redis errors are swallowed.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
}

// Invalidate drops the given keys. Redis errors are swallowed.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	_ = c.client.Del(ctx, keys...).Err()
}

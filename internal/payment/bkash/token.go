package bkash

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache holds the gateway auth token between requests. Implementations
// return an empty string on a miss, not an error, so the client can refresh
// lazily. Tokens nominally last 60 minutes; callers store them with a 45
// minute soft expiry to stay clear of the edge.
type TokenCache interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string, ttl time.Duration) error
}

// MemoryTokenCache keeps the token in process memory. Suitable for a single
// instance; concurrent processes each hold their own token lifetime.
type MemoryTokenCache struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{}
}

func (c *MemoryTokenCache) Get(ctx context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" || time.Now().After(c.expiresAt) {
		return "", nil
	}
	return c.token, nil
}

func (c *MemoryTokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.expiresAt = time.Now().Add(ttl)
	return nil
}

// RedisTokenCache shares one token across all instances, so horizontally
// scaled processes do not each burn a grant.
type RedisTokenCache struct {
	rdb *redis.Client
	key string
}

func NewRedisTokenCache(rdb *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{rdb: rdb, key: "bkash:token"}
}

func (c *RedisTokenCache) Get(ctx context.Context) (string, error) {
	token, err := c.rdb.Get(ctx, c.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (c *RedisTokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.key, token, ttl).Err()
}

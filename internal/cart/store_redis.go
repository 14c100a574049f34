package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore serializes the entire cart as one JSON value per session key.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := s.rdb.Get(ctx, key(sessionID)).Bytes()
	if err == redis.Nil {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, err
	}
	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, c Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sessionID), raw, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID)).Err()
}

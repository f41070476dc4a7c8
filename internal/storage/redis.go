// README: KV backed by Redis strings.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tripguide:"

type RedisKV struct {
	redis *redis.Client
}

func NewRedisKV(redis *redis.Client) *RedisKV {
	return &RedisKV{redis: redis}
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.redis.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// Set stores the value without expiry; records are durable like browser local storage.
func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := s.redis.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindowStore implements the same fixed-window semantics as
// WindowStore on top of redis INCR/EXPIRE, so the budget is shared
// across server instances.
type RedisWindowStore struct {
	client *redis.Client
	ctx    context.Context
	prefix string
	max    int
	window time.Duration
}

func NewRedisWindowStore(client *redis.Client, ctx context.Context, prefix string, max int, window time.Duration) *RedisWindowStore {
	return &RedisWindowStore{
		client: client,
		ctx:    ctx,
		prefix: prefix,
		max:    max,
		window: window,
	}
}

func (s *RedisWindowStore) Allow(key string) bool {
	redisKey := fmt.Sprintf("%s:%s", s.prefix, key)

	count, err := s.client.Incr(s.ctx, redisKey).Result()
	if err != nil {
		// Fail open: an unreachable redis must not take the
		// contact form down with it.
		log.Printf("Rate limit store error: %v", err)
		return true
	}

	if count == 1 {
		if err := s.client.Expire(s.ctx, redisKey, s.window).Err(); err != nil {
			log.Printf("Rate limit store error: %v", err)
		}
	}

	return count <= int64(s.max)
}

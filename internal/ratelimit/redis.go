package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// counter is the subset of redis.Cmdable the fixed-window store needs.
type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// redisWindow is a fixed-window counter shared by every process that talks
// to the same Redis.
type redisWindow struct {
	client counter
	limit  int
	window time.Duration
}

// NewRedis allows limit requests per key in each window, counted in Redis.
func NewRedis(client redis.Cmdable, limit int, w time.Duration) (Store, error) {
	if c, ok := client.(*redis.Client); client == nil || (ok && c == nil) {
		return nil, ErrNilClient
	}
	s, err := newRedisWindow(client, limit, w)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newRedisWindow(client counter, limit int, w time.Duration) (*redisWindow, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if w <= 0 {
		return nil, ErrInvalidWindow
	}
	return &redisWindow{client: client, limit: limit, window: w}, nil
}

func (s *redisWindow) Allow(ctx context.Context, key string) (bool, error) {
	k := redisKeyPrefix + key

	n, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit: incr %s: %w", k, err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, k, s.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit: expire %s: %w", k, err)
		}
	}
	return n <= int64(s.limit), nil
}

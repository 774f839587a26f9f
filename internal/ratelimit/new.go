package ratelimit

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"campus-task-assistant/config"
)

// New builds the Store selected by cfg.Strategy. It returns nil when rate
// limiting is disabled. rdb is only used by the redis strategy.
func New(cfg config.RateLimitConfig, rdb redis.Cmdable) (Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Strategy {
	case config.RateLimitFixedWindow, "":
		return NewFixedWindow(cfg.Limit, cfg.Window)
	case config.RateLimitTokenBucket:
		return NewTokenBucket(cfg.Limit)
	case config.RateLimitRedis:
		return NewRedis(rdb, cfg.Limit, cfg.Window)
	default:
		return nil, fmt.Errorf("ratelimit: unknown strategy %q", cfg.Strategy)
	}
}

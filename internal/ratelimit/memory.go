package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const maxTrackedKeys = 10000

type window struct {
	count   int
	resetAt time.Time
}

// fixedWindow counts requests per key and resets the counter once the
// window elapses. Idle keys expire from the LRU after one window.
type fixedWindow struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, *window]
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewFixedWindow allows limit requests per key in each window.
func NewFixedWindow(limit int, w time.Duration) (Store, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if w <= 0 {
		return nil, ErrInvalidWindow
	}
	return &fixedWindow{
		entries: expirable.NewLRU[string, *window](maxTrackedKeys, nil, w),
		limit:   limit,
		window:  w,
		now:     time.Now,
	}, nil
}

func (s *fixedWindow) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries.Get(key)
	if !ok || !now.Before(e.resetAt) {
		s.entries.Add(key, &window{count: 1, resetAt: now.Add(s.window)})
		return true, nil
	}
	e.count++
	return e.count <= s.limit, nil
}

// tokenBucket smooths requests to perMinute with a burst of a tenth of that.
type tokenBucket struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

// NewTokenBucket refills perMinute tokens per minute for each key.
func NewTokenBucket(perMinute int) (Store, error) {
	if perMinute <= 0 {
		return nil, ErrInvalidLimit
	}
	burst := perMinute / 10
	if burst < 1 {
		burst = 1
	}
	return &tokenBucket{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedKeys, nil, 5*time.Minute),
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}, nil
}

func (s *tokenBucket) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	limiter, ok := s.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(s.rate, s.burst)
		s.limiters.Add(key, limiter)
	}
	s.mu.Unlock()

	return limiter.Allow(), nil
}

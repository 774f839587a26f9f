package ratelimit

import (
	"context"
	"errors"
)

// Store decides whether a caller identified by key may make another request.
// Implementations are safe for concurrent use.
type Store interface {
	Allow(ctx context.Context, key string) (bool, error)
}

var (
	ErrInvalidLimit  = errors.New("ratelimit: limit must be positive")
	ErrInvalidWindow = errors.New("ratelimit: window must be positive")
	ErrNilClient     = errors.New("ratelimit: redis client is nil")
)

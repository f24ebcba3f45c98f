package service

import (
	"context"
	"time"
)

// RateLimiter enforces a sliding-window request budget per key.
type RateLimiter interface {
	// Allow records one attempt for key and reports whether it fits into limit attempts per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

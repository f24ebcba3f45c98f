package ratelimit

import (
	"context"
	"sync"
	"time"

	"canteen/internal/domain/service"
)

// sweepEvery is the number of Allow calls between sweeps of idle keys.
const sweepEvery = 1024

// memoryLimiter keeps a sliding log of attempt times per key in process memory.
type memoryLimiter struct {
	now func() time.Time

	mu       sync.Mutex
	attempts map[string][]time.Time
	windows  map[string]time.Duration
	calls    int
}

// NewMemoryLimiter creates an in-process sliding-window limiter.
func NewMemoryLimiter() service.RateLimiter {
	return &memoryLimiter{
		now:      time.Now,
		attempts: make(map[string][]time.Time),
		windows:  make(map[string]time.Duration),
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls++
	if l.calls%sweepEvery == 0 {
		l.sweep(now)
	}

	recent := prune(l.attempts[key], now.Add(-window))
	l.windows[key] = window
	if len(recent) >= limit {
		l.attempts[key] = recent

		return false, nil
	}
	l.attempts[key] = append(recent, now)

	return true, nil
}

func (l *memoryLimiter) sweep(now time.Time) {
	for key, times := range l.attempts {
		if len(prune(times, now.Add(-l.windows[key]))) == 0 {
			delete(l.attempts, key)
			delete(l.windows, key)
		}
	}
}

// prune drops attempts at or before cutoff. times is in ascending order.
func prune(times []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}

	return times[i:]
}

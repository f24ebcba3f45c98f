package ratelimit

import (
	"context"
	"strconv"
	"time"

	"canteen/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "canteen:ratelimit:"

// redisLimiter implements a sliding window on a Redis sorted set per key, scored by the
// attempt time, so every API instance shares one budget.
type redisLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisLimiter creates a Redis-backed sliding-window limiter.
func NewRedisLimiter(client *redis.Client) service.RateLimiter {
	return &redisLimiter{client: client, now: time.Now}
}

// Allow counts the attempts still inside the window and records this one only if it fits.
// A rejected attempt does not extend the window.
func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := keyPrefix + key
	now := l.now()
	windowStart := now.Add(-window).UnixNano()

	var count *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
		count = pipe.ZCard(ctx, redisKey)

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to read rate limit window")
	}
	if count.Val() >= int64(limit) {
		return false, nil
	}

	_, err = l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
		pipe.Expire(ctx, redisKey, window+time.Minute)

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to record rate limit attempt")
	}

	return true, nil
}

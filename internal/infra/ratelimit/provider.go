// Package ratelimit provides the sliding-window limiters guarding the sign-in and sign-up
// endpoints.
package ratelimit

import (
	"log/slog"
	"strings"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the rate limiter, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewRateLimiter selects the limiter store named by configuration. The memory store is the
// default.
func NewRateLimiter(params Params) (service.RateLimiter, error) {
	store := constants.StoreMemory
	if cfg := params.Config.RateLimit; cfg != nil && cfg.Store != "" {
		store = strings.ToLower(cfg.Store)
	}

	switch store {
	case constants.StoreMemory:
		params.Logger.Info("Rate limiter selected", slog.String("store", store))

		return NewMemoryLimiter(), nil
	case constants.StoreRedis:
		if params.Redis == nil {
			return nil, errors.New("redis rate limiter requires redis.addr")
		}
		params.Logger.Info("Rate limiter selected", slog.String("store", store))

		return NewRedisLimiter(params.Redis), nil
	default:
		return nil, errors.Errorf("unsupported rate limit store: %s", store)
	}
}

// Package inbox provides the per-user notification inbox stores.
package inbox

import (
	"log/slog"
	"strings"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/gormstore"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const defaultMaxItems = 50

// Params holds dependencies for the inbox store, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
	DB     *gorm.DB      `optional:"true"`
}

// NewInboxRepository selects the inbox store named by configuration. The memory store is
// the default.
func NewInboxRepository(params Params) (repository.InboxRepository, error) {
	store := constants.StoreMemory
	maxItems := defaultMaxItems
	if cfg := params.Config.Inbox; cfg != nil {
		if cfg.Store != "" {
			store = strings.ToLower(cfg.Store)
		}
		if cfg.MaxItems > 0 {
			maxItems = cfg.MaxItems
		}
	}

	var inbox repository.InboxRepository
	switch store {
	case constants.StoreMemory:
		inbox = NewMemoryStore(maxItems)
	case constants.StoreRedis:
		if params.Redis == nil {
			return nil, errors.New("redis inbox store requires redis.addr")
		}
		inbox = NewRedisStore(params.Redis, maxItems)
	case constants.StoreDatabase:
		if params.DB == nil {
			return nil, errors.New("database inbox store requires the local backend")
		}
		inbox = gormstore.NewInboxRepository(params.DB, maxItems)
	default:
		return nil, errors.Errorf("unsupported inbox store: %s", store)
	}

	params.Logger.Info("Inbox store selected", slog.String("store", store), slog.Int("maxItems", maxItems))

	return inbox, nil
}

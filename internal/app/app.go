// Package app assembles the fx options shared by the canteen binaries.
package app

import (
	"context"
	"strings"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/service"
	"canteen/internal/infra/auth"
	"canteen/internal/infra/cache"
	"canteen/internal/infra/firebase"
	"canteen/internal/infra/inbox"
	logs "canteen/internal/infra/log"
	"canteen/internal/infra/mail"
	"canteen/internal/infra/persistence/firestoredb"
	"canteen/internal/infra/persistence/gormstore"
	"canteen/internal/infra/pubsub"
	"canteen/internal/infra/qrcode"
	"canteen/internal/infra/ratelimit"
	"canteen/internal/infra/sanitize"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

// Infra provides logging, the optional Redis client and the mailer.
func Infra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
			cache.NewRedisClient,
			mail.NewMailer,
		),
	)
}

// Backend provides the document repositories and the identity provider of the configured backend.
func Backend(cfg *config.Config) (fx.Option, error) {
	switch strings.ToLower(cfg.Backend.Provider) {
	case constants.BackendFirebase:
		return fx.Options(
			fx.Provide(
				firebase.NewApp,
				firebase.NewAuthClient,
				firebase.NewFirestoreClient,
				firestoredb.NewUserRepository,
				firestoredb.NewMenuRepository,
				firestoredb.NewOrderRepository,
				firestoredb.NewTicketRepository,
				auth.NewFirebaseProvider,
			),
		), nil
	case constants.BackendLocal, "":
		return fx.Options(
			fx.Provide(
				gormstore.New,
				gormstore.NewBroadcaster,
				gormstore.NewUserRepository,
				gormstore.NewMenuRepository,
				gormstore.NewOrderRepository,
				gormstore.NewTicketRepository,
				gormstore.NewAccountRepository,
				auth.NewJWTService,
				auth.NewBcryptHasher,
				auth.NewLocalProvider,
			),
		), nil
	default:
		return nil, errors.Errorf("unsupported backend provider: %s", cfg.Backend.Provider)
	}
}

// Stores provides the per-process stores and helpers the use cases depend on.
func Stores() fx.Option {
	return fx.Provide(
		inbox.NewInboxRepository,
		ratelimit.NewRateLimiter,
		sanitize.NewSanitizer,
		pubsub.NewEventPublisher,
		newQRCodeService,
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil || cfg.QRCode.Size <= 0 {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

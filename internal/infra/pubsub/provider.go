// Package pubsub hands notification events from the API to the push worker, either through
// Google Cloud Pub/Sub or, in development, by posting push envelopes straight to the worker.
package pubsub

import (
	"context"
	"log/slog"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inboxOnlyPublisher drops events. Customers then see notifications in the inbox only.
type inboxOnlyPublisher struct {
	logger *slog.Logger
}

func (p *inboxOnlyPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Push delivery disabled, notification stays in the inbox",
		slog.String("notification_id", event.NotificationID),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *inboxOnlyPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher named by pubsub.provider and closes it on shutdown.
// An empty provider disables push delivery.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Push delivery disabled", slog.String("reason", "pubsub.provider is empty"))

		return &inboxOnlyPublisher{logger: params.Logger}, nil
	}

	if err := checkPublisherConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := buildPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrapf(publisher.Close(), "failed to close %s publisher", cfg.Provider)
		},
	})

	return publisher, nil
}

func checkPublisherConfig(cfg *config.PubSubConfig) error {
	var missing string
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			missing = "pubsub.localEndpoint"
		}
	case constants.PubSubProviderGoogle:
		switch {
		case cfg.ProjectID == "":
			missing = "pubsub.projectId"
		case cfg.TopicID == "":
			missing = "pubsub.topicId"
		}
	default:
		return errors.Errorf("unsupported pubsub provider %q", cfg.Provider)
	}
	if missing != "" {
		return errors.Errorf("%s is required for the %s pubsub provider", missing, cfg.Provider)
	}

	return nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Posting notification events to the worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	logger.Info("Publishing notification events to Google Pub/Sub",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

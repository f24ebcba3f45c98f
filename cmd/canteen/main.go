package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"canteen/config"
	"canteen/internal/app"
	"canteen/internal/delivery"
	"canteen/internal/delivery/api"
	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/router/handler"
	"canteen/internal/delivery/api/sse"
	"canteen/internal/usecase"
	"canteen/internal/usecase/analytics"
	"canteen/internal/usecase/impl"
	"canteen/internal/usecase/notify"
	"canteen/internal/usecase/session"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	backend, err := app.Backend(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fx.New(
		app.Infra(cfg),
		backend,
		app.Stores(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			analytics.NewEngine,
			notify.NewFactory,
			session.NewDeriverFactory,
			fx.Annotate(
				session.NewRegistry,
				fx.As(new(usecase.SessionRegistry)),
			),
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewUsersService,
			impl.NewMenuService,
			impl.NewOrderService,
			impl.NewNotificationService,
			impl.NewSupportService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			sse.NewStreamer,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewMenuHandler,
			handler.NewOrderHandler,
			handler.NewNotificationHandler,
			handler.NewSupportHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

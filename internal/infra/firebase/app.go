// Package firebase initializes the Firebase Admin SDK clients shared by the firebase backend and the worker.
package firebase

import (
	"context"
	"log/slog"

	"canteen/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for the Firebase app, injected by Fx.
type AppParams struct {
	fx.In

	Config *config.Config
}

// NewApp initializes the Firebase app from the configured service account.
// Without a credentials path the SDK falls back to application default credentials.
func NewApp(params AppParams) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// NewAuthClient returns the Firebase Authentication admin client.
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// NewMessagingClient returns the Firebase Cloud Messaging client.
func NewMessagingClient(app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// FirestoreParams holds dependencies for the Firestore client, injected by Fx.
type FirestoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	App    *firebase.App
	Logger *slog.Logger
}

// NewFirestoreClient returns the Firestore client and closes it when the application stops.
func NewFirestoreClient(params FirestoreParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

// Module provides every Firebase client.
var Module = fx.Options(
	fx.Provide(
		NewApp,
		NewAuthClient,
		NewMessagingClient,
		NewFirestoreClient,
	),
)

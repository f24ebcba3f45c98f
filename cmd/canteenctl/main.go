// Command canteenctl bootstraps administrators and the menu catalog.
package main

import (
	"context"
	"fmt"
	"os"

	"canteen/config"
	"canteen/internal/app"
	"canteen/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "canteenctl",
		Short:         "Administer the canteen backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAdminCommand(), newMenuCommand())

	return root
}

// withBackend starts the configured backend, fills targets and runs fn before stopping it again.
func withBackend(ctx context.Context, fn func() error, targets ...any) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	backend, err := app.Backend(cfg)
	if err != nil {
		return err
	}

	fxApp := fx.New(
		app.Infra(cfg),
		backend,
		fx.Provide(impl.NewMenuService),
		fx.NopLogger,
		fx.Populate(targets...),
	)
	if err := fxApp.Err(); err != nil {
		return errors.Wrap(err, "failed to assemble backend")
	}

	if err := fxApp.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start backend")
	}
	defer func() {
		_ = fxApp.Stop(context.WithoutCancel(ctx))
	}()

	return fn()
}

package main

import (
	"context"
	"log/slog"

	"bizease/config"
	logs "bizease/internal/infra/log"
	"bizease/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

// withApp starts a short-lived container, runs fn and stops it again.
// Values fn needs are pulled out of the container with fx.Populate in opts.
func withApp(ctx context.Context, opts fx.Option, fn func(ctx context.Context) error) error {
	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		opts,
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Error("Failed to stop application", slog.Any("error", err))
		}
	}()

	return fn(ctx)
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"bizease/config"
	"bizease/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}

				return printVersion(cmd, m)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Revert migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}

			return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
				if err := m.Down(steps); err != nil {
					return err
				}

				return printVersion(cmd, m)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
				return printVersion(cmd, m)
			})
		},
	})

	return cmd
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(args[0])
	if err != nil || steps <= 0 {
		return 0, errors.Errorf("steps must be a positive integer, got %q", args[0])
	}

	return steps, nil
}

// withMigrator opens the database without the start-up migration so down and version see the real state.
func withMigrator(ctx context.Context, fn func(m *migrations.Migrator) error) error {
	var db *gorm.DB

	opts := fx.Options(
		fx.Decorate(disableAutoMigrate),
		fx.Populate(&db),
	)

	return withApp(ctx, opts, func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get sql.DB")
		}

		// The pool is closed by the application on stop, so the migrator is not closed here.
		m, err := migrations.NewMigrator(sqlDB)
		if err != nil {
			return err
		}

		return fn(m)
	})
}

func disableAutoMigrate(cfg *config.Config) *config.Config {
	cfg.Database.AutoMigrate = false

	return cfg
}

func printVersion(cmd *cobra.Command, m *migrations.Migrator) error {
	version, dirty, ok, err := m.Version()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")

		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)

	return nil
}

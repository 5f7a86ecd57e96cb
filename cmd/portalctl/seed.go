package main

import (
	"context"
	"fmt"

	"bizease/internal/infra/auth"
	"bizease/internal/infra/persistence/postgres"
	"bizease/internal/usecase"
	"bizease/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func seedCmd() *cobra.Command {
	opts := usecase.SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users, catalog entries, applications and compliances",
		Long: `Load a demo data set into an empty portal.

Users are matched by email, so running seed twice does not duplicate them.
Catalog entries are only created when no approval type exists yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var seeder usecase.SeedUsecase

			app := fx.Options(
				fx.Provide(
					postgres.NewUserRepository,
					postgres.NewApprovalTypeRepository,
					postgres.NewSchemeRepository,
					postgres.NewNewsRepository,
					postgres.NewTransactionManager,
					auth.NewBcryptHasher,
					impl.NewSeedService,
				),
				fx.Populate(&seeder),
			)

			return withApp(cmd.Context(), app, func(ctx context.Context) error {
				summary, err := seeder.Seed(ctx, opts)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(),
					"created %d users, %d profiles, %d approval types, %d schemes, %d news, %d applications, %d documents, %d compliances\n",
					summary.Users, summary.Profiles, summary.ApprovalTypes, summary.Schemes, summary.News,
					summary.Applications, summary.Documents, summary.Compliances)

				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.AdminEmail, "admin-email", "admin@bizease.local", "email of the administrator account")
	flags.StringVar(&opts.AdminPassword, "admin-password", "admin12345", "password of the administrator account")
	flags.IntVar(&opts.BusinessUsers, "businesses", 5, "number of demo business accounts")
	flags.StringVar(&opts.BusinessPassword, "business-password", "password123", "password of every demo business account")

	return cmd
}

package main

import (
	"context"
	"fmt"

	"bizease/internal/domain/service"
	"bizease/internal/infra/mail"
	"bizease/internal/infra/metrics"
	"bizease/internal/infra/persistence/postgres"
	"bizease/internal/infra/pubsub"
	"bizease/internal/usecase"
	"bizease/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func remindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Compliance reminder tasks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sweep",
		Short: "Send every due compliance reminder once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var complianceUC usecase.ComplianceUsecase

			app := fx.Options(
				fx.Provide(
					postgres.NewBusinessRepository,
					postgres.NewComplianceRepository,
					postgres.NewUserRepository,
					mail.NewMailer,
					pubsub.NewEventPublisher,
					metrics.New,
					func(m *metrics.Metrics) service.WorkflowMetrics {
						return m
					},
					impl.NewComplianceService,
				),
				fx.Populate(&complianceUC),
			)

			return withApp(cmd.Context(), app, func(ctx context.Context) error {
				result, err := complianceUC.SweepAllReminders(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "candidates %d, sent %d, skipped %d, failed %d\n",
					result.Candidates, result.Sent, result.Skipped, result.Failed)

				return nil
			})
		},
	})

	return cmd
}

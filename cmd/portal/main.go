package main

import (
	"context"
	"log/slog"
	"os"

	"bizease/config"
	"bizease/internal/delivery"
	"bizease/internal/delivery/api"
	apimiddleware "bizease/internal/delivery/api/middleware"
	"bizease/internal/delivery/api/router/handler"
	"bizease/internal/delivery/scheduler"
	"bizease/internal/domain/service"
	"bizease/internal/infra/auth"
	logs "bizease/internal/infra/log"
	"bizease/internal/infra/mail"
	"bizease/internal/infra/metrics"
	"bizease/internal/infra/persistence/postgres"
	"bizease/internal/infra/pubsub"
	"bizease/internal/infra/qrcode"
	"bizease/internal/infra/storage"
	"bizease/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		// The usecases only see the workflow counters
		func(m *metrics.Metrics) service.WorkflowMetrics {
			return m
		},
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBusinessRepository,
			postgres.NewApprovalTypeRepository,
			postgres.NewSchemeRepository,
			postgres.NewNewsRepository,
			postgres.NewApplicationRepository,
			postgres.NewDocumentRepository,
			postgres.NewComplianceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewFileStorage,
			mail.NewMailer,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewApplicationService,
			impl.NewDocumentService,
			impl.NewComplianceService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewDashboardHandler,
			handler.NewCatalogHandler,
			handler.NewApplicationHandler,
			handler.NewDocumentHandler,
			handler.NewComplianceHandler,
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
			fx.Annotate(
				scheduler.NewScheduler,
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

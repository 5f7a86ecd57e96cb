package impl

import (
	"context"
	"log/slog"

	"bizease/config"
	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/repository"
	"bizease/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dashboardListLimit = 5

type dashboardService struct {
	businessRepo     repository.BusinessRepository
	applicationRepo  repository.ApplicationRepository
	complianceRepo   repository.ComplianceRepository
	compliance       usecase.ComplianceUsecase
	sweepOnDashboard bool
	logger           *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	BusinessRepo    repository.BusinessRepository
	ApplicationRepo repository.ApplicationRepository
	ComplianceRepo  repository.ComplianceRepository
	Compliance      usecase.ComplianceUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	sweep := false
	if params.Config != nil && params.Config.Reminder != nil {
		sweep = params.Config.Reminder.SweepOnDashboard
	}

	return &dashboardService{
		businessRepo:     params.BusinessRepo,
		applicationRepo:  params.ApplicationRepo,
		complianceRepo:   params.ComplianceRepo,
		compliance:       params.Compliance,
		sweepOnDashboard: sweep,
		logger:           params.Logger,
	}
}

// Dashboard runs the business's reminder sweep when enabled, then lists recent work.
func (srv *dashboardService) Dashboard(ctx context.Context, req usecase.Requester) (*usecase.DashboardOutput, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	if srv.sweepOnDashboard {
		if _, err := srv.compliance.SweepReminders(ctx, profile.ID); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Reminder sweep failed",
				slog.String("businessID", profile.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	apps, err := srv.applicationRepo.ListByBusiness(ctx, profile.ID, dashboardListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent applications")
	}

	upcoming, err := srv.complianceRepo.ListOpenByBusiness(ctx, profile.ID, dashboardListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming compliances")
	}

	return &usecase.DashboardOutput{
		Profile:             profile,
		RecentApplications:  apps,
		UpcomingCompliances: upcoming,
	}, nil
}

package usecase

import (
	"context"

	"bizease/internal/domain/entity"
)

// DashboardOutput is the business landing page after login.
type DashboardOutput struct {
	Profile             *entity.BusinessProfile
	RecentApplications  []*entity.ApprovalApplication
	UpcomingCompliances []*entity.Compliance
}

// DashboardUsecase assembles the dashboard of the requesting business.
type DashboardUsecase interface {
	Dashboard(ctx context.Context, req Requester) (*DashboardOutput, error)
}

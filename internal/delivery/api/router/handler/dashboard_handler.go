package handler

import (
	"bizease/internal/delivery/api/response"
	"bizease/internal/domain/entity"
	"bizease/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

type DashboardResponse struct {
	Profile             *entity.BusinessProfile       `json:"profile"`
	RecentApplications  []*entity.ApprovalApplication `json:"recent_applications"`
	UpcomingCompliances []*entity.Compliance          `json:"upcoming_compliances"`
}

func (h *DashboardHandler) Dashboard(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.dashboardUC.Dashboard(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &DashboardResponse{
		Profile:             out.Profile,
		RecentApplications:  nonNil(out.RecentApplications),
		UpcomingCompliances: nonNil(out.UpcomingCompliances),
	})
}

// nonNil makes empty lists render as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

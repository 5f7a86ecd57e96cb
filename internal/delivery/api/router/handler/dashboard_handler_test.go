package handler

import (
	"net/http"
	"testing"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	mockUsecase "bizease/internal/mocks/usecase"
	"bizease/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_Dashboard(t *testing.T) {
	uc := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(uc)
	uc.EXPECT().Dashboard(mock.Anything, businessCaller()).Return(&usecase.DashboardOutput{
		Profile: &entity.BusinessProfile{BusinessName: "Acme Traders"},
	}, nil)

	rec := serve(t, h.Dashboard, testCall{method: http.MethodGet, target: "/api/v1/dashboard"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"recent_applications":[]`)
	assert.Contains(t, body, `"upcoming_compliances":[]`)
}

func TestDashboardHandler_ProfileRequired(t *testing.T) {
	uc := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(uc)
	uc.EXPECT().Dashboard(mock.Anything, businessCaller()).Return(nil, domainerrors.ErrProfileRequired)

	rec := serve(t, h.Dashboard, testCall{method: http.MethodGet, target: "/api/v1/dashboard"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PROFILE_REQUIRED", decode(t, rec).Error.Code)
}

package handler

import (
	"net/http"
	"testing"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	mockUsecase "bizease/internal/mocks/usecase"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	uc := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: uc, Logger: discardLogger()}), uc
}

func adminCall(call testCall) testCall {
	call.roles = entity.Roles{entity.RoleAdmin}

	return call
}

func TestCatalogHandler_Home(t *testing.T) {
	h, uc := newCatalogHandler(t)
	uc.EXPECT().Home(mock.Anything).Return(&usecase.HomeOutput{
		Schemes: []*entity.GovernmentScheme{{ID: uuid.New(), Name: "Startup Seed Fund", IsActive: true}},
	}, nil)

	rec := serve(t, h.Home, testCall{method: http.MethodGet, target: "/api/home", anonymous: true})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Startup Seed Fund")
	assert.Contains(t, body, `"news":[]`)
}

func TestCatalogHandler_GetScheme_NotFound(t *testing.T) {
	h, uc := newCatalogHandler(t)
	id := uuid.New()
	uc.EXPECT().GetScheme(mock.Anything, id).Return(nil, domainerrors.ErrSchemeNotFound)

	rec := serve(t, h.GetScheme, testCall{
		method: http.MethodGet,
		target: "/api/v1/schemes/" + id.String(),
		params: map[string]string{"id": id.String()},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_CreateApprovalType_DefaultsActive(t *testing.T) {
	h, uc := newCatalogHandler(t)
	uc.EXPECT().
		CreateApprovalType(mock.Anything, mock.Anything, mock.MatchedBy(func(in *usecase.ApprovalTypeInput) bool {
			return in.IsActive && in.Fees == "1500.00"
		})).
		Return(&entity.ApprovalType{ID: uuid.New(), Name: "Trade License", IsActive: true}, nil)

	rec := serve(t, h.CreateApprovalType, adminCall(jsonCall(http.MethodPost, "/api/v1/admin/approval-types", `{
		"name": "Trade License",
		"description": "Municipal trade license",
		"department": "Municipal Corporation",
		"processing_time": "15 days",
		"fees": "1500.00",
		"required_documents": "PAN, address proof"
	}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCatalogHandler_UpdateScheme_Dates(t *testing.T) {
	h, uc := newCatalogHandler(t)
	id := uuid.New()
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().
		UpdateScheme(mock.Anything, mock.Anything, id, mock.MatchedBy(func(in *usecase.SchemeInput) bool {
			return in.StartDate.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				in.EndDate != nil && in.EndDate.Equal(end) && !in.IsActive
		})).
		Return(&entity.GovernmentScheme{ID: id}, nil)

	call := adminCall(jsonCall(http.MethodPut, "/api/v1/admin/schemes/"+id.String(), `{
		"name": "Startup Seed Fund",
		"description": "d",
		"eligibility": "e",
		"benefits": "b",
		"application_process": "p",
		"start_date": "2026-01-01",
		"end_date": "2026-12-31",
		"is_active": false
	}`))
	call.params = map[string]string{"id": id.String()}

	rec := serve(t, h.UpdateScheme, call)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_CreateNews_BadPublishDate(t *testing.T) {
	h, _ := newCatalogHandler(t)

	rec := serve(t, h.CreateNews, adminCall(jsonCall(http.MethodPost, "/api/v1/admin/news",
		`{"title":"Budget","content":"c","publish_date":"yesterday"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "publish_date must be an RFC 3339 timestamp", decode(t, rec).Error.Details)
}

func TestCatalogHandler_CreateApprovalType_NotAdmin(t *testing.T) {
	h, uc := newCatalogHandler(t)
	uc.EXPECT().CreateApprovalType(mock.Anything, businessCaller(), mock.Anything).Return(nil, domainerrors.ErrForbidden)

	rec := serve(t, h.CreateApprovalType, jsonCall(http.MethodPost, "/api/v1/admin/approval-types", `{
		"name": "n", "description": "d", "department": "dep", "processing_time": "1 day",
		"fees": "0", "required_documents": "none"
	}`))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

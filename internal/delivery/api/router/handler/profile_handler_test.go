package handler

import (
	"net/http"
	"testing"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	mockUsecase "bizease/internal/mocks/usecase"
	"bizease/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const profileBody = `{
	"business_name": "Acme Traders",
	"business_type": "retail",
	"registration_number": "REG-001",
	"address": "12 Market Road",
	"contact_person": "Asha",
	"contact_number": "9876543210",
	"email": "contact@acme.test",
	"date_established": "2019-04-01"
}`

func TestProfileHandler_UpsertProfile(t *testing.T) {
	tests := []struct {
		name     string
		created  bool
		wantCode int
	}{
		{name: "first save creates", created: true, wantCode: http.StatusCreated},
		{name: "later save updates", created: false, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockProfileUsecase(t)
			h := NewProfileHandler(ProfileHandlerParams{ProfileUC: uc, Logger: discardLogger()})

			uc.EXPECT().
				UpsertProfile(mock.Anything, businessCaller(), mock.MatchedBy(func(in *usecase.ProfileInput) bool {
					return in.BusinessName == "Acme Traders" &&
						in.DateEstablished.Equal(time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC))
				})).
				Return(&entity.BusinessProfile{BusinessName: "Acme Traders"}, tt.created, nil)

			rec := serve(t, h.UpsertProfile, jsonCall(http.MethodPut, "/api/v1/profile", profileBody))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestProfileHandler_UpsertProfile_BadDate(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: uc, Logger: discardLogger()})

	body := `{"business_name":"Acme","business_type":"retail","registration_number":"R1","address":"a",
		"contact_person":"b","contact_number":"1","email":"c@acme.test","date_established":"01/04/2019"}`
	rec := serve(t, h.UpsertProfile, jsonCall(http.MethodPut, "/api/v1/profile", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "date_established must be a date in YYYY-MM-DD format", decode(t, rec).Error.Details)
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: uc, Logger: discardLogger()})
	uc.EXPECT().GetProfile(mock.Anything, businessCaller()).Return(nil, domainerrors.ErrProfileNotFound)

	rec := serve(t, h.GetProfile, testCall{method: http.MethodGet, target: "/api/v1/profile"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", decode(t, rec).Error.Code)
}

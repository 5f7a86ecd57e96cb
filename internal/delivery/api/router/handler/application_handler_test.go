package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	mockUsecase "bizease/internal/mocks/usecase"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApplicationHandler(t *testing.T) (*ApplicationHandler, *mockUsecase.MockApplicationUsecase) {
	uc := mockUsecase.NewMockApplicationUsecase(t)

	return NewApplicationHandler(ApplicationHandlerParams{ApplicationUC: uc, Logger: discardLogger()}), uc
}

func TestApplicationHandler_Status(t *testing.T) {
	submitted := time.Date(2026, 3, 2, 9, 30, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		h, uc := newApplicationHandler(t)
		uc.EXPECT().Status(mock.Anything, "APP-AB12CD34").Return(&usecase.ApplicationStatusView{
			ApplicationNumber: "APP-AB12CD34",
			ApprovalType:      "Trade License",
			Status:            entity.StatusSubmitted,
			SubmissionDate:    &submitted,
		}, nil)

		rec := serve(t, h.Status, testCall{
			method:    http.MethodGet,
			target:    "/api/status/APP-AB12CD34",
			params:    map[string]string{"application_number": "APP-AB12CD34"},
			anonymous: true,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"application_number": "APP-AB12CD34",
			"approval_type": "Trade License",
			"status": "submitted",
			"submission_date": "2026-03-02 09:30:05",
			"approval_date": null
		}`, rec.Body.String())
	})

	t.Run("unknown number", func(t *testing.T) {
		h, uc := newApplicationHandler(t)
		uc.EXPECT().Status(mock.Anything, "APP-NOPE").Return(nil, domainerrors.ErrApplicationNotFound)

		rec := serve(t, h.Status, testCall{
			method:    http.MethodGet,
			target:    "/api/status/APP-NOPE",
			params:    map[string]string{"application_number": "APP-NOPE"},
			anonymous: true,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Application not found"}`, rec.Body.String())
	})

	t.Run("method not allowed", func(t *testing.T) {
		h, _ := newApplicationHandler(t)

		rec := serve(t, h.Status, testCall{
			method:    http.MethodPost,
			target:    "/api/status/APP-AB12CD34",
			params:    map[string]string{"application_number": "APP-AB12CD34"},
			anonymous: true,
		})

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request method"}`, rec.Body.String())
	})
}

func TestApplicationHandler_Create(t *testing.T) {
	approvalTypeID := uuid.New()

	t.Run("created", func(t *testing.T) {
		h, uc := newApplicationHandler(t)
		uc.EXPECT().Create(mock.Anything, businessCaller(), &usecase.CreateApplicationInput{
			ApprovalTypeID: approvalTypeID,
			Notes:          "first shop",
		}).Return(&entity.ApprovalApplication{
			ID:                uuid.New(),
			ApplicationNumber: "APP-AB12CD34",
			Status:            entity.StatusDraft,
		}, nil)

		rec := serve(t, h.Create, jsonCall(http.MethodPost, "/api/v1/applications",
			`{"approval_type_id":"`+approvalTypeID.String()+`","notes":"first shop"}`))

		require.Equal(t, http.StatusCreated, rec.Code)
		var app entity.ApprovalApplication
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &app))
		assert.Equal(t, "APP-AB12CD34", app.ApplicationNumber)
		assert.Equal(t, entity.StatusDraft, app.Status)
	})

	t.Run("malformed approval type id", func(t *testing.T) {
		h, _ := newApplicationHandler(t)

		rec := serve(t, h.Create, jsonCall(http.MethodPost, "/api/v1/applications", `{"approval_type_id":"nope"}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "invalid approval_type_id", env.Error.Details)
	})

	t.Run("missing approval type id", func(t *testing.T) {
		h, _ := newApplicationHandler(t)

		rec := serve(t, h.Create, jsonCall(http.MethodPost, "/api/v1/applications", `{}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "approval_type_id: required")
	})
}

func TestApplicationHandler_Submit_ErrorMapping(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "already submitted", err: domainerrors.ErrInvalidStatusTransition, wantCode: http.StatusConflict, wantErr: "INVALID_STATUS_TRANSITION"},
		{name: "no documents", err: domainerrors.ErrDocumentRequired, wantCode: http.StatusBadRequest, wantErr: "DOCUMENT_REQUIRED"},
		{name: "foreign application", err: domainerrors.ErrApplicationNotFound, wantCode: http.StatusNotFound, wantErr: "APPLICATION_NOT_FOUND"},
		{name: "unexpected failure", err: errors.New("connection reset"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newApplicationHandler(t)
			uc.EXPECT().Submit(mock.Anything, businessCaller(), id).Return(nil, tt.err)

			rec := serve(t, h.Submit, testCall{
				method: http.MethodPost,
				target: "/api/v1/applications/" + id.String() + "/submit",
				params: map[string]string{"id": id.String()},
			})

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, decode(t, rec).Error.Code)
		})
	}
}

func TestApplicationHandler_Get_InvalidID(t *testing.T) {
	h, _ := newApplicationHandler(t)

	rec := serve(t, h.Get, testCall{
		method: http.MethodGet,
		target: "/api/v1/applications/42",
		params: map[string]string{"id": "42"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplicationHandler_Get_IncludesDocuments(t *testing.T) {
	h, uc := newApplicationHandler(t)
	id := uuid.New()
	uc.EXPECT().GetDetails(mock.Anything, businessCaller(), id).Return(&usecase.ApplicationDetails{
		Application: &entity.ApprovalApplication{ID: id, ApplicationNumber: "APP-AB12CD34", Status: entity.StatusDraft},
	}, nil)

	rec := serve(t, h.Get, testCall{
		method: http.MethodGet,
		target: "/api/v1/applications/" + id.String(),
		params: map[string]string{"id": id.String()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, "APP-AB12CD34", body["application_number"])
	assert.Equal(t, []any{}, body["documents"])
}

func TestApplicationHandler_TrackingQR(t *testing.T) {
	h, uc := newApplicationHandler(t)
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().TrackingQR(mock.Anything, businessCaller(), id).Return(&usecase.TrackingCode{
		PNG: png,
		URL: "https://portal.test/api/status/APP-AB12CD34",
	}, nil)

	rec := serve(t, h.TrackingQR, testCall{
		method: http.MethodGet,
		target: "/api/v1/applications/" + id.String() + "/qr",
		params: map[string]string{"id": id.String()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://portal.test/api/status/APP-AB12CD34", rec.Header().Get(headerTrackingURL))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestApplicationHandler_Review(t *testing.T) {
	h, uc := newApplicationHandler(t)
	id := uuid.New()
	uc.EXPECT().Review(mock.Anything, mock.Anything, id, &usecase.ReviewInput{
		Status:          "rejected",
		RejectionReason: "missing PAN",
	}).Return(&entity.ApprovalApplication{ID: id, Status: entity.StatusRejected, RejectionReason: "missing PAN"}, nil)

	call := jsonCall(http.MethodPost, "/api/v1/admin/applications/"+id.String()+"/review",
		`{"status":"rejected","rejection_reason":"missing PAN"}`)
	call.params = map[string]string{"id": id.String()}
	call.roles = entity.Roles{entity.RoleAdmin}

	rec := serve(t, h.Review, call)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplicationHandler_Review_RejectsUnknownStatus(t *testing.T) {
	h, _ := newApplicationHandler(t)
	id := uuid.New()

	call := jsonCall(http.MethodPost, "/api/v1/admin/applications/"+id.String()+"/review", `{"status":"draft"}`)
	call.params = map[string]string{"id": id.String()}
	call.roles = entity.Roles{entity.RoleAdmin}

	rec := serve(t, h.Review, call)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

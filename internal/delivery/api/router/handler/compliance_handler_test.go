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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newComplianceHandler(t *testing.T) (*ComplianceHandler, *mockUsecase.MockComplianceUsecase) {
	uc := mockUsecase.NewMockComplianceUsecase(t)

	return NewComplianceHandler(ComplianceHandlerParams{ComplianceUC: uc, Logger: discardLogger()}), uc
}

func TestComplianceHandler_Create(t *testing.T) {
	h, uc := newComplianceHandler(t)
	uc.EXPECT().Create(mock.Anything, businessCaller(), &usecase.CreateComplianceInput{
		Title:       "GST return",
		Description: "Quarterly filing",
		DueDate:     time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
	}).Return(&entity.Compliance{ID: uuid.New(), Title: "GST return"}, nil)

	rec := serve(t, h.Create, jsonCall(http.MethodPost, "/api/v1/compliances",
		`{"title":"GST return","description":"Quarterly filing","due_date":"2026-03-07"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestComplianceHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{name: "missing title", body: `{"due_date":"2026-03-07"}`, wantDetails: "title: required"},
		{name: "bad due date", body: `{"title":"GST","due_date":"next week"}`, wantDetails: "due_date must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newComplianceHandler(t)

			rec := serve(t, h.Create, jsonCall(http.MethodPost, "/api/v1/compliances", tt.body))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantDetails, decode(t, rec).Error.Details)
		})
	}
}

func TestComplianceHandler_Complete(t *testing.T) {
	id := uuid.New()

	t.Run("completed", func(t *testing.T) {
		h, uc := newComplianceHandler(t)
		today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().MarkComplete(mock.Anything, businessCaller(), id).
			Return(&entity.Compliance{ID: id, IsCompleted: true, CompletedDate: &today}, nil)

		rec := serve(t, h.Complete, testCall{
			method: http.MethodPost,
			target: "/api/v1/compliances/" + id.String() + "/complete",
			params: map[string]string{"id": id.String()},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_completed":true`)
	})

	t.Run("unknown", func(t *testing.T) {
		h, uc := newComplianceHandler(t)
		uc.EXPECT().MarkComplete(mock.Anything, businessCaller(), id).Return(nil, domainerrors.ErrComplianceNotFound)

		rec := serve(t, h.Complete, testCall{
			method: http.MethodPost,
			target: "/api/v1/compliances/" + id.String() + "/complete",
			params: map[string]string{"id": id.String()},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestComplianceHandler_SweepReminders(t *testing.T) {
	h, uc := newComplianceHandler(t)
	uc.EXPECT().SweepAllReminders(mock.Anything).
		Return(&usecase.SweepResult{Candidates: 4, Sent: 2, Skipped: 1, Failed: 1}, nil)

	call := testCall{method: http.MethodPost, target: "/api/v1/admin/reminders/sweep", roles: entity.Roles{entity.RoleAdmin}}
	rec := serve(t, h.SweepReminders, call)

	require.Equal(t, http.StatusOK, rec.Code)
	var out SweepResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, SweepResponse{Candidates: 4, Sent: 2, Skipped: 1, Failed: 1}, out)
}

func TestComplianceHandler_List_EmptyIsArray(t *testing.T) {
	h, uc := newComplianceHandler(t)
	uc.EXPECT().List(mock.Anything, businessCaller()).Return(nil, nil)

	rec := serve(t, h.List, testCall{method: http.MethodGet, target: "/api/v1/compliances"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

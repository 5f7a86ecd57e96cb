package impl

import (
	"context"
	"testing"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	mockRepo "bizease/internal/mocks/repository"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validProfileInput() *usecase.ProfileInput {
	return &usecase.ProfileInput{
		BusinessName:       "Acme Traders",
		BusinessType:       "Retail",
		RegistrationNumber: "REG-001",
		Address:            "12 Market Road",
		ContactPerson:      "A. Owner",
		ContactNumber:      "+15550100",
		Email:              "contact@acme.test",
		DateEstablished:    time.Date(2019, 6, 1, 13, 0, 0, 0, time.UTC),
	}
}

func TestProfileService_UpsertProfile_CreatesOnFirstSave(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	srv := NewProfileService(businessRepo, newDiscardLogger())
	ctx := context.Background()
	req, _ := businessRequester()

	businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(nil, repository.ErrBusinessNotFound)
	businessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BusinessProfile")).Return(nil)

	profile, created, err := srv.UpsertProfile(ctx, req, validProfileInput())

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, req.UserID, profile.UserID)
	assert.Equal(t, entity.BusinessTypeRetail, profile.BusinessType)
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), profile.DateEstablished)
}

func TestProfileService_UpsertProfile_UpdatesExisting(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	srv := NewProfileService(businessRepo, newDiscardLogger())
	ctx := context.Background()
	req, existing := businessRequester()
	existing.UserID = req.UserID

	businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(existing, nil)
	businessRepo.EXPECT().Update(ctx, existing).Return(nil)

	input := validProfileInput()
	input.BusinessName = "Acme Wholesale"
	profile, created, err := srv.UpsertProfile(ctx, req, input)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, profile.ID)
	assert.Equal(t, "Acme Wholesale", profile.BusinessName)
}

func TestProfileService_UpsertProfile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *usecase.ProfileInput)
		writeErr error
		expected error
	}{
		{name: "unknown business type", mutate: func(in *usecase.ProfileInput) { in.BusinessType = "farming" }, expected: domainerrors.ErrInvalidBusinessType},
		{name: "missing name", mutate: func(in *usecase.ProfileInput) { in.BusinessName = "" }, expected: domainerrors.ErrValidationFailed},
		{name: "long contact number", mutate: func(in *usecase.ProfileInput) { in.ContactNumber = "+1234567890123456" }, expected: domainerrors.ErrValidationFailed},
		{name: "missing establishment date", mutate: func(in *usecase.ProfileInput) { in.DateEstablished = time.Time{} }, expected: domainerrors.ErrValidationFailed},
		{name: "registration number taken", writeErr: repository.ErrRegistrationNumberConflict, expected: domainerrors.ErrRegistrationNumberTaken},
		{name: "concurrent create", writeErr: repository.ErrBusinessAlreadyExists, expected: domainerrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			businessRepo := mockRepo.NewMockBusinessRepository(t)
			srv := NewProfileService(businessRepo, newDiscardLogger())
			ctx := context.Background()
			req, _ := businessRequester()
			input := validProfileInput()
			if tt.mutate != nil {
				tt.mutate(input)
			}
			if tt.writeErr != nil {
				businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(nil, repository.ErrBusinessNotFound)
				businessRepo.EXPECT().Create(ctx, mock.Anything).Return(tt.writeErr)
			}

			_, _, err := srv.UpsertProfile(ctx, req, input)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	srv := NewProfileService(businessRepo, newDiscardLogger())
	userID := uuid.New()

	businessRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(nil, repository.ErrBusinessNotFound)

	_, err := srv.GetProfile(context.Background(), usecase.Requester{UserID: userID})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

package impl

import (
	"context"
	"testing"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/domain/service"
	mockRepo "bizease/internal/mocks/repository"
	mockSvc "bizease/internal/mocks/service"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applicationServiceFixtures struct {
	service          *applicationService
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	businessRepo     *mockRepo.MockBusinessRepository
	applicationRepo  *mockRepo.MockApplicationRepository
	documentRepo     *mockRepo.MockDocumentRepository
	approvalTypeRepo *mockRepo.MockApprovalTypeRepository
	userRepo         *mockRepo.MockUserRepository
	publisher        *mockSvc.MockEventPublisher
	qrCode           *mockSvc.MockQRCodeService
	metrics          *mockSvc.MockWorkflowMetrics
}

func createTestApplicationService(t *testing.T) applicationServiceFixtures {
	f := applicationServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		businessRepo:     mockRepo.NewMockBusinessRepository(t),
		applicationRepo:  mockRepo.NewMockApplicationRepository(t),
		documentRepo:     mockRepo.NewMockDocumentRepository(t),
		approvalTypeRepo: mockRepo.NewMockApprovalTypeRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		qrCode:           mockSvc.NewMockQRCodeService(t),
		metrics:          mockSvc.NewMockWorkflowMetrics(t),
	}

	srv := NewApplicationService(ApplicationServiceParams{
		TxManager:        f.txManager,
		BusinessRepo:     f.businessRepo,
		ApplicationRepo:  f.applicationRepo,
		DocumentRepo:     f.documentRepo,
		ApprovalTypeRepo: f.approvalTypeRepo,
		UserRepo:         f.userRepo,
		Publisher:        f.publisher,
		QRCode:           f.qrCode,
		Metrics:          f.metrics,
		Logger:           newDiscardLogger(),
	}).(*applicationService)
	srv.now = fixedClock
	f.service = srv

	return f
}

func draftApplication(profile *entity.BusinessProfile) *entity.ApprovalApplication {
	return &entity.ApprovalApplication{
		ID:                uuid.New(),
		BusinessID:        profile.ID,
		ApprovalTypeID:    uuid.New(),
		ApplicationNumber: "APP-7QK2M9ZD",
		Status:            entity.StatusDraft,
		ApprovalType:      &entity.ApprovalType{Name: "Trade License"},
	}
}

func TestApplicationService_Create_Success(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	req, profile := businessRequester()
	approvalType := &entity.ApprovalType{ID: uuid.New(), Name: "Trade License", IsActive: true}

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
	fx.approvalTypeRepo.EXPECT().FindByID(ctx, approvalType.ID).Return(approvalType, nil)
	fx.applicationRepo.EXPECT().ExistsByNumber(ctx, mock.AnythingOfType("string")).Return(false, nil)
	fx.applicationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ApprovalApplication")).Return(nil)
	fx.metrics.EXPECT().ApplicationCreated().Return()

	app, err := fx.service.Create(ctx, req, &usecase.CreateApplicationInput{ApprovalTypeID: approvalType.ID, Notes: "first"})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, app.Status)
	assert.Equal(t, profile.ID, app.BusinessID)
	assert.NoError(t, entity.ValidateApplicationNumber(app.ApplicationNumber))
	assert.Nil(t, app.SubmissionDate)
	assert.Equal(t, approvalType, app.ApprovalType)
}

func TestApplicationService_Create_RegeneratesCollidingNumbers(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	req, profile := businessRequester()
	approvalType := &entity.ApprovalType{ID: uuid.New(), IsActive: true}

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
	fx.approvalTypeRepo.EXPECT().FindByID(ctx, approvalType.ID).Return(approvalType, nil)
	// First candidate already exists, second loses an insert race, third succeeds.
	fx.applicationRepo.EXPECT().ExistsByNumber(ctx, mock.Anything).Return(true, nil).Once()
	fx.applicationRepo.EXPECT().ExistsByNumber(ctx, mock.Anything).Return(false, nil).Twice()
	fx.applicationRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrApplicationNumberConflict).Once()
	fx.applicationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	fx.metrics.EXPECT().ApplicationCreated().Return()

	app, err := fx.service.Create(ctx, req, &usecase.CreateApplicationInput{ApprovalTypeID: approvalType.ID})

	require.NoError(t, err)
	assert.NotEmpty(t, app.ApplicationNumber)
}

func TestApplicationService_Create_GivesUpAfterRepeatedCollisions(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	req, profile := businessRequester()
	approvalType := &entity.ApprovalType{ID: uuid.New(), IsActive: true}

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
	fx.approvalTypeRepo.EXPECT().FindByID(ctx, approvalType.ID).Return(approvalType, nil)
	fx.applicationRepo.EXPECT().ExistsByNumber(ctx, mock.Anything).Return(true, nil).Times(maxNumberAttempts)

	_, err := fx.service.Create(ctx, req, &usecase.CreateApplicationInput{ApprovalTypeID: approvalType.ID})

	assert.ErrorIs(t, err, domainerrors.ErrApplicationNumberExhausted)
}

func TestApplicationService_Create_Errors(t *testing.T) {
	t.Run("no business profile", func(t *testing.T) {
		fx := createTestApplicationService(t)
		ctx := context.Background()
		req, _ := businessRequester()
		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(nil, repository.ErrBusinessNotFound)

		_, err := fx.service.Create(ctx, req, &usecase.CreateApplicationInput{ApprovalTypeID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrProfileRequired)
	})

	t.Run("inactive approval type", func(t *testing.T) {
		fx := createTestApplicationService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		approvalType := &entity.ApprovalType{ID: uuid.New(), IsActive: false}
		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		fx.approvalTypeRepo.EXPECT().FindByID(ctx, approvalType.ID).Return(approvalType, nil)

		_, err := fx.service.Create(ctx, req, &usecase.CreateApplicationInput{ApprovalTypeID: approvalType.ID})
		assert.ErrorIs(t, err, domainerrors.ErrApprovalTypeNotFound)
	})
}

func TestApplicationService_Submit_Success(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	req, profile := businessRequester()
	app := draftApplication(profile)
	owner := &entity.User{ID: req.UserID, Email: "owner@acme.test"}

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewApplicationRepository().Return(fx.applicationRepo)
	fx.factory.EXPECT().NewDocumentRepository().Return(fx.documentRepo)
	fx.applicationRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
	fx.documentRepo.EXPECT().CountByApplication(ctx, app.ID).Return(int64(1), nil)
	fx.applicationRepo.EXPECT().MarkSubmitted(ctx, app.ID, fixedNow).Return(true, nil)
	fx.metrics.EXPECT().ApplicationSubmitted().Return()
	fx.userRepo.EXPECT().FindByID(ctx, profile.UserID).Return(owner, nil)
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.Kind == service.EmailKindApplicationSubmitted &&
				e.Subject == "Application Submitted Successfully" &&
				e.Body == "Your application APP-7QK2M9ZD for Trade License has been submitted successfully." &&
				assert.ObjectsAreEqual([]string{"owner@acme.test"}, e.To)
		})).
		Return(nil)
	fx.metrics.EXPECT().NotificationPublished(service.EmailKindApplicationSubmitted, nil).Return()

	got, err := fx.service.Submit(ctx, req, app.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusSubmitted, got.Status)
	require.NotNil(t, got.SubmissionDate)
	assert.Equal(t, fixedNow, *got.SubmissionDate)
}

func TestApplicationService_Submit_NotificationFailureIsSwallowed(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	req, profile := businessRequester()
	app := draftApplication(profile)
	publishErr := errors.New("smtp down")

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewApplicationRepository().Return(fx.applicationRepo)
	fx.factory.EXPECT().NewDocumentRepository().Return(fx.documentRepo)
	fx.applicationRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
	fx.documentRepo.EXPECT().CountByApplication(ctx, app.ID).Return(int64(2), nil)
	fx.applicationRepo.EXPECT().MarkSubmitted(ctx, app.ID, fixedNow).Return(true, nil)
	fx.metrics.EXPECT().ApplicationSubmitted().Return()
	// Owner lookup fails, the profile contact email is used instead.
	fx.userRepo.EXPECT().FindByID(ctx, profile.UserID).Return(nil, repository.ErrUserNotFound)
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.To[0] == profile.Email
		})).
		Return(publishErr)
	fx.metrics.EXPECT().NotificationPublished(service.EmailKindApplicationSubmitted, publishErr).Return()

	got, err := fx.service.Submit(ctx, req, app.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusSubmitted, got.Status)
}

func TestApplicationService_Submit_Rejections(t *testing.T) {
	t.Run("another business's application", func(t *testing.T) {
		fx := createTestApplicationService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		app := draftApplication(&entity.BusinessProfile{ID: uuid.New()})

		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		fx.txManager.EXPECT().
			Execute(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error { return fn(fx.factory) })
		fx.factory.EXPECT().NewApplicationRepository().Return(fx.applicationRepo)
		fx.factory.EXPECT().NewDocumentRepository().Return(fx.documentRepo)
		fx.applicationRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)

		_, err := fx.service.Submit(ctx, req, app.ID)
		assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
	})

	t.Run("no documents", func(t *testing.T) {
		fx := createTestApplicationService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		app := draftApplication(profile)

		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewApplicationRepository().Return(fx.applicationRepo)
		fx.factory.EXPECT().NewDocumentRepository().Return(fx.documentRepo)
		fx.applicationRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.documentRepo.EXPECT().CountByApplication(ctx, app.ID).Return(int64(0), nil)

		_, err := fx.service.Submit(ctx, req, app.ID)
		assert.ErrorIs(t, err, domainerrors.ErrDocumentRequired)
		assert.Equal(t, entity.StatusDraft, app.Status)
	})

	t.Run("already submitted", func(t *testing.T) {
		fx := createTestApplicationService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		app := draftApplication(profile)
		app.Status = entity.StatusSubmitted

		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewApplicationRepository().Return(fx.applicationRepo)
		fx.factory.EXPECT().NewDocumentRepository().Return(fx.documentRepo)
		fx.applicationRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.documentRepo.EXPECT().CountByApplication(ctx, app.ID).Return(int64(1), nil)

		_, err := fx.service.Submit(ctx, req, app.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})

	t.Run("lost a concurrent submit", func(t *testing.T) {
		fx := createTestApplicationService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		app := draftApplication(profile)

		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewApplicationRepository().Return(fx.applicationRepo)
		fx.factory.EXPECT().NewDocumentRepository().Return(fx.documentRepo)
		fx.applicationRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.documentRepo.EXPECT().CountByApplication(ctx, app.ID).Return(int64(1), nil)
		fx.applicationRepo.EXPECT().MarkSubmitted(ctx, app.ID, fixedNow).Return(false, nil)

		_, err := fx.service.Submit(ctx, req, app.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})
}

func TestApplicationService_GetDetails_HidesForeignApplications(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	req, profile := businessRequester()
	foreign := draftApplication(&entity.BusinessProfile{ID: uuid.New()})

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
	fx.applicationRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)

	_, err := fx.service.GetDetails(ctx, req, foreign.ID)

	assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}

func TestApplicationService_Review(t *testing.T) {
	tests := []struct {
		name       string
		from       entity.ApplicationStatus
		input      usecase.ReviewInput
		expectSave bool
		saved      bool
		wantErr    error
		approved   bool
	}{
		{name: "approve submitted", from: entity.StatusSubmitted, input: usecase.ReviewInput{Status: "approved"}, expectSave: true, saved: true, approved: true},
		{name: "request more info", from: entity.StatusUnderReview, input: usecase.ReviewInput{Status: "additional_info_required"}, expectSave: true, saved: true},
		{name: "reject without reason", from: entity.StatusSubmitted, input: usecase.ReviewInput{Status: "rejected"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "draft cannot be reviewed", from: entity.StatusDraft, input: usecase.ReviewInput{Status: "approved"}, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "concurrent change", from: entity.StatusSubmitted, input: usecase.ReviewInput{Status: "under_review"}, expectSave: true, wantErr: domainerrors.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestApplicationService(t)
			ctx := context.Background()
			app := &entity.ApprovalApplication{ID: uuid.New(), Status: tt.from}

			expectTx(fx.txManager, fx.factory)
			fx.factory.EXPECT().NewApplicationRepository().Return(fx.applicationRepo)
			fx.applicationRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
			if tt.expectSave {
				fx.applicationRepo.EXPECT().SaveReview(ctx, app, tt.from).Return(tt.saved, nil)
			}

			got, err := fx.service.Review(ctx, adminRequester(), app.ID, &tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.approved, got.ApprovalDate != nil)
		})
	}
}

func TestApplicationService_Review_RequiresAdmin(t *testing.T) {
	fx := createTestApplicationService(t)
	req, _ := businessRequester()

	_, err := fx.service.Review(context.Background(), req, uuid.New(), &usecase.ReviewInput{Status: "approved"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApplicationService_Status(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestApplicationService(t)
		ctx := context.Background()
		submitted := fixedNow
		app := &entity.ApprovalApplication{
			ApplicationNumber: "APP-AB12CD34",
			Status:            entity.StatusSubmitted,
			SubmissionDate:    &submitted,
			ApprovalType:      &entity.ApprovalType{Name: "Fire Safety"},
		}
		fx.applicationRepo.EXPECT().FindByNumber(ctx, "APP-AB12CD34").Return(app, nil)

		view, err := fx.service.Status(ctx, "APP-AB12CD34")

		require.NoError(t, err)
		assert.Equal(t, "Fire Safety", view.ApprovalType)
		assert.Equal(t, entity.StatusSubmitted, view.Status)
		assert.Nil(t, view.ApprovalDate)
	})

	t.Run("malformed number skips the lookup", func(t *testing.T) {
		fx := createTestApplicationService(t)

		_, err := fx.service.Status(context.Background(), "not-a-number")

		assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
	})

	t.Run("unknown number", func(t *testing.T) {
		fx := createTestApplicationService(t)
		ctx := context.Background()
		fx.applicationRepo.EXPECT().FindByNumber(ctx, "APP-ZZZZZZZZ").Return(nil, repository.ErrApplicationNotFound)

		_, err := fx.service.Status(ctx, "APP-ZZZZZZZZ")

		assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
	})
}

func TestApplicationService_TrackingQR(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	req, profile := businessRequester()
	app := draftApplication(profile)

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
	fx.applicationRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
	fx.qrCode.EXPECT().GenerateTrackingQR(app.ApplicationNumber).Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	fx.qrCode.EXPECT().TrackingURL(app.ApplicationNumber).Return("https://portal.test/api/status/" + app.ApplicationNumber)

	code, err := fx.service.TrackingQR(ctx, req, app.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, code.PNG)
	assert.Contains(t, code.URL, app.ApplicationNumber)
}

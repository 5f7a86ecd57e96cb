package impl

import (
	"context"
	"testing"
	"time"

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

type complianceServiceFixtures struct {
	service        *complianceService
	businessRepo   *mockRepo.MockBusinessRepository
	complianceRepo *mockRepo.MockComplianceRepository
	userRepo       *mockRepo.MockUserRepository
	publisher      *mockSvc.MockEventPublisher
	metrics        *mockSvc.MockWorkflowMetrics
}

func createTestComplianceService(t *testing.T) complianceServiceFixtures {
	f := complianceServiceFixtures{
		businessRepo:   mockRepo.NewMockBusinessRepository(t),
		complianceRepo: mockRepo.NewMockComplianceRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		metrics:        mockSvc.NewMockWorkflowMetrics(t),
	}

	srv := NewComplianceService(ComplianceServiceParams{
		BusinessRepo:   f.businessRepo,
		ComplianceRepo: f.complianceRepo,
		UserRepo:       f.userRepo,
		Publisher:      f.publisher,
		Metrics:        f.metrics,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	}).(*complianceService)
	srv.now = fixedClock
	f.service = srv

	return f
}

func dueIn(days int) time.Time {
	return entity.Today(fixedNow).AddDate(0, 0, days)
}

func TestComplianceService_Create(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	req, profile := businessRequester()

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
	fx.complianceRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Compliance")).Return(nil)

	item, err := fx.service.Create(ctx, req, &usecase.CreateComplianceInput{
		Title:   "  GST return  ",
		DueDate: time.Date(2026, 3, 20, 15, 4, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "GST return", item.Title)
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), item.DueDate)
	assert.False(t, item.IsCompleted)
	assert.False(t, item.ReminderSent)
}

func TestComplianceService_Create_RequiresTitle(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	req, profile := businessRequester()

	fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)

	_, err := fx.service.Create(ctx, req, &usecase.CreateComplianceInput{Title: " ", DueDate: fixedNow})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestComplianceService_MarkComplete(t *testing.T) {
	t.Run("open record", func(t *testing.T) {
		fx := createTestComplianceService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		item := &entity.Compliance{ID: uuid.New(), BusinessID: profile.ID, DueDate: dueIn(3)}

		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		fx.complianceRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.complianceRepo.EXPECT().MarkCompleted(ctx, item.ID, entity.Today(fixedNow)).Return(true, nil)

		got, err := fx.service.MarkComplete(ctx, req, item.ID)

		require.NoError(t, err)
		assert.True(t, got.IsCompleted)
		require.NotNil(t, got.CompletedDate)
		assert.Equal(t, entity.Today(fixedNow), *got.CompletedDate)
	})

	t.Run("already completed keeps the original date", func(t *testing.T) {
		fx := createTestComplianceService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		earlier := dueIn(-10)
		item := &entity.Compliance{ID: uuid.New(), BusinessID: profile.ID, IsCompleted: true, CompletedDate: &earlier}

		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		fx.complianceRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

		got, err := fx.service.MarkComplete(ctx, req, item.ID)

		require.NoError(t, err)
		assert.Equal(t, earlier, *got.CompletedDate)
	})

	t.Run("another business's record", func(t *testing.T) {
		fx := createTestComplianceService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		item := &entity.Compliance{ID: uuid.New(), BusinessID: uuid.New()}

		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		fx.complianceRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

		_, err := fx.service.MarkComplete(ctx, req, item.ID)

		assert.ErrorIs(t, err, domainerrors.ErrComplianceNotFound)
	})

	t.Run("unknown record", func(t *testing.T) {
		fx := createTestComplianceService(t)
		ctx := context.Background()
		req, profile := businessRequester()
		id := uuid.New()

		fx.businessRepo.EXPECT().FindByUserID(ctx, req.UserID).Return(profile, nil)
		fx.complianceRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrComplianceNotFound)

		_, err := fx.service.MarkComplete(ctx, req, id)

		assert.ErrorIs(t, err, domainerrors.ErrComplianceNotFound)
	})
}

func TestComplianceService_SweepReminders(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	profile := &entity.BusinessProfile{ID: uuid.New(), UserID: uuid.New(), Email: "contact@acme.test"}
	owner := &entity.User{ID: profile.UserID, Email: "owner@acme.test"}

	dueSoon := &entity.Compliance{ID: uuid.New(), BusinessID: profile.ID, Title: "GST return", DueDate: dueIn(5)}
	overdue := &entity.Compliance{ID: uuid.New(), BusinessID: profile.ID, Title: "Fire audit", DueDate: dueIn(-2)}
	raced := &entity.Compliance{ID: uuid.New(), BusinessID: profile.ID, Title: "Trade licence", DueDate: dueIn(1)}
	broken := &entity.Compliance{ID: uuid.New(), BusinessID: profile.ID, Title: "Labour filing", DueDate: dueIn(7)}

	fx.complianceRepo.EXPECT().
		ListReminderCandidates(ctx, repository.ReminderFilter{BusinessID: profile.ID, DueOnOrBefore: dueIn(7)}).
		Return([]*entity.Compliance{dueSoon, overdue, raced, broken}, nil)
	fx.complianceRepo.EXPECT().ClaimReminder(ctx, dueSoon.ID).Return(true, nil)
	fx.complianceRepo.EXPECT().ClaimReminder(ctx, overdue.ID).Return(true, nil)
	fx.complianceRepo.EXPECT().ClaimReminder(ctx, raced.ID).Return(false, nil)
	fx.complianceRepo.EXPECT().ClaimReminder(ctx, broken.ID).Return(false, errors.New("connection reset"))

	// The owner is resolved once per business.
	fx.businessRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil).Once()

	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.Subject == "Compliance Reminder: GST return" &&
				e.Body == `Your compliance "GST return" is due on 2026-03-07. Please complete it on time.` &&
				e.To[0] == "owner@acme.test"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.Subject == "Compliance Reminder: Fire audit"
		})).
		Return(nil)
	fx.metrics.EXPECT().NotificationPublished(service.EmailKindComplianceReminder, nil).Return().Twice()
	fx.metrics.EXPECT().ReminderSent().Return().Twice()

	result, err := fx.service.SweepReminders(ctx, profile.ID)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SweepResult{Candidates: 4, Sent: 2, Skipped: 1, Failed: 1}, result)
}

func TestComplianceService_SweepAllReminders_PublishFailureCounts(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	profile := &entity.BusinessProfile{ID: uuid.New(), UserID: uuid.New(), Email: "contact@acme.test"}
	item := &entity.Compliance{ID: uuid.New(), BusinessID: profile.ID, Title: "GST return", DueDate: dueIn(0)}
	publishErr := errors.New("topic unavailable")

	fx.complianceRepo.EXPECT().
		ListReminderCandidates(ctx, repository.ReminderFilter{BusinessID: uuid.Nil, DueOnOrBefore: dueIn(7)}).
		Return([]*entity.Compliance{item}, nil)
	fx.complianceRepo.EXPECT().ClaimReminder(ctx, item.ID).Return(true, nil)
	fx.businessRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	// No owner account, the profile contact email is used.
	fx.userRepo.EXPECT().FindByID(ctx, profile.UserID).Return(nil, repository.ErrUserNotFound)
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.To[0] == "contact@acme.test"
		})).
		Return(publishErr)
	fx.metrics.EXPECT().NotificationPublished(service.EmailKindComplianceReminder, publishErr).Return()

	result, err := fx.service.SweepAllReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Sent)
}

func TestComplianceService_Sweep_IgnoresRecordsOutsideTheWindow(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	later := &entity.Compliance{ID: uuid.New(), DueDate: dueIn(30)}
	done := &entity.Compliance{ID: uuid.New(), DueDate: dueIn(1), IsCompleted: true}

	fx.complianceRepo.EXPECT().ListReminderCandidates(ctx, mock.Anything).Return([]*entity.Compliance{later, done}, nil)

	result, err := fx.service.SweepAllReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SweepResult{}, result)
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bizease/config"
	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/domain/service"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReminderWindowDays = 7

type complianceService struct {
	businessRepo   repository.BusinessRepository
	complianceRepo repository.ComplianceRepository
	userRepo       repository.UserRepository
	publisher      service.EventPublisher
	metrics        service.WorkflowMetrics
	windowDays     int
	now            clock
	logger         *slog.Logger
}

// ComplianceServiceParams holds dependencies for ComplianceService, injected by Fx.
type ComplianceServiceParams struct {
	fx.In

	BusinessRepo   repository.BusinessRepository
	ComplianceRepo repository.ComplianceRepository
	UserRepo       repository.UserRepository
	Publisher      service.EventPublisher
	Metrics        service.WorkflowMetrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewComplianceService is the constructor for complianceService.
func NewComplianceService(params ComplianceServiceParams) usecase.ComplianceUsecase {
	windowDays := defaultReminderWindowDays
	if params.Config != nil && params.Config.Reminder != nil && params.Config.Reminder.WindowDays > 0 {
		windowDays = params.Config.Reminder.WindowDays
	}

	return &complianceService{
		businessRepo:   params.BusinessRepo,
		complianceRepo: params.ComplianceRepo,
		userRepo:       params.UserRepo,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		windowDays:     windowDays,
		now:            utcNow,
		logger:         params.Logger,
	}
}

func (srv *complianceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *complianceService) List(ctx context.Context, req usecase.Requester) ([]*entity.Compliance, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	items, err := srv.complianceRepo.ListByBusiness(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list compliances")
	}

	return items, nil
}

func (srv *complianceService) Create(ctx context.Context, req usecase.Requester, input *usecase.CreateComplianceInput) (*entity.Compliance, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || input.DueDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and due date are required")
	}

	item := &entity.Compliance{
		BusinessID:  profile.ID,
		Title:       title,
		Description: input.Description,
		DueDate:     entity.Today(input.DueDate),
		CreatedAt:   srv.now(),
	}
	if err := srv.complianceRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create compliance")
	}

	return item, nil
}

// MarkComplete stamps today's date once. Completing an already completed record changes nothing.
func (srv *complianceService) MarkComplete(ctx context.Context, req usecase.Requester, id uuid.UUID) (*entity.Compliance, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	item, err := srv.findCompliance(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.BusinessID != profile.ID {
		return nil, domainerrors.ErrComplianceNotFound
	}
	if item.IsCompleted {
		return item, nil
	}

	today := entity.Today(srv.now())
	completed, err := srv.complianceRepo.MarkCompleted(ctx, item.ID, today)
	if err != nil {
		return nil, err
	}
	if !completed {
		// Completed concurrently; return the stored state.
		return srv.findCompliance(ctx, id)
	}

	item.IsCompleted = true
	item.CompletedDate = &today

	return item, nil
}

func (srv *complianceService) findCompliance(ctx context.Context, id uuid.UUID) (*entity.Compliance, error) {
	item, err := srv.complianceRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrComplianceNotFound) {
		return nil, domainerrors.ErrComplianceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load compliance")
	}

	return item, nil
}

func (srv *complianceService) SweepReminders(ctx context.Context, businessID uuid.UUID) (*usecase.SweepResult, error) {
	return srv.sweep(ctx, businessID)
}

func (srv *complianceService) SweepAllReminders(ctx context.Context) (*usecase.SweepResult, error) {
	return srv.sweep(ctx, uuid.Nil)
}

// sweep claims each due record before publishing its reminder, so a record is announced at most once
// even when sweeps overlap.
func (srv *complianceService) sweep(ctx context.Context, businessID uuid.UUID) (*usecase.SweepResult, error) {
	now := srv.now()
	candidates, err := srv.complianceRepo.ListReminderCandidates(ctx, repository.ReminderFilter{
		BusinessID:    businessID,
		DueOnOrBefore: entity.ReminderCutoff(now, srv.windowDays),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminder candidates")
	}

	result := &usecase.SweepResult{}
	recipients := make(map[uuid.UUID]string)
	for _, item := range candidates {
		if !item.NeedsReminder(now, srv.windowDays) {
			continue
		}
		result.Candidates++

		claimed, err := srv.complianceRepo.ClaimReminder(ctx, item.ID)
		if err != nil {
			result.Failed++
			srv.log(ctx).Error("Failed to claim reminder", slog.String("complianceID", item.ID.String()), slog.Any("error", err))

			continue
		}
		if !claimed {
			result.Skipped++

			continue
		}

		if err := srv.sendReminder(ctx, item, recipients); err != nil {
			result.Failed++
			srv.log(ctx).Warn("Failed to send compliance reminder",
				slog.String("complianceID", item.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		result.Sent++
	}

	if result.Candidates > 0 {
		srv.log(ctx).Info("Reminder sweep finished",
			slog.String("businessID", businessID.String()),
			slog.Int("candidates", result.Candidates),
			slog.Int("sent", result.Sent),
			slog.Int("skipped", result.Skipped),
			slog.Int("failed", result.Failed),
		)
	}

	return result, nil
}

func (srv *complianceService) sendReminder(ctx context.Context, item *entity.Compliance, recipients map[uuid.UUID]string) error {
	recipient, ok := recipients[item.BusinessID]
	if !ok {
		var err error
		recipient, err = srv.ownerEmail(ctx, item.BusinessID)
		if err != nil {
			return err
		}
		recipients[item.BusinessID] = recipient
	}

	event := &service.EmailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Kind:      service.EmailKindComplianceReminder,
		Subject:   "Compliance Reminder: " + item.Title,
		Body: fmt.Sprintf("Your compliance \"%s\" is due on %s. Please complete it on time.",
			item.Title, item.DueDate.Format("2006-01-02")),
		To: []string{recipient},
	}

	err := srv.publisher.PublishEmailEvent(ctx, event)
	srv.metrics.NotificationPublished(event.Kind, err)
	if err != nil {
		return err
	}
	srv.metrics.ReminderSent()

	return nil
}

// ownerEmail prefers the owner's account email and falls back to the profile contact email.
func (srv *complianceService) ownerEmail(ctx context.Context, businessID uuid.UUID) (string, error) {
	profile, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load business")
	}

	owner, err := srv.userRepo.FindByID(ctx, profile.UserID)
	if err == nil && owner.Email != "" {
		return owner.Email, nil
	}
	if profile.Email != "" {
		return profile.Email, nil
	}

	return "", errors.Errorf("business %s has no email address", businessID)
}

package impl

import (
	"context"
	"fmt"
	"log/slog"

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

// maxNumberAttempts bounds the regeneration of colliding application numbers.
const maxNumberAttempts = 5

type applicationService struct {
	txManager        repository.TransactionManager
	businessRepo     repository.BusinessRepository
	applicationRepo  repository.ApplicationRepository
	documentRepo     repository.DocumentRepository
	approvalTypeRepo repository.ApprovalTypeRepository
	userRepo         repository.UserRepository
	publisher        service.EventPublisher
	qrCode           service.QRCodeService
	metrics          service.WorkflowMetrics
	now              clock
	logger           *slog.Logger
}

// ApplicationServiceParams holds dependencies for ApplicationService, injected by Fx.
type ApplicationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	BusinessRepo     repository.BusinessRepository
	ApplicationRepo  repository.ApplicationRepository
	DocumentRepo     repository.DocumentRepository
	ApprovalTypeRepo repository.ApprovalTypeRepository
	UserRepo         repository.UserRepository
	Publisher        service.EventPublisher
	QRCode           service.QRCodeService
	Metrics          service.WorkflowMetrics
	Logger           *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(params ApplicationServiceParams) usecase.ApplicationUsecase {
	return &applicationService{
		txManager:        params.TxManager,
		businessRepo:     params.BusinessRepo,
		applicationRepo:  params.ApplicationRepo,
		documentRepo:     params.DocumentRepo,
		approvalTypeRepo: params.ApprovalTypeRepo,
		userRepo:         params.UserRepo,
		publisher:        params.Publisher,
		qrCode:           params.QRCode,
		metrics:          params.Metrics,
		now:              utcNow,
		logger:           params.Logger,
	}
}

func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a draft application with a fresh application number.
func (srv *applicationService) Create(ctx context.Context, req usecase.Requester, input *usecase.CreateApplicationInput) (*entity.ApprovalApplication, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	approvalType, err := srv.approvalTypeRepo.FindByID(ctx, input.ApprovalTypeID)
	if errors.Is(err, repository.ErrApprovalTypeNotFound) {
		return nil, domainerrors.ErrApprovalTypeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load approval type")
	}
	if !approvalType.IsActive {
		return nil, domainerrors.ErrApprovalTypeNotFound.WrapMessage("approval type is not active")
	}

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number, err := entity.NewApplicationNumber()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate application number")
		}

		exists, err := srv.applicationRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check application number")
		}
		if exists {
			continue
		}

		now := srv.now()
		app := &entity.ApprovalApplication{
			BusinessID:        profile.ID,
			ApprovalTypeID:    approvalType.ID,
			ApplicationNumber: number,
			Status:            entity.StatusDraft,
			Notes:             input.Notes,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		err = srv.applicationRepo.Create(ctx, app)
		if errors.Is(err, repository.ErrApplicationNumberConflict) {
			srv.log(ctx).Debug("Application number collided on insert", slog.Int("attempt", attempt))

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create application")
		}

		app.ApprovalType = approvalType
		srv.metrics.ApplicationCreated()
		srv.log(ctx).Info("Application created",
			slog.String("applicationID", app.ID.String()),
			slog.String("applicationNumber", app.ApplicationNumber),
		)

		return app, nil
	}

	return nil, domainerrors.ErrApplicationNumberExhausted
}

func (srv *applicationService) List(ctx context.Context, req usecase.Requester) ([]*entity.ApprovalApplication, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	apps, err := srv.applicationRepo.ListByBusiness(ctx, profile.ID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return apps, nil
}

func (srv *applicationService) GetDetails(ctx context.Context, req usecase.Requester, id uuid.UUID) (*usecase.ApplicationDetails, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	app, err := ownedApplication(ctx, srv.applicationRepo, profile, id)
	if err != nil {
		return nil, err
	}

	docs, err := srv.documentRepo.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return &usecase.ApplicationDetails{Application: app, Documents: docs}, nil
}

// Submit checks ownership, then the document count, then moves draft to submitted.
// The notification runs after commit and never affects the result.
func (srv *applicationService) Submit(ctx context.Context, req usecase.Requester, id uuid.UUID) (*entity.ApprovalApplication, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	var submitted *entity.ApprovalApplication
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appRepo := repoFactory.NewApplicationRepository()
		docRepo := repoFactory.NewDocumentRepository()

		app, err := ownedApplication(ctx, appRepo, profile, id)
		if err != nil {
			return err
		}

		count, err := docRepo.CountByApplication(ctx, app.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count documents")
		}
		if count == 0 {
			return domainerrors.ErrDocumentRequired
		}

		if app.Status != entity.StatusDraft {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage("only draft applications can be submitted")
		}

		at := srv.now()
		moved, err := appRepo.MarkSubmitted(ctx, app.ID, at)
		if err != nil {
			return err
		}
		if !moved {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage("application was submitted concurrently")
		}

		app.Status = entity.StatusSubmitted
		app.SubmissionDate = &at
		app.UpdatedAt = at
		submitted = app

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.ApplicationSubmitted()
	srv.notifySubmitted(ctx, profile, submitted)

	return submitted, nil
}

// notifySubmitted publishes the confirmation email. Failures are logged and counted only.
func (srv *applicationService) notifySubmitted(ctx context.Context, profile *entity.BusinessProfile, app *entity.ApprovalApplication) {
	recipient := profile.Email
	if owner, err := srv.userRepo.FindByID(ctx, profile.UserID); err == nil && owner.Email != "" {
		recipient = owner.Email
	}
	if recipient == "" {
		srv.log(ctx).Warn("No recipient for submission email", slog.String("applicationID", app.ID.String()))

		return
	}

	typeName := ""
	if app.ApprovalType != nil {
		typeName = app.ApprovalType.Name
	}

	event := &service.EmailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Kind:      service.EmailKindApplicationSubmitted,
		Subject:   "Application Submitted Successfully",
		Body:      fmt.Sprintf("Your application %s for %s has been submitted successfully.", app.ApplicationNumber, typeName),
		To:        []string{recipient},
	}

	err := srv.publisher.PublishEmailEvent(ctx, event)
	srv.metrics.NotificationPublished(event.Kind, err)
	if err != nil {
		srv.log(ctx).Warn("Failed to publish submission email",
			slog.String("applicationID", app.ID.String()),
			slog.Any("error", err),
		)
	}
}

// Review applies an administrator decision to a submitted application.
func (srv *applicationService) Review(ctx context.Context, req usecase.Requester, id uuid.UUID, input *usecase.ReviewInput) (*entity.ApprovalApplication, error) {
	if err := requireAdmin(req); err != nil {
		return nil, err
	}

	to, err := entity.ParseApplicationStatus(input.Status)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown application status")
	}

	var reviewed *entity.ApprovalApplication
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appRepo := repoFactory.NewApplicationRepository()

		app, err := appRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return domainerrors.ErrApplicationNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load application")
		}

		expected := app.Status
		if err := app.Review(to, input.RejectionReason, srv.now()); err != nil {
			if errors.Is(err, entity.ErrRejectionReasonRequired) {
				return domainerrors.ErrValidationFailed.WrapMessage("rejection reason is required")
			}

			return domainerrors.ErrInvalidStatusTransition.WrapMessage(fmt.Sprintf("cannot move from %s to %s", expected, to))
		}

		saved, err := appRepo.SaveReview(ctx, app, expected)
		if err != nil {
			return err
		}
		if !saved {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage("application changed concurrently")
		}
		reviewed = app

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Application reviewed",
		slog.String("applicationID", reviewed.ID.String()),
		slog.String("status", string(reviewed.Status)),
		slog.String("reviewerID", req.UserID.String()),
	)

	return reviewed, nil
}

// Status serves the public tracking lookup.
func (srv *applicationService) Status(ctx context.Context, applicationNumber string) (*usecase.ApplicationStatusView, error) {
	if err := entity.ValidateApplicationNumber(applicationNumber); err != nil {
		return nil, domainerrors.ErrApplicationNotFound
	}

	app, err := srv.applicationRepo.FindByNumber(ctx, applicationNumber)
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return nil, domainerrors.ErrApplicationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find application")
	}

	view := &usecase.ApplicationStatusView{
		ApplicationNumber: app.ApplicationNumber,
		Status:            app.Status,
		SubmissionDate:    app.SubmissionDate,
		ApprovalDate:      app.ApprovalDate,
	}
	if app.ApprovalType != nil {
		view.ApprovalType = app.ApprovalType.Name
	}

	return view, nil
}

func (srv *applicationService) TrackingQR(ctx context.Context, req usecase.Requester, id uuid.UUID) (*usecase.TrackingCode, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	app, err := ownedApplication(ctx, srv.applicationRepo, profile, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateTrackingQR(app.ApplicationNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return &usecase.TrackingCode{PNG: png, URL: srv.qrCode.TrackingURL(app.ApplicationNumber)}, nil
}

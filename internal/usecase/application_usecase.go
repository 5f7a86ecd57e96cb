package usecase

import (
	"context"
	"time"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateApplicationInput defines the data required to open a draft application.
type CreateApplicationInput struct {
	ApprovalTypeID uuid.UUID
	Notes          string
}

// ApplicationDetails is an application together with its documents.
type ApplicationDetails struct {
	Application *entity.ApprovalApplication
	Documents   []*entity.ApplicationDocument
}

// ReviewInput is an administrator's decision on an application.
type ReviewInput struct {
	Status          string
	RejectionReason string
}

// ApplicationStatusView is the public, unauthenticated view of an application.
type ApplicationStatusView struct {
	ApplicationNumber string
	ApprovalType      string
	Status            entity.ApplicationStatus
	SubmissionDate    *time.Time
	ApprovalDate      *time.Time
}

// TrackingCode is a PNG QR code pointing at the public status URL.
type TrackingCode struct {
	PNG []byte
	URL string
}

// ApplicationUsecase drives the approval application state machine.
type ApplicationUsecase interface {
	Create(ctx context.Context, req Requester, input *CreateApplicationInput) (*entity.ApprovalApplication, error)
	List(ctx context.Context, req Requester) ([]*entity.ApprovalApplication, error)
	GetDetails(ctx context.Context, req Requester, id uuid.UUID) (*ApplicationDetails, error)

	// Submit moves a draft with at least one document to submitted and notifies the business.
	Submit(ctx context.Context, req Requester, id uuid.UUID) (*entity.ApprovalApplication, error)

	// Review applies an administrator decision.
	Review(ctx context.Context, req Requester, id uuid.UUID, input *ReviewInput) (*entity.ApprovalApplication, error)

	// Status looks an application up by its public number. No authentication is involved.
	Status(ctx context.Context, applicationNumber string) (*ApplicationStatusView, error)

	TrackingQR(ctx context.Context, req Requester, id uuid.UUID) (*TrackingCode, error)
}

package usecase

import (
	"context"
	"time"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateComplianceInput defines a new compliance obligation.
type CreateComplianceInput struct {
	Title       string
	Description string
	DueDate     time.Time
}

// SweepResult summarizes one reminder sweep.
type SweepResult struct {
	Candidates int // records matching the reminder window
	Sent       int // reminders claimed and published
	Skipped    int // records claimed by a concurrent sweep
	Failed     int // claimed records whose notification could not be published
}

// ComplianceUsecase manages compliance obligations and their reminders.
type ComplianceUsecase interface {
	List(ctx context.Context, req Requester) ([]*entity.Compliance, error)
	Create(ctx context.Context, req Requester, input *CreateComplianceInput) (*entity.Compliance, error)

	// MarkComplete is idempotent: an already completed record is returned unchanged.
	MarkComplete(ctx context.Context, req Requester, id uuid.UUID) (*entity.Compliance, error)

	// SweepReminders sends the reminders that are due for one business.
	SweepReminders(ctx context.Context, businessID uuid.UUID) (*SweepResult, error)

	// SweepAllReminders runs the sweep across every business.
	SweepAllReminders(ctx context.Context) (*SweepResult, error)
}

package repository

import (
	"context"
	"errors"
	"time"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrComplianceNotFound = errors.New("compliance not found")

// ReminderFilter selects compliances that are due for a reminder.
type ReminderFilter struct {
	// BusinessID restricts the sweep to one business. uuid.Nil means every business.
	BusinessID uuid.UUID
	// DueOnOrBefore is the latest due date included.
	DueOnOrBefore time.Time
}

// ComplianceRepository persists compliance obligations.
type ComplianceRepository interface {
	Create(ctx context.Context, c *entity.Compliance) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Compliance, error)

	// ListByBusiness returns all compliances of a business, latest due date first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Compliance, error)

	// ListOpenByBusiness returns incomplete compliances, earliest due date first.
	ListOpenByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.Compliance, error)

	// ListReminderCandidates returns incomplete compliances without a sent reminder.
	ListReminderCandidates(ctx context.Context, filter ReminderFilter) ([]*entity.Compliance, error)

	// ClaimReminder flips reminder_sent from false to true. It reports false when another sweep got there first.
	ClaimReminder(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkCompleted flips is_completed from false to true. It reports false when it was already completed.
	MarkCompleted(ctx context.Context, id uuid.UUID, on time.Time) (bool, error)
}

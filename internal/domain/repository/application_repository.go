package repository

import (
	"context"
	"errors"
	"time"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	// ErrApplicationNumberConflict is returned when a generated number collides with an existing one.
	ErrApplicationNumberConflict = errors.New("application number already exists")
)

// ApplicationRepository persists approval applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *entity.ApprovalApplication) error

	// FindByID loads the application together with its approval type.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ApprovalApplication, error)

	// FindByNumber loads the application by its public tracking number, with its approval type.
	FindByNumber(ctx context.Context, number string) (*entity.ApprovalApplication, error)

	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// ListByBusiness returns applications newest first. A limit <= 0 means no limit.
	ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.ApprovalApplication, error)

	// MarkSubmitted moves a draft application to submitted.
	// It reports false when the application was no longer a draft.
	MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// SaveReview writes status, approval date and rejection reason if the stored status still equals expected.
	SaveReview(ctx context.Context, app *entity.ApprovalApplication, expected entity.ApplicationStatus) (bool, error)
}

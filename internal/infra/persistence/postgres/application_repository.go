package postgres

import (
	"context"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (repo *applicationRepository) Create(ctx context.Context, app *entity.ApprovalApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	appM := fromApplicationDomain(app)

	if err := repo.db.WithContext(ctx).Omit("ApprovalType").Create(appM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrApplicationNumberConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrApprovalTypeNotFound.WrapMessage("approval type reference is invalid")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

func (repo *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ApprovalApplication, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *applicationRepository) FindByNumber(ctx context.Context, number string) (*entity.ApprovalApplication, error) {
	return repo.findOne(ctx, "application_number = ?", number)
}

func (repo *applicationRepository) findOne(ctx context.Context, cond string, arg any) (*entity.ApprovalApplication, error) {
	var appM model.ApprovalApplicationModel
	err := repo.db.WithContext(ctx).
		Preload("ApprovalType").
		Where(cond, arg).
		First(&appM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application")
	}

	return toApplicationDomain(&appM), nil
}

func (repo *applicationRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ApprovalApplicationModel{}).
		Where("application_number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check application number")
	}

	return count > 0, nil
}

func (repo *applicationRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.ApprovalApplication, error) {
	var models []model.ApprovalApplicationModel
	query := repo.db.WithContext(ctx).
		Preload("ApprovalType").
		Where("business_id = ?", businessID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return mapSlice(models, toApplicationDomain), nil
}

// MarkSubmitted is guarded by the expected prior status, so concurrent submits move the row once.
func (repo *applicationRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ApprovalApplicationModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusDraft)).
		Updates(map[string]any{
			"status":          string(entity.StatusSubmitted),
			"submission_date": at,
			"updated_at":      at,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to submit application")
	}

	return result.RowsAffected == 1, nil
}

func (repo *applicationRepository) SaveReview(ctx context.Context, app *entity.ApprovalApplication, expected entity.ApplicationStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ApprovalApplicationModel{}).
		Where("id = ? AND status = ?", app.ID, string(expected)).
		Updates(map[string]any{
			"status":           string(app.Status),
			"approval_date":    app.ApprovalDate,
			"rejection_reason": app.RejectionReason,
			"updated_at":       app.UpdatedAt,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to save review")
	}

	return result.RowsAffected == 1, nil
}

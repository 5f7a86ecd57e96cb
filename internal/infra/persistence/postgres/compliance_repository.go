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
	"gorm.io/plugin/dbresolver"
)

type complianceRepository struct {
	db *gorm.DB
}

// NewComplianceRepository is the constructor for complianceRepository.
func NewComplianceRepository(db *gorm.DB) repository.ComplianceRepository {
	return &complianceRepository{db: db}
}

func (repo *complianceRepository) Create(ctx context.Context, c *entity.Compliance) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cM := fromComplianceDomain(c)

	if err := repo.db.WithContext(ctx).Create(cM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create compliance")
	}
	c.CreatedAt = cM.CreatedAt

	return nil
}

func (repo *complianceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Compliance, error) {
	var cM model.ComplianceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&cM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplianceNotFound
		}

		return nil, errors.Wrap(err, "failed to find compliance")
	}

	return toComplianceDomain(&cM), nil
}

func (repo *complianceRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Compliance, error) {
	var models []model.ComplianceModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("due_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list compliances")
	}

	return mapSlice(models, toComplianceDomain), nil
}

func (repo *complianceRepository) ListOpenByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.Compliance, error) {
	var models []model.ComplianceModel
	query := repo.db.WithContext(ctx).
		Where("business_id = ? AND is_completed = ?", businessID, false).
		Order("due_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list open compliances")
	}

	return mapSlice(models, toComplianceDomain), nil
}

func (repo *complianceRepository) ListReminderCandidates(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Compliance, error) {
	var models []model.ComplianceModel
	// Candidates are read from the primary, never a replica.
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("is_completed = ? AND reminder_sent = ? AND due_date <= ?", false, false, filter.DueOnOrBefore)
	if filter.BusinessID != uuid.Nil {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if err := query.Order("due_date ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reminder candidates")
	}

	return mapSlice(models, toComplianceDomain), nil
}

func (repo *complianceRepository) ClaimReminder(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ComplianceModel{}).
		Where("id = ? AND reminder_sent = ?", id, false).
		Update("reminder_sent", true)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim reminder")
	}

	return result.RowsAffected == 1, nil
}

func (repo *complianceRepository) MarkCompleted(ctx context.Context, id uuid.UUID, on time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ComplianceModel{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]any{
			"is_completed":   true,
			"completed_date": on,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete compliance")
	}

	return result.RowsAffected == 1, nil
}

package postgres

import (
	"context"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const constraintBusinessUser = "business_profiles_user_id_key"

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *businessRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *businessRepository) findOne(ctx context.Context, cond string, arg any) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business profile")
	}

	return toBusinessDomain(&profileM), nil
}

func (repo *businessRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profileM := fromBusinessDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return mapBusinessWriteError(err, "failed to create business profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *businessRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	profileM := fromBusinessDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"business_name":       profileM.BusinessName,
			"business_type":       profileM.BusinessType,
			"registration_number": profileM.RegistrationNumber,
			"address":             profileM.Address,
			"contact_person":      profileM.ContactPerson,
			"contact_number":      profileM.ContactNumber,
			"email":               profileM.Email,
			"date_established":    profileM.DateEstablished,
			"updated_at":          gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return mapBusinessWriteError(result.Error, "failed to update business profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func mapBusinessWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		if constraintName(err) == constraintBusinessUser {
			return repository.ErrBusinessAlreadyExists
		}

		return repository.ErrRegistrationNumberConflict
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidBusinessType.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

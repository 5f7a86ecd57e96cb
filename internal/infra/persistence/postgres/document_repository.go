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

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) Create(ctx context.Context, doc *entity.ApplicationDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	docM := fromDocumentDomain(doc)

	if err := repo.db.WithContext(ctx).Create(docM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrApplicationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}
	doc.UploadedAt = docM.UploadedAt

	return nil
}

func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ApplicationDocument, error) {
	var docM model.ApplicationDocumentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document")
	}

	return toDocumentDomain(&docM), nil
}

func (repo *documentRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entity.ApplicationDocument, error) {
	var models []model.ApplicationDocumentModel
	err := repo.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("uploaded_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return mapSlice(models, toDocumentDomain), nil
}

func (repo *documentRepository) CountByApplication(ctx context.Context, applicationID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ApplicationDocumentModel{}).
		Where("application_id = ?", applicationID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count documents")
	}

	return count, nil
}

func (repo *documentRepository) MarkVerified(ctx context.Context, id uuid.UUID, notes string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationDocumentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_verified":        true,
			"verification_notes": notes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to verify document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

type signatureRepository struct {
	db *gorm.DB
}

// NewSignatureRepository is the constructor for signatureRepository.
func NewSignatureRepository(db *gorm.DB) repository.SignatureRepository {
	return &signatureRepository{db: db}
}

func (repo *signatureRepository) Create(ctx context.Context, sig *entity.DigitalSignature) error {
	if sig.ID == uuid.Nil {
		sig.ID = uuid.New()
	}
	if err := repo.db.WithContext(ctx).Create(fromSignatureDomain(sig)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDocumentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create signature")
	}

	return nil
}

func (repo *signatureRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.DigitalSignature, error) {
	var models []model.DigitalSignatureModel
	err := repo.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("signed_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list signatures")
	}

	return mapSlice(models, toSignatureDomain), nil
}

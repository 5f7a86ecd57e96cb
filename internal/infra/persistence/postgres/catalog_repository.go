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

// --- Approval types ---

type approvalTypeRepository struct {
	db *gorm.DB
}

// NewApprovalTypeRepository is the constructor for approvalTypeRepository.
func NewApprovalTypeRepository(db *gorm.DB) repository.ApprovalTypeRepository {
	return &approvalTypeRepository{db: db}
}

func (repo *approvalTypeRepository) List(ctx context.Context, activeOnly bool) ([]*entity.ApprovalType, error) {
	var models []model.ApprovalTypeModel
	query := repo.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list approval types")
	}

	return mapSlice(models, toApprovalTypeDomain), nil
}

func (repo *approvalTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ApprovalType, error) {
	var m model.ApprovalTypeModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApprovalTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find approval type")
	}

	return toApprovalTypeDomain(&m), nil
}

func (repo *approvalTypeRepository) Create(ctx context.Context, approvalType *entity.ApprovalType) error {
	if approvalType.ID == uuid.Nil {
		approvalType.ID = uuid.New()
	}
	if err := repo.db.WithContext(ctx).Create(fromApprovalTypeDomain(approvalType)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create approval type")
	}

	return nil
}

func (repo *approvalTypeRepository) Update(ctx context.Context, approvalType *entity.ApprovalType) error {
	m := fromApprovalTypeDomain(approvalType)
	result := repo.db.WithContext(ctx).
		Model(&model.ApprovalTypeModel{}).
		Where("id = ?", approvalType.ID).
		Updates(map[string]any{
			"name":               m.Name,
			"description":        m.Description,
			"department":         m.Department,
			"processing_time":    m.ProcessingTime,
			"fees":               m.Fees,
			"required_documents": m.RequiredDocuments,
			"is_active":          m.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update approval type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApprovalTypeNotFound
	}

	return nil
}

// --- Government schemes ---

type schemeRepository struct {
	db *gorm.DB
}

// NewSchemeRepository is the constructor for schemeRepository.
func NewSchemeRepository(db *gorm.DB) repository.SchemeRepository {
	return &schemeRepository{db: db}
}

func (repo *schemeRepository) ListActive(ctx context.Context, limit int) ([]*entity.GovernmentScheme, error) {
	var models []model.GovernmentSchemeModel
	query := repo.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list schemes")
	}

	return mapSlice(models, toSchemeDomain), nil
}

func (repo *schemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GovernmentScheme, error) {
	var m model.GovernmentSchemeModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSchemeNotFound
		}

		return nil, errors.Wrap(err, "failed to find scheme")
	}

	return toSchemeDomain(&m), nil
}

func (repo *schemeRepository) Create(ctx context.Context, scheme *entity.GovernmentScheme) error {
	if scheme.ID == uuid.Nil {
		scheme.ID = uuid.New()
	}
	m := fromSchemeDomain(scheme)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create scheme")
	}
	scheme.CreatedAt = m.CreatedAt

	return nil
}

func (repo *schemeRepository) Update(ctx context.Context, scheme *entity.GovernmentScheme) error {
	m := fromSchemeDomain(scheme)
	result := repo.db.WithContext(ctx).
		Model(&model.GovernmentSchemeModel{}).
		Where("id = ?", scheme.ID).
		Updates(map[string]any{
			"name":                m.Name,
			"description":         m.Description,
			"eligibility":         m.Eligibility,
			"benefits":            m.Benefits,
			"application_process": m.ApplicationProcess,
			"website_link":        m.WebsiteLink,
			"start_date":          m.StartDate,
			"end_date":            m.EndDate,
			"is_active":           m.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update scheme")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSchemeNotFound
	}

	return nil
}

// --- News articles ---

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

func (repo *newsRepository) ListActive(ctx context.Context, limit int) ([]*entity.NewsArticle, error) {
	var models []model.NewsArticleModel
	query := repo.db.WithContext(ctx).Where("is_active = ?", true).Order("publish_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return mapSlice(models, toNewsDomain), nil
}

func (repo *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error) {
	var m model.NewsArticleModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news article")
	}

	return toNewsDomain(&m), nil
}

func (repo *newsRepository) Create(ctx context.Context, article *entity.NewsArticle) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	m := fromNewsDomain(article)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create news article")
	}
	article.CreatedAt = m.CreatedAt

	return nil
}

func (repo *newsRepository) Update(ctx context.Context, article *entity.NewsArticle) error {
	m := fromNewsDomain(article)
	result := repo.db.WithContext(ctx).
		Model(&model.NewsArticleModel{}).
		Where("id = ?", article.ID).
		Updates(map[string]any{
			"title":        m.Title,
			"content":      m.Content,
			"publish_date": m.PublishDate,
			"is_active":    m.IsActive,
			"image_ref":    m.ImageRef,
			"source":       m.Source,
			"source_url":   m.SourceURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update news article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

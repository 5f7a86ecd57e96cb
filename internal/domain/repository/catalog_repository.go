package repository

import (
	"context"
	"errors"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrApprovalTypeNotFound = errors.New("approval type not found")
	ErrSchemeNotFound       = errors.New("government scheme not found")
	ErrNewsNotFound         = errors.New("news article not found")
)

// ApprovalTypeRepository persists the approval type catalog.
type ApprovalTypeRepository interface {
	// List returns approval types ordered by name. activeOnly hides retired entries.
	List(ctx context.Context, activeOnly bool) ([]*entity.ApprovalType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ApprovalType, error)
	Create(ctx context.Context, approvalType *entity.ApprovalType) error
	Update(ctx context.Context, approvalType *entity.ApprovalType) error
}

// SchemeRepository persists government schemes.
type SchemeRepository interface {
	// ListActive returns active schemes, newest first. A limit <= 0 means no limit.
	ListActive(ctx context.Context, limit int) ([]*entity.GovernmentScheme, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GovernmentScheme, error)
	Create(ctx context.Context, scheme *entity.GovernmentScheme) error
	Update(ctx context.Context, scheme *entity.GovernmentScheme) error
}

// NewsRepository persists news articles.
type NewsRepository interface {
	// ListActive returns active articles by publish date, newest first. A limit <= 0 means no limit.
	ListActive(ctx context.Context, limit int) ([]*entity.NewsArticle, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error)
	Create(ctx context.Context, article *entity.NewsArticle) error
	Update(ctx context.Context, article *entity.NewsArticle) error
}

package usecase

import (
	"context"
	"time"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

// HomeOutput is the public landing page content.
type HomeOutput struct {
	Schemes []*entity.GovernmentScheme
	News    []*entity.NewsArticle
}

// ApprovalTypeInput carries the editable fields of an approval type.
type ApprovalTypeInput struct {
	Name              string
	Description       string
	Department        string
	ProcessingTime    string
	Fees              string
	RequiredDocuments string
	IsActive          bool
}

// SchemeInput carries the editable fields of a government scheme.
type SchemeInput struct {
	Name               string
	Description        string
	Eligibility        string
	Benefits           string
	ApplicationProcess string
	WebsiteLink        string
	StartDate          time.Time
	EndDate            *time.Time
	IsActive           bool
}

// NewsInput carries the editable fields of a news article.
type NewsInput struct {
	Title       string
	Content     string
	PublishDate time.Time
	IsActive    bool
	Source      string
	SourceURL   string
}

// CatalogUsecase exposes the reference data. Reads are open to every user,
// writes require the administrator role.
type CatalogUsecase interface {
	Home(ctx context.Context) (*HomeOutput, error)

	ListApprovalTypes(ctx context.Context) ([]*entity.ApprovalType, error)
	GetApprovalType(ctx context.Context, id uuid.UUID) (*entity.ApprovalType, error)
	ListSchemes(ctx context.Context) ([]*entity.GovernmentScheme, error)
	GetScheme(ctx context.Context, id uuid.UUID) (*entity.GovernmentScheme, error)
	ListNews(ctx context.Context) ([]*entity.NewsArticle, error)
	GetNews(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error)

	CreateApprovalType(ctx context.Context, req Requester, input *ApprovalTypeInput) (*entity.ApprovalType, error)
	UpdateApprovalType(ctx context.Context, req Requester, id uuid.UUID, input *ApprovalTypeInput) (*entity.ApprovalType, error)
	CreateScheme(ctx context.Context, req Requester, input *SchemeInput) (*entity.GovernmentScheme, error)
	UpdateScheme(ctx context.Context, req Requester, id uuid.UUID, input *SchemeInput) (*entity.GovernmentScheme, error)
	CreateNews(ctx context.Context, req Requester, input *NewsInput) (*entity.NewsArticle, error)
	UpdateNews(ctx context.Context, req Requester, id uuid.UUID, input *NewsInput) (*entity.NewsArticle, error)
	UploadNewsImage(ctx context.Context, req Requester, id uuid.UUID, image *FileUpload) (*entity.NewsArticle, error)
}

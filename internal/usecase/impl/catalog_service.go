package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/domain/service"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	homeListLimit   = 3
	newsImagePrefix = "news_images"
)

// feesPattern matches a decimal(10,2) amount.
var feesPattern = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

type catalogService struct {
	approvalTypeRepo repository.ApprovalTypeRepository
	schemeRepo       repository.SchemeRepository
	newsRepo         repository.NewsRepository
	storage          service.FileStorage
	now              clock
	logger           *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ApprovalTypeRepo repository.ApprovalTypeRepository
	SchemeRepo       repository.SchemeRepository
	NewsRepo         repository.NewsRepository
	Storage          service.FileStorage
	Logger           *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		approvalTypeRepo: params.ApprovalTypeRepo,
		schemeRepo:       params.SchemeRepo,
		newsRepo:         params.NewsRepo,
		storage:          params.Storage,
		now:              utcNow,
		logger:           params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Home(ctx context.Context) (*usecase.HomeOutput, error) {
	schemes, err := srv.schemeRepo.ListActive(ctx, homeListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schemes")
	}

	news, err := srv.newsRepo.ListActive(ctx, homeListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return &usecase.HomeOutput{Schemes: schemes, News: news}, nil
}

func (srv *catalogService) ListApprovalTypes(ctx context.Context) ([]*entity.ApprovalType, error) {
	items, err := srv.approvalTypeRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approval types")
	}

	return items, nil
}

func (srv *catalogService) GetApprovalType(ctx context.Context, id uuid.UUID) (*entity.ApprovalType, error) {
	item, err := srv.findApprovalType(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, domainerrors.ErrApprovalTypeNotFound
	}

	return item, nil
}

func (srv *catalogService) ListSchemes(ctx context.Context) ([]*entity.GovernmentScheme, error) {
	items, err := srv.schemeRepo.ListActive(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schemes")
	}

	return items, nil
}

func (srv *catalogService) GetScheme(ctx context.Context, id uuid.UUID) (*entity.GovernmentScheme, error) {
	item, err := srv.findScheme(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, domainerrors.ErrSchemeNotFound
	}

	return item, nil
}

func (srv *catalogService) ListNews(ctx context.Context) ([]*entity.NewsArticle, error) {
	items, err := srv.newsRepo.ListActive(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return items, nil
}

func (srv *catalogService) GetNews(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error) {
	item, err := srv.findNews(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, domainerrors.ErrNewsNotFound
	}

	return item, nil
}

// --- Administration ---

func (srv *catalogService) CreateApprovalType(ctx context.Context, req usecase.Requester, input *usecase.ApprovalTypeInput) (*entity.ApprovalType, error) {
	if err := requireAdmin(req); err != nil {
		return nil, err
	}

	item := &entity.ApprovalType{}
	if err := applyApprovalTypeInput(item, input); err != nil {
		return nil, err
	}
	if err := srv.approvalTypeRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create approval type")
	}

	srv.log(ctx).Info("Approval type created", slog.String("approvalTypeID", item.ID.String()))

	return item, nil
}

func (srv *catalogService) UpdateApprovalType(ctx context.Context, req usecase.Requester, id uuid.UUID, input *usecase.ApprovalTypeInput) (*entity.ApprovalType, error) {
	if err := requireAdmin(req); err != nil {
		return nil, err
	}

	item, err := srv.findApprovalType(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyApprovalTypeInput(item, input); err != nil {
		return nil, err
	}
	if err := srv.approvalTypeRepo.Update(ctx, item); err != nil {
		return nil, mapNotFound(err, repository.ErrApprovalTypeNotFound, domainerrors.ErrApprovalTypeNotFound, "failed to update approval type")
	}

	return item, nil
}

func (srv *catalogService) CreateScheme(ctx context.Context, req usecase.Requester, input *usecase.SchemeInput) (*entity.GovernmentScheme, error) {
	if err := requireAdmin(req); err != nil {
		return nil, err
	}

	item := &entity.GovernmentScheme{CreatedAt: srv.now()}
	if err := applySchemeInput(item, input); err != nil {
		return nil, err
	}
	if err := srv.schemeRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create scheme")
	}

	srv.log(ctx).Info("Scheme created", slog.String("schemeID", item.ID.String()))

	return item, nil
}

func (srv *catalogService) UpdateScheme(ctx context.Context, req usecase.Requester, id uuid.UUID, input *usecase.SchemeInput) (*entity.GovernmentScheme, error) {
	if err := requireAdmin(req); err != nil {
		return nil, err
	}

	item, err := srv.findScheme(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applySchemeInput(item, input); err != nil {
		return nil, err
	}
	if err := srv.schemeRepo.Update(ctx, item); err != nil {
		return nil, mapNotFound(err, repository.ErrSchemeNotFound, domainerrors.ErrSchemeNotFound, "failed to update scheme")
	}

	return item, nil
}

func (srv *catalogService) CreateNews(ctx context.Context, req usecase.Requester, input *usecase.NewsInput) (*entity.NewsArticle, error) {
	if err := requireAdmin(req); err != nil {
		return nil, err
	}

	now := srv.now()
	item := &entity.NewsArticle{CreatedAt: now}
	if err := applyNewsInput(item, input, now); err != nil {
		return nil, err
	}
	if err := srv.newsRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create news article")
	}

	srv.log(ctx).Info("News article created", slog.String("newsID", item.ID.String()))

	return item, nil
}

func (srv *catalogService) UpdateNews(ctx context.Context, req usecase.Requester, id uuid.UUID, input *usecase.NewsInput) (*entity.NewsArticle, error) {
	if err := requireAdmin(req); err != nil {
		return nil, err
	}

	item, err := srv.findNews(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyNewsInput(item, input, item.PublishDate); err != nil {
		return nil, err
	}
	if err := srv.newsRepo.Update(ctx, item); err != nil {
		return nil, mapNotFound(err, repository.ErrNewsNotFound, domainerrors.ErrNewsNotFound, "failed to update news article")
	}

	return item, nil
}

// UploadNewsImage stores a picture for an article under news_images/.
func (srv *catalogService) UploadNewsImage(ctx context.Context, req usecase.Requester, id uuid.UUID, image *usecase.FileUpload) (*entity.NewsArticle, error) {
	if err := requireAdmin(req); err != nil {
		return nil, err
	}

	item, err := srv.findNews(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := entity.ImageExtension(image.Filename)
	if err != nil {
		return nil, domainerrors.ErrFileTypeNotAllowed
	}

	stored, err := srv.storage.Save(ctx, newsImagePrefix, ext, image.ContentType, image.Content)
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	item.ImageRef = stored.Ref
	if err := srv.newsRepo.Update(ctx, item); err != nil {
		discardStored(ctx, srv.storage, srv.log(ctx), stored.Ref)

		return nil, mapNotFound(err, repository.ErrNewsNotFound, domainerrors.ErrNewsNotFound, "failed to update news article")
	}

	return item, nil
}

func (srv *catalogService) findApprovalType(ctx context.Context, id uuid.UUID) (*entity.ApprovalType, error) {
	item, err := srv.approvalTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrApprovalTypeNotFound, domainerrors.ErrApprovalTypeNotFound, "failed to load approval type")
	}

	return item, nil
}

func (srv *catalogService) findScheme(ctx context.Context, id uuid.UUID) (*entity.GovernmentScheme, error) {
	item, err := srv.schemeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrSchemeNotFound, domainerrors.ErrSchemeNotFound, "failed to load scheme")
	}

	return item, nil
}

func (srv *catalogService) findNews(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error) {
	item, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrNewsNotFound, domainerrors.ErrNewsNotFound, "failed to load news article")
	}

	return item, nil
}

func mapNotFound(err, sentinel, notFound error, msg string) error {
	if errors.Is(err, sentinel) {
		return notFound
	}

	return errors.Wrap(err, msg)
}

func applyApprovalTypeInput(item *entity.ApprovalType, input *usecase.ApprovalTypeInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	fees := strings.TrimSpace(input.Fees)
	if fees == "" {
		fees = "0"
	}
	if !feesPattern.MatchString(fees) {
		return domainerrors.ErrValidationFailed.WrapMessage("fees must be a non-negative amount with at most two decimals")
	}

	item.Name = name
	item.Description = input.Description
	item.Department = input.Department
	item.ProcessingTime = input.ProcessingTime
	item.Fees = fees
	item.RequiredDocuments = input.RequiredDocuments
	item.IsActive = input.IsActive

	return nil
}

func applySchemeInput(item *entity.GovernmentScheme, input *usecase.SchemeInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.StartDate.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("name and start date are required")
	}
	start := entity.Today(input.StartDate)
	var end *time.Time
	if input.EndDate != nil {
		e := entity.Today(*input.EndDate)
		if e.Before(start) {
			return domainerrors.ErrValidationFailed.WrapMessage("end date must not be before start date")
		}
		end = &e
	}

	item.Name = name
	item.Description = input.Description
	item.Eligibility = input.Eligibility
	item.Benefits = input.Benefits
	item.ApplicationProcess = input.ApplicationProcess
	item.WebsiteLink = input.WebsiteLink
	item.StartDate = start
	item.EndDate = end
	item.IsActive = input.IsActive

	return nil
}

func applyNewsInput(item *entity.NewsArticle, input *usecase.NewsInput, defaultPublish time.Time) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}

	item.Title = title
	item.Content = input.Content
	item.PublishDate = input.PublishDate
	if item.PublishDate.IsZero() {
		item.PublishDate = defaultPublish
	}
	item.IsActive = input.IsActive
	item.Source = input.Source
	item.SourceURL = input.SourceURL

	return nil
}

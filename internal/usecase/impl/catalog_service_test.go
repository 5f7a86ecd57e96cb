package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/domain/service"
	mockRepo "bizease/internal/mocks/repository"
	mockSvc "bizease/internal/mocks/service"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service          *catalogService
	approvalTypeRepo *mockRepo.MockApprovalTypeRepository
	schemeRepo       *mockRepo.MockSchemeRepository
	newsRepo         *mockRepo.MockNewsRepository
	storage          *mockSvc.MockFileStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	f := catalogServiceFixtures{
		approvalTypeRepo: mockRepo.NewMockApprovalTypeRepository(t),
		schemeRepo:       mockRepo.NewMockSchemeRepository(t),
		newsRepo:         mockRepo.NewMockNewsRepository(t),
		storage:          mockSvc.NewMockFileStorage(t),
	}

	srv := NewCatalogService(CatalogServiceParams{
		ApprovalTypeRepo: f.approvalTypeRepo,
		SchemeRepo:       f.schemeRepo,
		NewsRepo:         f.newsRepo,
		Storage:          f.storage,
		Logger:           newDiscardLogger(),
	}).(*catalogService)
	srv.now = fixedClock
	f.service = srv

	return f
}

func TestCatalogService_Home(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	schemes := []*entity.GovernmentScheme{{Name: "MSME Credit"}}
	news := []*entity.NewsArticle{{Title: "New portal"}}

	fx.schemeRepo.EXPECT().ListActive(ctx, homeListLimit).Return(schemes, nil)
	fx.newsRepo.EXPECT().ListActive(ctx, homeListLimit).Return(news, nil)

	out, err := fx.service.Home(ctx)

	require.NoError(t, err)
	assert.Equal(t, schemes, out.Schemes)
	assert.Equal(t, news, out.News)
}

func TestCatalogService_GetApprovalType_HidesInactive(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	item := &entity.ApprovalType{ID: uuid.New(), IsActive: false}

	fx.approvalTypeRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

	_, err := fx.service.GetApprovalType(ctx, item.ID)

	assert.ErrorIs(t, err, domainerrors.ErrApprovalTypeNotFound)
}

func TestCatalogService_GetScheme_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.schemeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSchemeNotFound)

	_, err := fx.service.GetScheme(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrSchemeNotFound)
}

func TestCatalogService_AdminOperationsRequireAdmin(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	req, _ := businessRequester()

	_, err := fx.service.CreateApprovalType(ctx, req, &usecase.ApprovalTypeInput{Name: "Trade License"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.UpdateScheme(ctx, req, uuid.New(), &usecase.SchemeInput{Name: "x", StartDate: fixedNow})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.CreateNews(ctx, req, &usecase.NewsInput{Title: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_CreateApprovalType_Fees(t *testing.T) {
	tests := []struct {
		name     string
		fees     string
		expected string
		valid    bool
	}{
		{name: "empty defaults to zero", fees: "", expected: "0", valid: true},
		{name: "two decimals", fees: "1500.50", expected: "1500.50", valid: true},
		{name: "negative", fees: "-5", valid: false},
		{name: "three decimals", fees: "10.125", valid: false},
		{name: "not a number", fees: "free", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()
			if tt.valid {
				fx.approvalTypeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ApprovalType")).Return(nil)
			}

			item, err := fx.service.CreateApprovalType(ctx, adminRequester(), &usecase.ApprovalTypeInput{
				Name:     "Trade License",
				Fees:     tt.fees,
				IsActive: true,
			})

			if !tt.valid {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, item.Fees)
		})
	}
}

func TestCatalogService_CreateScheme_RejectsEndBeforeStart(t *testing.T) {
	fx := createTestCatalogService(t)
	end := fixedNow.AddDate(0, 0, -1)

	_, err := fx.service.CreateScheme(context.Background(), adminRequester(), &usecase.SchemeInput{
		Name:      "MSME Credit",
		StartDate: fixedNow,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateNews_DefaultsPublishDate(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.newsRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.NewsArticle")).Return(nil)

	item, err := fx.service.CreateNews(ctx, adminRequester(), &usecase.NewsInput{Title: " Portal launched ", IsActive: true})

	require.NoError(t, err)
	assert.Equal(t, "Portal launched", item.Title)
	assert.Equal(t, fixedNow, item.PublishDate)
}

func TestCatalogService_UpdateNews_KeepsPublishDate(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	published := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	item := &entity.NewsArticle{ID: uuid.New(), Title: "Old", PublishDate: published}

	fx.newsRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.newsRepo.EXPECT().Update(ctx, item).Return(nil)

	got, err := fx.service.UpdateNews(ctx, adminRequester(), item.ID, &usecase.NewsInput{Title: "New"})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, published, got.PublishDate)
}

func TestCatalogService_UploadNewsImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	item := &entity.NewsArticle{ID: uuid.New(), Title: "Launch"}

	fx.newsRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.storage.EXPECT().
		Save(ctx, newsImagePrefix, "jpg", "image/jpeg", mock.Anything).
		Return(&service.StoredFile{Ref: "news_images/a.jpg"}, nil)
	fx.newsRepo.EXPECT().Update(ctx, item).Return(nil)

	got, err := fx.service.UploadNewsImage(ctx, adminRequester(), item.ID, &usecase.FileUpload{
		Filename:    "banner.JPG",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpg"),
	})

	require.NoError(t, err)
	assert.Equal(t, "news_images/a.jpg", got.ImageRef)
}

func TestCatalogService_UploadNewsImage_RemovesImageWhenUpdateFails(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	item := &entity.NewsArticle{ID: uuid.New(), Title: "Launch"}

	fx.newsRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.storage.EXPECT().
		Save(ctx, newsImagePrefix, "png", "image/png", mock.Anything).
		Return(&service.StoredFile{Ref: "news_images/b.png"}, nil)
	fx.newsRepo.EXPECT().Update(ctx, item).Return(errors.New("db down"))
	// A failing cleanup is logged; the caller still sees the update error.
	fx.storage.EXPECT().Delete(mock.Anything, "news_images/b.png").Return(errors.New("bucket unavailable")).Once()

	_, err := fx.service.UploadNewsImage(ctx, adminRequester(), item.ID, &usecase.FileUpload{
		Filename:    "banner.png",
		ContentType: "image/png",
		Content:     strings.NewReader("png"),
	})

	assert.EqualError(t, err, "failed to update news article: db down")
}

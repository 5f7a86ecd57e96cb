package handler

import (
	"log/slog"
	"time"

	"bizease/internal/delivery/api/response"
	"bizease/internal/domain/entity"
	"bizease/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves approval types, schemes and news, plus their administration.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

type ApprovalTypeRequest struct {
	Name              string `json:"name" validate:"required,max=200"`
	Description       string `json:"description" validate:"required"`
	Department        string `json:"department" validate:"required,max=200"`
	ProcessingTime    string `json:"processing_time" validate:"required,max=100"`
	Fees              string `json:"fees" validate:"required"`
	RequiredDocuments string `json:"required_documents" validate:"required"`
	IsActive          *bool  `json:"is_active"`
}

type SchemeRequest struct {
	Name               string `json:"name" validate:"required,max=200"`
	Description        string `json:"description" validate:"required"`
	Eligibility        string `json:"eligibility" validate:"required"`
	Benefits           string `json:"benefits" validate:"required"`
	ApplicationProcess string `json:"application_process" validate:"required"`
	WebsiteLink        string `json:"website_link" validate:"omitempty,url"`
	StartDate          string `json:"start_date" validate:"required"`
	EndDate            string `json:"end_date"`
	IsActive           *bool  `json:"is_active"`
}

type NewsRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"required"`
	PublishDate string `json:"publish_date"` // RFC 3339; empty keeps the current value or uses now
	IsActive    *bool  `json:"is_active"`
	Source      string `json:"source" validate:"max=100"`
	SourceURL   string `json:"source_url" validate:"omitempty,url"`
}

type HomeResponse struct {
	Schemes []*entity.GovernmentScheme `json:"schemes"`
	News    []*entity.NewsArticle      `json:"news"`
}

// Home is the public landing page.
func (h *CatalogHandler) Home(c echo.Context) error {
	out, err := h.catalogUC.Home(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &HomeResponse{
		Schemes: nonNil(out.Schemes),
		News:    nonNil(out.News),
	})
}

func (h *CatalogHandler) ListApprovalTypes(c echo.Context) error {
	items, err := h.catalogUC.ListApprovalTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(items))
}

func (h *CatalogHandler) GetApprovalType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.GetApprovalType(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *CatalogHandler) ListSchemes(c echo.Context) error {
	items, err := h.catalogUC.ListSchemes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(items))
}

func (h *CatalogHandler) GetScheme(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.GetScheme(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *CatalogHandler) ListNews(c echo.Context) error {
	items, err := h.catalogUC.ListNews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(items))
}

func (h *CatalogHandler) GetNews(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.GetNews(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *CatalogHandler) CreateApprovalType(c echo.Context) error {
	req, input, err := h.approvalTypeInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.CreateApprovalType(c.Request().Context(), req, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, item)
}

func (h *CatalogHandler) UpdateApprovalType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	req, input, err := h.approvalTypeInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.UpdateApprovalType(c.Request().Context(), req, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *CatalogHandler) CreateScheme(c echo.Context) error {
	req, input, err := h.schemeInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.CreateScheme(c.Request().Context(), req, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, item)
}

func (h *CatalogHandler) UpdateScheme(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	req, input, err := h.schemeInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.UpdateScheme(c.Request().Context(), req, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *CatalogHandler) CreateNews(c echo.Context) error {
	req, input, err := h.newsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.CreateNews(c.Request().Context(), req, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, item)
}

func (h *CatalogHandler) UpdateNews(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	req, input, err := h.newsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.UpdateNews(c.Request().Context(), req, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

// UploadNewsImage expects the image in the multipart field "image".
func (h *CatalogHandler) UploadNewsImage(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	image, closeFile, err := formFile(c, "image")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFile()

	item, err := h.catalogUC.UploadNewsImage(c.Request().Context(), req, id, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *CatalogHandler) approvalTypeInput(c echo.Context) (usecase.Requester, *usecase.ApprovalTypeInput, error) {
	req, err := requester(c)
	if err != nil {
		return req, nil, err
	}

	var body ApprovalTypeRequest
	if err := bindAndValidate(c, &body); err != nil {
		return req, nil, err
	}

	return req, &usecase.ApprovalTypeInput{
		Name:              body.Name,
		Description:       body.Description,
		Department:        body.Department,
		ProcessingTime:    body.ProcessingTime,
		Fees:              body.Fees,
		RequiredDocuments: body.RequiredDocuments,
		IsActive:          activeOrDefault(body.IsActive),
	}, nil
}

func (h *CatalogHandler) schemeInput(c echo.Context) (usecase.Requester, *usecase.SchemeInput, error) {
	req, err := requester(c)
	if err != nil {
		return req, nil, err
	}

	var body SchemeRequest
	if err := bindAndValidate(c, &body); err != nil {
		return req, nil, err
	}
	start, err := parseDate("start_date", body.StartDate)
	if err != nil {
		return req, nil, err
	}
	end, err := parseOptionalDate("end_date", body.EndDate)
	if err != nil {
		return req, nil, err
	}

	return req, &usecase.SchemeInput{
		Name:               body.Name,
		Description:        body.Description,
		Eligibility:        body.Eligibility,
		Benefits:           body.Benefits,
		ApplicationProcess: body.ApplicationProcess,
		WebsiteLink:        body.WebsiteLink,
		StartDate:          start,
		EndDate:            end,
		IsActive:           activeOrDefault(body.IsActive),
	}, nil
}

func (h *CatalogHandler) newsInput(c echo.Context) (usecase.Requester, *usecase.NewsInput, error) {
	req, err := requester(c)
	if err != nil {
		return req, nil, err
	}

	var body NewsRequest
	if err := bindAndValidate(c, &body); err != nil {
		return req, nil, err
	}

	var published time.Time
	if body.PublishDate != "" {
		published, err = time.Parse(time.RFC3339, body.PublishDate)
		if err != nil {
			return req, nil, invalidField("publish_date must be an RFC 3339 timestamp")
		}
	}

	return req, &usecase.NewsInput{
		Title:       body.Title,
		Content:     body.Content,
		PublishDate: published,
		IsActive:    activeOrDefault(body.IsActive),
		Source:      body.Source,
		SourceURL:   body.SourceURL,
	}, nil
}

func activeOrDefault(v *bool) bool {
	return v == nil || *v
}

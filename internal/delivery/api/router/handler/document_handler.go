package handler

import (
	"log/slog"
	"mime"
	"net/http"

	"bizease/internal/delivery/api/response"
	"bizease/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	formDocumentType   = "document_type"
	formDocument       = "document"
	formSignatureImage = "signature_image"
)

type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

// Upload attaches a supporting document to an application.
func (h *DocumentHandler) Upload(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	applicationID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	documentType := c.FormValue(formDocumentType)
	if documentType == "" {
		return response.HandleAppError(c, invalidField(formDocumentType+" is required"))
	}

	file, closeFile, err := formFile(c, formDocument)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFile()

	doc, err := h.documentUC.Upload(c.Request().Context(), req, applicationID, documentType, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, doc)
}

// OpenFile streams the stored document back to its owner.
func (h *DocumentHandler) OpenFile(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	documentID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := h.documentUC.Open(c.Request().Context(), req, documentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer file.Body.Close()

	disposition := mime.FormatMediaType("inline", map[string]string{"filename": file.Document.OriginalName})
	if disposition != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	}

	return c.Stream(http.StatusOK, file.ContentType, file.Body)
}

// Sign records a signature image for a document.
func (h *DocumentHandler) Sign(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	documentID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	image, closeFile, err := formFile(c, formSignatureImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFile()

	signature, err := h.documentUC.Sign(c.Request().Context(), req, documentID, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, signature)
}

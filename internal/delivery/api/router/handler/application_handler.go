package handler

import (
	"log/slog"
	"net/http"

	"bizease/internal/delivery/api/response"
	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	statusDateLayout     = "2006-01-02 15:04:05"
	headerTrackingURL    = "X-Tracking-URL"
	applicationIDParam   = "id"
	applicationNumberKey = "application_number"
)

type ApplicationHandlerParams struct {
	fx.In

	ApplicationUC usecase.ApplicationUsecase
	Logger        *slog.Logger
}

// ApplicationHandler serves the approval application workflow and the public status lookup.
type ApplicationHandler struct {
	applicationUC usecase.ApplicationUsecase
	logger        *slog.Logger
}

func NewApplicationHandler(params ApplicationHandlerParams) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: params.ApplicationUC,
		logger:        params.Logger,
	}
}

type CreateApplicationRequest struct {
	ApprovalTypeID string `json:"approval_type_id" validate:"required"`
	Notes          string `json:"notes" validate:"max=2000"`
}

type ReviewRequest struct {
	Status          string `json:"status" validate:"required,oneof=under_review approved rejected additional_info_required"`
	RejectionReason string `json:"rejection_reason"`
}

type ApplicationDetailsResponse struct {
	*entity.ApprovalApplication
	Documents []*entity.ApplicationDocument `json:"documents"`
}

// StatusResponse is the body of the public status endpoint. It is not wrapped in the API envelope.
type StatusResponse struct {
	ApplicationNumber string  `json:"application_number"`
	ApprovalType      string  `json:"approval_type"`
	Status            string  `json:"status"`
	SubmissionDate    *string `json:"submission_date"`
	ApprovalDate      *string `json:"approval_date"`
}

type statusError struct {
	Error string `json:"error"`
}

func (h *ApplicationHandler) List(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	apps, err := h.applicationUC.List(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(apps))
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var body CreateApplicationRequest
	if err := bindAndValidate(c, &body); err != nil {
		return response.HandleAppError(c, err)
	}

	approvalTypeID, err := uuid.Parse(body.ApprovalTypeID)
	if err != nil {
		return response.HandleAppError(c, invalidField("invalid approval_type_id"))
	}

	app, err := h.applicationUC.Create(c.Request().Context(), req, &usecase.CreateApplicationInput{
		ApprovalTypeID: approvalTypeID,
		Notes:          body.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, app)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	req, id, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	details, err := h.applicationUC.GetDetails(c.Request().Context(), req, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &ApplicationDetailsResponse{
		ApprovalApplication: details.Application,
		Documents:           nonNil(details.Documents),
	})
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	req, id, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	app, err := h.applicationUC.Submit(c.Request().Context(), req, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, app)
}

// Review is the administrator decision on a submitted application.
func (h *ApplicationHandler) Review(c echo.Context) error {
	req, id, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var body ReviewRequest
	if err := bindAndValidate(c, &body); err != nil {
		return response.HandleAppError(c, err)
	}

	app, err := h.applicationUC.Review(c.Request().Context(), req, id, &usecase.ReviewInput{
		Status:          body.Status,
		RejectionReason: body.RejectionReason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, app)
}

// TrackingQR returns a PNG that encodes the public status URL.
func (h *ApplicationHandler) TrackingQR(c echo.Context) error {
	req, id, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	code, err := h.applicationUC.TrackingQR(c.Request().Context(), req, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(headerTrackingURL, code.URL)

	return c.Blob(http.StatusOK, "image/png", code.PNG)
}

// Status is the unauthenticated lookup by application number. It answers every method
// so that anything other than GET gets a 405 in the same JSON shape.
func (h *ApplicationHandler) Status(c echo.Context) error {
	if c.Request().Method != http.MethodGet {
		return c.JSON(http.StatusMethodNotAllowed, statusError{Error: "Invalid request method"})
	}

	view, err := h.applicationUC.Status(c.Request().Context(), c.Param(applicationNumberKey))
	if errors.Is(err, domainerrors.ErrApplicationNotFound) {
		return c.JSON(http.StatusNotFound, statusError{Error: "Application not found"})
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Status lookup failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, statusError{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, &StatusResponse{
		ApplicationNumber: view.ApplicationNumber,
		ApprovalType:      view.ApprovalType,
		Status:            string(view.Status),
		SubmissionDate:    formatStatusDate(view.SubmissionDate),
		ApprovalDate:      formatStatusDate(view.ApprovalDate),
	})
}

func (h *ApplicationHandler) target(c echo.Context) (usecase.Requester, uuid.UUID, error) {
	req, err := requester(c)
	if err != nil {
		return req, uuid.Nil, err
	}
	id, err := pathID(c, applicationIDParam)

	return req, id, err
}

package handler

import (
	"log/slog"

	"bizease/internal/delivery/api/response"
	"bizease/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ComplianceHandlerParams struct {
	fx.In

	ComplianceUC usecase.ComplianceUsecase
	Logger       *slog.Logger
}

type ComplianceHandler struct {
	complianceUC usecase.ComplianceUsecase
	logger       *slog.Logger
}

func NewComplianceHandler(params ComplianceHandlerParams) *ComplianceHandler {
	return &ComplianceHandler{
		complianceUC: params.ComplianceUC,
		logger:       params.Logger,
	}
}

type CreateComplianceRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" validate:"required"`
}

type SweepResponse struct {
	Candidates int `json:"candidates"`
	Sent       int `json:"sent"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

func (h *ComplianceHandler) List(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.complianceUC.List(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(items))
}

func (h *ComplianceHandler) Create(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var body CreateComplianceRequest
	if err := bindAndValidate(c, &body); err != nil {
		return response.HandleAppError(c, err)
	}
	due, err := parseDate("due_date", body.DueDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.complianceUC.Create(c.Request().Context(), req, &usecase.CreateComplianceInput{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     due,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, item)
}

func (h *ComplianceHandler) Complete(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.complianceUC.MarkComplete(c.Request().Context(), req, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

// SweepReminders runs the reminder sweep for every business on demand.
func (h *ComplianceHandler) SweepReminders(c echo.Context) error {
	result, err := h.complianceUC.SweepAllReminders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &SweepResponse{
		Candidates: result.Candidates,
		Sent:       result.Sent,
		Skipped:    result.Skipped,
		Failed:     result.Failed,
	})
}

package handler

import (
	"log/slog"

	"bizease/internal/delivery/api/response"
	"bizease/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

type ProfileRequest struct {
	BusinessName       string `json:"business_name" validate:"required,max=200"`
	BusinessType       string `json:"business_type" validate:"required"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=50"`
	Address            string `json:"address" validate:"required"`
	ContactPerson      string `json:"contact_person" validate:"required,max=100"`
	ContactNumber      string `json:"contact_number" validate:"required,max=15"`
	Email              string `json:"email" validate:"required,email"`
	DateEstablished    string `json:"date_established" validate:"required"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}

// UpsertProfile answers 201 when the profile was created and 200 when it was updated.
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var body ProfileRequest
	if err := bindAndValidate(c, &body); err != nil {
		return response.HandleAppError(c, err)
	}
	established, err := parseDate("date_established", body.DateEstablished)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, created, err := h.profileUC.UpsertProfile(c.Request().Context(), req, &usecase.ProfileInput{
		BusinessName:       body.BusinessName,
		BusinessType:       body.BusinessType,
		RegistrationNumber: body.RegistrationNumber,
		Address:            body.Address,
		ContactPerson:      body.ContactPerson,
		ContactNumber:      body.ContactNumber,
		Email:              body.Email,
		DateEstablished:    established,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if created {
		return response.Created(c, profile)
	}

	return response.OK(c, profile)
}

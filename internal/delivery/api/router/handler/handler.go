// Package handler contains the HTTP handlers of the portal API.
package handler

import (
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"bizease/internal/delivery/api/middleware"
	"bizease/internal/delivery/api/response"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

func requester(c echo.Context) (usecase.Requester, error) {
	req, ok := middleware.GetRequester(c)
	if !ok {
		return usecase.Requester{}, domainerrors.ErrUnauthorized
	}

	return req, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, invalidField("invalid " + name)
	}

	return id, nil
}

// bindAndValidate decodes the request body into dst and runs the struct validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return invalidField("invalid request body")
	}
	if err := c.Validate(dst); err != nil {
		return invalidField(err.Error())
	}

	return nil
}

func invalidField(message string) error {
	return domainerrors.ErrValidationFailed.WrapMessage(message)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, invalidField(field + " must be a date in YYYY-MM-DD format")
	}

	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// formFile opens the multipart file sent under field. A missing file is a validation error.
// The returned closer must be called once the upload has been consumed.
func formFile(c echo.Context, field string) (*usecase.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, invalidField(field + " file is required")
	}
	if err != nil {
		return nil, nil, invalidField("invalid multipart form")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open uploaded file")
	}

	return toFileUpload(header, file), func() { _ = file.Close() }, nil
}

func toFileUpload(header *multipart.FileHeader, file multipart.File) *usecase.FileUpload {
	return &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}
}

func formatStatusDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(statusDateLayout)

	return &s
}

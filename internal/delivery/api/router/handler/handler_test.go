package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "bizease/internal/delivery/api/middleware"
	"bizease/internal/delivery/api/validator"
	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/entity"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("5f0c8a8e-4d1e-4a53-9d3c-1a2b3c4d5e6f")

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

type testCall struct {
	method    string
	target    string
	body      io.Reader
	header    http.Header
	params    map[string]string
	anonymous bool
	roles     entity.Roles
}

func businessCaller() usecase.Requester {
	return usecase.Requester{UserID: testUserID, Roles: entity.Roles{entity.RoleBusiness}}
}

func jsonCall(method, target, body string) testCall {
	return testCall{
		method: method,
		target: target,
		body:   strings.NewReader(body),
		header: http.Header{echo.HeaderContentType: []string{echo.MIMEApplicationJSON}},
	}
}

// serve runs h with the production validator and error handler and returns the recorded response.
func serve(t *testing.T, h echo.HandlerFunc, call testCall) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	req := httptest.NewRequest(call.method, call.target, call.body)
	for k, v := range call.header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(call.params))
	values := make([]string, 0, len(call.params))
	for k, v := range call.params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if !call.anonymous {
		roles := call.roles
		if roles == nil {
			roles = entity.Roles{entity.RoleBusiness}
		}
		deliverycontext.SetIdentity(c, testUserID, roles)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

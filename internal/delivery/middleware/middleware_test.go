package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizease/config"
	deliverycontext "bizease/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "client value kept", incoming: "abc-123", keep: true},
		{name: "oversized value replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
		{name: "control characters replaced", incoming: "bad\nid", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})

			require.NoError(t, handler(c))
			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestLoggerMiddleware_LogsFailuresOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}
	e := echo.New()
	mw := NewLoggerMiddleware(logger, cfg)

	ok := mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	rec := httptest.NewRecorder()
	require.NoError(t, ok(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/home", nil), rec)))
	assert.Empty(t, buf.String())

	failing := mw.Handle(func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "missing") })
	rec = httptest.NewRecorder()
	require.NoError(t, failing(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/nope", nil), rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=404")
}

package worker

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizease/config"
	"bizease/internal/delivery/worker/handler"
	"bizease/internal/domain/service"
	mockSvc "bizease/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorker(t *testing.T) (*config.Config, *slog.Logger, *mockSvc.MockMailer, *handler.PushHandler) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mailer := mockSvc.NewMockMailer(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Mailer: mailer})

	return cfg, logger, mailer, push
}

func TestWorkerRoutes(t *testing.T) {
	cfg, logger, mailer, push := newTestWorker(t)
	e := newEcho(cfg, logger, push)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("push delivers the event", func(t *testing.T) {
		raw, err := json.Marshal(&service.EmailEvent{
			Kind:    service.EmailKindComplianceReminder,
			Subject: "Compliance Reminder: GST Return Filing",
			Body:    "due soon",
			To:      []string{"owner@acme.test"},
		})
		require.NoError(t, err)
		var msg handler.PubSubMessage
		msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
		msg.Message.MessageID = "msg-1"
		body, err := json.Marshal(msg)
		require.NoError(t, err)

		mailer.EXPECT().
			SendEmail(mock.Anything, "Compliance Reminder: GST Return Filing", "due soon", "", []string{"owner@acme.test"}).
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("oversized push is rejected", func(t *testing.T) {
		body := `{"message":{"data":"` + strings.Repeat("A", 2<<20) + `"}}`
		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestNewServer_UsesWorkerPort(t *testing.T) {
	cfg, logger, _, push := newTestWorker(t)
	cfg.PubSub.WorkerPort = 9099
	lc := fxtest.NewLifecycle(t)

	d, err := NewServer(ServerParams{Lc: lc, Cfg: cfg, Logger: logger, PushHandler: push})

	require.NoError(t, err)
	assert.Equal(t, 9099, d.(*workerServer).port)
	lc.RequireStart()
	lc.RequireStop()
}

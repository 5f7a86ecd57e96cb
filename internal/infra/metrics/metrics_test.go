package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizease/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_WorkflowCounters(t *testing.T) {
	m := New()

	m.ApplicationCreated()
	m.ApplicationSubmitted()
	m.ApplicationSubmitted()
	m.DocumentUploaded(true)
	m.DocumentUploaded(false)
	m.DocumentUploaded(false)
	m.ReminderSent()
	m.NotificationPublished(service.EmailKindComplianceReminder, nil)
	m.NotificationPublished(service.EmailKindComplianceReminder, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.applicationsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.applicationsSubmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.documentsUploaded.WithLabelValues("true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.documentsUploaded.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remindersSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("compliance_reminder", "failed")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SignatureAdded()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bizease_documents_signatures_total 1")
}

// Package metrics exposes Prometheus collectors for the portal.
package metrics

import (
	"net/http"
	"strconv"

	"bizease/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bizease"

// Metrics holds the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	applicationsCreated   prometheus.Counter
	applicationsSubmitted prometheus.Counter
	documentsUploaded     *prometheus.CounterVec
	signaturesAdded       prometheus.Counter
	remindersSent         prometheus.Counter
	notifications         *prometheus.CounterVec
}

var _ service.WorkflowMetrics = (*Metrics)(nil)

// New creates the collectors on a fresh registry, including process and Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),
		applicationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "created_total",
			Help:      "Approval applications created.",
		}),
		applicationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "submitted_total",
			Help:      "Approval applications submitted.",
		}),
		documentsUploaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "uploaded_total",
			Help:      "Application documents uploaded.",
		}, []string{"verified"}),
		signaturesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "signatures_total",
			Help:      "Digital signatures attached to documents.",
		}),
		remindersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "compliance",
			Name:      "reminders_sent_total",
			Help:      "Compliance reminders claimed and published.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "published_total",
			Help:      "Email events handed to the notification transport.",
		}, []string{"kind", "result"}),
	}

	m.registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.applicationsCreated,
		m.applicationsSubmitted,
		m.documentsUploaded,
		m.signaturesAdded,
		m.remindersSent,
		m.notifications,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ApplicationCreated()   { m.applicationsCreated.Inc() }
func (m *Metrics) ApplicationSubmitted() { m.applicationsSubmitted.Inc() }
func (m *Metrics) SignatureAdded()       { m.signaturesAdded.Inc() }
func (m *Metrics) ReminderSent()         { m.remindersSent.Inc() }

func (m *Metrics) DocumentUploaded(verified bool) {
	m.documentsUploaded.WithLabelValues(strconv.FormatBool(verified)).Inc()
}

func (m *Metrics) NotificationPublished(kind service.EmailKind, err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	m.notifications.WithLabelValues(string(kind), result).Inc()
}

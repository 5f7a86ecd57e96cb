package service

import (
	"context"
)

// EmailKind labels an email event for routing and metrics.
type EmailKind string

const (
	EmailKindApplicationSubmitted EmailKind = "application_submitted"
	EmailKindComplianceReminder   EmailKind = "compliance_reminder"
)

// EmailEvent is a notification handed to the mail delivery side channel.
type EmailEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Kind      EmailKind `json:"kind"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	From      string    `json:"from,omitempty"` // Empty means the configured default sender
	To        []string  `json:"to"`
}

// EventPublisher defines the interface for publishing email events.
// Callers treat failures as best-effort: they are logged, never propagated.
type EventPublisher interface {
	// PublishEmailEvent hands the event to the configured transport.
	PublishEmailEvent(ctx context.Context, event *EmailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// Mailer sends an email synchronously.
type Mailer interface {
	SendEmail(ctx context.Context, subject, body, from string, to []string) error
}

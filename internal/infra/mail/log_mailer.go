package mail

import (
	"context"
	"log/slog"

	"bizease/internal/domain/service"
)

type logMailer struct {
	logger      *slog.Logger
	defaultFrom string
}

// NewLogMailer returns a mailer that only logs outgoing mail. Used in development.
func NewLogMailer(logger *slog.Logger, defaultFrom string) service.Mailer {
	return &logMailer{logger: logger, defaultFrom: defaultFrom}
}

func (m *logMailer) SendEmail(ctx context.Context, subject, body, from string, to []string) error {
	if from == "" {
		from = m.defaultFrom
	}

	m.logger.InfoContext(ctx, "[LogMailer] Email",
		slog.String("from", from),
		slog.Any("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}

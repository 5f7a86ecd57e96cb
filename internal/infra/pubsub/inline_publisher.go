package pubsub

import (
	"context"
	"log/slog"

	"bizease/internal/domain/service"
)

// inlinePublisher delivers email events directly through the Mailer, without a broker.
type inlinePublisher struct {
	mailer service.Mailer
	logger *slog.Logger
}

// NewInlinePublisher creates a publisher that sends each event synchronously.
func NewInlinePublisher(mailer service.Mailer, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{mailer: mailer, logger: logger}
}

func (p *inlinePublisher) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "[InlinePubSub] Delivering email event",
		slog.String("kind", string(event.Kind)),
		slog.Int("recipient_count", len(event.To)),
	)

	return p.mailer.SendEmail(ctx, event.Subject, event.Body, event.From, event.To)
}

func (p *inlinePublisher) Close() error {
	return nil
}

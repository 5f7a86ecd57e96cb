package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bizease/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Notification traffic is a few messages per request, so batching only adds latency.
const publishDelayThreshold = 10 * time.Millisecond

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher publishes email events to a Cloud Pub/Sub topic.
// The topic must already exist; the mail worker subscribes to it with a push subscription.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "notification topic %s is not available", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelayThreshold

	logger.Info("Publishing email events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishEmailEvent blocks until the server acknowledged the message.
func (p *googlePublisher) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event", event.Kind)
	}

	p.logger.DebugContext(ctx, "Email event published",
		slog.String("topic", p.topic),
		slog.String("kind", string(event.Kind)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

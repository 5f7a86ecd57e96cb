package pubsub

import (
	"bizease/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrNoRecipients rejects an event that could never be delivered.
var ErrNoRecipients = errors.New("email event has no recipients")

func validateEvent(event *service.EmailEvent) error {
	if event == nil || len(event.To) == 0 {
		return ErrNoRecipients
	}

	return nil
}

// eventAttributes are the message attributes the mail worker reads before decoding the payload.
func eventAttributes(event *service.EmailEvent) map[string]string {
	attributes := map[string]string{
		"kind": string(event.Kind),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

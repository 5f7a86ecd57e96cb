package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bizease/config"
	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushVerifier authenticates a push request before its payload is trusted.
type PushVerifier func(req *http.Request) error

// PushHandler delivers email events pushed by Pub/Sub (or the local publisher).
type PushHandler struct {
	verify PushVerifier
	logger *slog.Logger
	mailer service.Mailer
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mailer service.Mailer
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger: params.Logger,
		mailer: params.Mailer,
	}
	if cfg := params.Config.PubSub; cfg != nil && cfg.VerifyPushAuth {
		audience := cfg.PushAudience
		h.verify = func(req *http.Request) error {
			return verifyPubSubToken(req, audience)
		}
	}

	return h
}

// WithVerifier replaces the push authentication check.
func (h *PushHandler) WithVerifier(verify PushVerifier) *PushHandler {
	h.verify = verify

	return h
}

// HandlePush acknowledges malformed messages with 200 so Pub/Sub drops them,
// and answers 500 when the mailer fails so the message is redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := decodeEmailEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Dropping malformed email event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.mailer.SendEmail(ctx, event.Subject, event.Body, event.From, event.To); err != nil {
		reqLogger.Error("[Worker] Failed to send email",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusInternalServerError)
	}

	reqLogger.Info("[Worker] Email sent",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("kind", string(event.Kind)),
		slog.Int("recipients", len(event.To)),
	)

	return c.NoContent(http.StatusOK)
}

func decodeEmailEvent(pushMsg *PubSubMessage) (*service.EmailEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.EmailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal email event")
	}
	if len(event.To) == 0 {
		return nil, errors.New("email event has no recipients")
	}
	if strings.TrimSpace(event.Subject) == "" {
		return nil, errors.New("email event has no subject")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.EmailEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// An empty audience means the URL of this endpoint.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

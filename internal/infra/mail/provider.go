package mail

import (
	"context"
	"log/slog"

	"bizease/config"
	"bizease/internal/domain/constants"
	"bizease/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MailerParams holds dependencies for the Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the mail provider from configuration.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		cfg = &config.MailConfig{Provider: constants.MailProviderLog}
	}

	switch cfg.Provider {
	case "", constants.MailProviderLog:
		params.Logger.Info("Using log mailer")

		return NewLogMailer(params.Logger, cfg.FromAddress), nil

	case constants.MailProviderSES:
		params.Logger.Info("Using AWS SES mailer", slog.String("region", cfg.Region))

		return NewSESMailer(params.Ctx, cfg.Region, cfg.FromAddress)

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}

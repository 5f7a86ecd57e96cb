// Package mail provides the outbound email collaborator.
package mail

import (
	"context"

	"bizease/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"
)

// SESAPI is the subset of the SES client used by the mailer.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client      SESAPI
	defaultFrom string
}

// NewSESMailer loads the default AWS credential chain for region.
func NewSESMailer(ctx context.Context, region, defaultFrom string) (service.Mailer, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	return NewSESMailerWithClient(ses.NewFromConfig(awsCfg), defaultFrom), nil
}

// NewSESMailerWithClient wraps an existing SES client.
func NewSESMailerWithClient(client SESAPI, defaultFrom string) service.Mailer {
	return &sesMailer{client: client, defaultFrom: defaultFrom}
}

// SendEmail sends a plain text email.
func (m *sesMailer) SendEmail(ctx context.Context, subject, body, from string, to []string) error {
	if len(to) == 0 {
		return errors.New("no recipients")
	}
	if from == "" {
		from = m.defaultFrom
	}

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: to,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(from),
	})

	return errors.Wrap(err, "ses send email")
}

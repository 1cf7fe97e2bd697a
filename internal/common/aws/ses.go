// internal/common/aws/ses.go
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService is the surface of the SES client used for sending, kept
// narrow so tests can substitute a mock.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer sends candidate notification emails through Amazon SES.
type SESMailer struct {
	client    SESService
	fromEmail string
}

func NewSESMailer(ctx context.Context, region, fromEmail string) (*SESMailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), fromEmail: fromEmail}, nil
}

// NewSESMailerWithClient wires a pre-built client, used by tests.
func NewSESMailerWithClient(client SESService, fromEmail string) *SESMailer {
	return &SESMailer{client: client, fromEmail: fromEmail}
}

func (m *SESMailer) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(textBody)},
				Html: &types.Content{Data: aws.String(htmlBody)},
			},
		},
		Source: aws.String(m.fromEmail),
	})
	return err
}

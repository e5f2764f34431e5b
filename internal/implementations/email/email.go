package email

import (
	"context"
	"fmt"
	"strings"

	"passport/internal/core/domain/email"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const CHARSET = "UTF-8"

type SesSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender string
}

func NewSesSender(awsConfig aws.Config, sender string) *SesSender {
	return &SesSender{
		ses:    ses.NewFromConfig(awsConfig),
		sender: sender,
	}
}

func (s *SesSender) Send(ctx context.Context, msg email.Message) error {
	subject := interpolate(msg.Subject, msg.Params)
	body := interpolate(msg.Body, msg.Params)

	to := msg.To
	if msg.DisplayName != "" {
		to = fmt.Sprintf("%s <%s>", msg.DisplayName, msg.To)
	}

	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{to},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Charset: aws.String(CHARSET),
					Data:    &subject,
				},
				Body: &types.Body{
					Text: &types.Content{
						Charset: aws.String(CHARSET),
						Data:    &body,
					},
				},
			},
		},
	)
	return err
}

// interpolate substitutes {key} placeholders in the template with the
// corresponding parameter values.
func interpolate(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// internal/common/aws/ses.go
package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

func NewSESClient(cfg aws.Config) *ses.Client {
	return ses.NewFromConfig(cfg)
}

// PlainTextEmail builds a UTF-8 text-only message.
func PlainTextEmail(from string, to []string, subject, body string) *ses.SendEmailInput {
	charset := aws.String("UTF-8")
	return &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: to,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: charset},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: charset},
			},
		},
		Source: aws.String(from),
	}
}

// internal/common/aws/sns.go
package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

func NewSNSClient(cfg aws.Config) *sns.Client {
	return sns.NewFromConfig(cfg)
}

// maxSubjectLength is the SNS limit for email-protocol subscriptions.
const maxSubjectLength = 100

// TopicMessage builds a publish request. Attributes become String message
// attributes so subscriptions can filter on them.
func TopicMessage(topicARN, subject, message string, attributes map[string]string) *sns.PublishInput {
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength]
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(attributes))
		for k, v := range attributes {
			// SNS rejects empty attribute values
			if v == "" {
				continue
			}
			input.MessageAttributes[k] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(v),
			}
		}
	}
	return input
}

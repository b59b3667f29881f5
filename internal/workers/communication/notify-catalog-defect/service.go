// internal/workers/communication/notify-catalog-defect/service.go
package notifycatalogdefect

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"

	awsclients "tribunal-workers/internal/common/aws"
	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
)

type Service struct {
	config *Config
	sns    SNSPublisher
	ses    SESSender
	logger logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	return &Service{
		config: config,
		sns:    deps.SNS,
		ses:    deps.SES,
		logger: deps.Logger,
	}
}

// Execute sends the alert on every enabled channel. A channel failure fails
// the whole alert so the job is retried.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	output := &Output{
		AlertID:  uuid.New().String(),
		Channels: []string{},
	}
	subject := Subject(input)
	body := Body(input, output.AlertID)

	if s.config.SNSEnabled {
		res, err := s.sns.Publish(ctx, awsclients.TopicMessage(s.config.TopicARN, subject, body, map[string]string{
			"benefit":   input.Benefit,
			"errorCode": input.ErrorCode,
		}))
		if err != nil {
			return nil, errors.NewAlertPublishFailedError(ChannelSNS, err)
		}
		output.SNSMessageID = aws.ToString(res.MessageId)
		output.Channels = append(output.Channels, ChannelSNS)
	}

	if s.config.SESEnabled {
		res, err := s.ses.SendEmail(ctx, awsclients.PlainTextEmail(s.config.FromEmail, s.config.To, subject, body))
		if err != nil {
			return nil, errors.NewAlertPublishFailedError(ChannelSES, err)
		}
		output.EmailMessageID = aws.ToString(res.MessageId)
		output.Channels = append(output.Channels, ChannelSES)
	}

	if len(output.Channels) == 0 {
		s.logger.Warn("no alert channel enabled", map[string]interface{}{
			"caseId":  input.CaseID,
			"alertId": output.AlertID,
		})
	}

	output.SentAt = time.Now().UTC()
	s.logger.Info("catalog defect alert sent", map[string]interface{}{
		"caseId":   input.CaseID,
		"alertId":  output.AlertID,
		"channels": output.Channels,
	})
	return output, nil
}

func Subject(input *Input) string {
	return fmt.Sprintf("[%s] %s decision notice catalog defect", input.ErrorCode, input.Benefit)
}

func Body(input *Input, alertID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Alert: %s\n", alertID)
	fmt.Fprintf(&b, "Case: %s\n", input.CaseID)
	fmt.Fprintf(&b, "Benefit: %s\n", input.Benefit)
	if input.EvaluationID != "" {
		fmt.Fprintf(&b, "Evaluation: %s\n", input.EvaluationID)
	}
	fmt.Fprintf(&b, "Error: %s\n", input.ErrorCode)
	fmt.Fprintf(&b, "Message: %s\n", input.ErrorMessage)
	if input.ErrorDetails != "" {
		fmt.Fprintf(&b, "\n%s\n", input.ErrorDetails)
	}
	return b.String()
}

// internal/workers/communication/notify-catalog-defect/models.go
package notifycatalogdefect

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"tribunal-workers/internal/common/logger"
)

const (
	ChannelSNS = "sns"
	ChannelSES = "ses"
)

// Input carries the variables of a thrown CATALOG_DEFECT error.
type Input struct {
	CaseID       string `json:"caseId"`
	Benefit      string `json:"benefit"`
	EvaluationID string `json:"evaluationId,omitempty"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	ErrorDetails string `json:"errorDetails,omitempty"`
}

type Output struct {
	AlertID        string    `json:"alertId"`
	SNSMessageID   string    `json:"snsMessageId,omitempty"`
	EmailMessageID string    `json:"emailMessageId,omitempty"`
	Channels       []string  `json:"channels"`
	SentAt         time.Time `json:"sentAt"`
}

// SNSPublisher is the part of *sns.Client the notifier uses.
type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SESSender is the part of *ses.Client the notifier uses.
type SESSender interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type ServiceDependencies struct {
	SNS    SNSPublisher
	SES    SESSender
	Logger logger.Logger
}

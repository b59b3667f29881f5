// internal/workers/communication/notify-catalog-defect/handler_test.go
package notifycatalogdefect

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tribunal-workers/internal/common/config"
	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
)

// ==========================
// Mock AWS Clients
// ==========================

type MockSNS struct {
	mock.Mock
}

func (m *MockSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sns.PublishOutput), args.Error(1)
}

type MockSES struct {
	mock.Mock
}

func (m *MockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout:    15 * time.Second,
		SNSEnabled: true,
		TopicARN:   "arn:aws:sns:eu-west-2:123456789012:decision-notice-defects",
		SESEnabled: true,
		FromEmail:  "alerts@tribunals.example",
		To:         []string{"ops@tribunals.example"},
	}
}

func createTestLogger(t *testing.T) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}

func createTestHandler(t *testing.T, cfg *Config, snsClient *MockSNS, sesClient *MockSES) *Handler {
	return NewHandler(cfg, ServiceDependencies{
		SNS:    snsClient,
		SES:    sesClient,
		Logger: createTestLogger(t),
	})
}

func createTestInput() *Input {
	return &Input{
		CaseID:       "1234567890123456",
		Benefit:      "ESA",
		ErrorCode:    "CATALOG_DEFECT",
		ErrorMessage: "Unable to obtain a valid scenario - something has gone wrong",
		ErrorDetails: "catalog defect: no outcome condition found",
	}
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		config         func() *Config
		setup          func(snsClient *MockSNS, sesClient *MockSES)
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:   "both channels",
			config: createTestConfig,
			setup: func(snsClient *MockSNS, sesClient *MockSES) {
				snsClient.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
					return aws.ToString(in.TopicArn) == "arn:aws:sns:eu-west-2:123456789012:decision-notice-defects" &&
						aws.ToString(in.MessageAttributes["errorCode"].StringValue) == "CATALOG_DEFECT"
				})).Return(&sns.PublishOutput{MessageId: aws.String("sns-1")}, nil)
				sesClient.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
					return aws.ToString(in.Source) == "alerts@tribunals.example" &&
						in.Destination.ToAddresses[0] == "ops@tribunals.example"
				})).Return(&ses.SendEmailOutput{MessageId: aws.String("ses-1")}, nil)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, "sns-1", output.SNSMessageID)
				assert.Equal(t, "ses-1", output.EmailMessageID)
				assert.Equal(t, []string{ChannelSNS, ChannelSES}, output.Channels)
			},
		},
		{
			name: "email disabled",
			config: func() *Config {
				cfg := createTestConfig()
				cfg.SESEnabled = false
				return cfg
			},
			setup: func(snsClient *MockSNS, sesClient *MockSES) {
				snsClient.On("Publish", mock.Anything, mock.Anything).
					Return(&sns.PublishOutput{MessageId: aws.String("sns-2")}, nil)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, []string{ChannelSNS}, output.Channels)
				assert.Empty(t, output.EmailMessageID)
			},
		},
		{
			name: "all channels disabled",
			config: func() *Config {
				cfg := createTestConfig()
				cfg.SNSEnabled = false
				cfg.SESEnabled = false
				return cfg
			},
			setup: func(snsClient *MockSNS, sesClient *MockSES) {},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Empty(t, output.Channels)
				assert.NotEmpty(t, output.AlertID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snsClient, sesClient := new(MockSNS), new(MockSES)
			tt.setup(snsClient, sesClient)

			output, err := createTestHandler(t, tt.config(), snsClient, sesClient).Execute(context.Background(), createTestInput())
			require.NoError(t, err)
			require.NotNil(t, output)
			assert.False(t, output.SentAt.IsZero())
			tt.validateOutput(t, output)

			snsClient.AssertExpectations(t)
			sesClient.AssertExpectations(t)
		})
	}
}

func TestHandler_Execute_ChannelFailures(t *testing.T) {
	t.Run("sns failure stops before email", func(t *testing.T) {
		snsClient, sesClient := new(MockSNS), new(MockSES)
		snsClient.On("Publish", mock.Anything, mock.Anything).Return(nil, stderrors.New("throttled"))

		_, err := createTestHandler(t, createTestConfig(), snsClient, sesClient).Execute(context.Background(), createTestInput())
		require.Error(t, err)
		stdErr := errors.Normalize(err)
		assert.Equal(t, errors.ErrCodeAlertPublishFailed, stdErr.Code)
		assert.True(t, stdErr.Retryable)
		assert.Contains(t, stdErr.Details, "sns")
		sesClient.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("ses failure", func(t *testing.T) {
		snsClient, sesClient := new(MockSNS), new(MockSES)
		snsClient.On("Publish", mock.Anything, mock.Anything).Return(&sns.PublishOutput{MessageId: aws.String("sns-1")}, nil)
		sesClient.On("SendEmail", mock.Anything, mock.Anything).Return(nil, stderrors.New("MessageRejected"))

		_, err := createTestHandler(t, createTestConfig(), snsClient, sesClient).Execute(context.Background(), createTestInput())
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeAlertPublishFailed, errors.Normalize(err).Code)
	})
}

// ==========================
// Message Tests
// ==========================

func TestSubjectAndBody(t *testing.T) {
	in := createTestInput()
	in.EvaluationID = "eval-1"

	assert.Equal(t, "[CATALOG_DEFECT] ESA decision notice catalog defect", Subject(in))

	body := Body(in, "alert-1")
	assert.Contains(t, body, "Alert: alert-1\n")
	assert.Contains(t, body, "Case: 1234567890123456\n")
	assert.Contains(t, body, "Evaluation: eval-1\n")
	assert.Contains(t, body, "no outcome condition found")
}

// ==========================
// Input Parsing Tests
// ==========================

func TestHandler_ParseInput(t *testing.T) {
	h := createTestHandler(t, createTestConfig(), new(MockSNS), new(MockSES))

	job := entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:       1,
		Type:      TaskType,
		Variables: `{"caseId":"1","benefit":"UC","errorCode":"CATALOG_DEFECT","errorMessage":"m","originalErrorCode":"CATALOG_DEFECT","retryable":false}`,
	}}
	input, err := h.parseInput(job)
	require.NoError(t, err)
	assert.Equal(t, "UC", input.Benefit)

	job.Variables = `{"caseId":"1","benefit":"UC"}`
	_, err = h.parseInput(job)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInputSchemaInvalid, errors.Normalize(err).Code)
}

// ==========================
// Config Tests
// ==========================

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		expectErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad topic", mutate: func(c *Config) { c.TopicARN = "decision-notice-defects" }, expectErr: true},
		{name: "sns off ignores topic", mutate: func(c *Config) { c.SNSEnabled = false; c.TopicARN = "" }},
		{name: "ses without sender", mutate: func(c *Config) { c.FromEmail = "" }, expectErr: true},
		{name: "ses without recipients", mutate: func(c *Config) { c.To = nil }, expectErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig()
			tt.mutate(cfg)
			if tt.expectErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestConfigFrom(t *testing.T) {
	var alerts config.AlertsConfig
	alerts.SNS.Enabled = true
	alerts.SNS.TopicARN = "arn:aws:sns:eu-west-2:1:t"
	alerts.SES.To = []string{"ops@tribunals.example"}

	cfg := ConfigFrom(alerts)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, []string{ChannelSNS}, cfg.Channels())
	assert.Equal(t, []string{"ops@tribunals.example"}, cfg.To)
}

// internal/workers/communication/notify-catalog-defect/config.go
package notifycatalogdefect

import (
	"fmt"
	"strings"
	"time"

	"tribunal-workers/internal/common/config"
)

type Config struct {
	Timeout    time.Duration
	SNSEnabled bool
	TopicARN   string
	SESEnabled bool
	FromEmail  string
	To         []string
}

func DefaultConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}

// ConfigFrom copies the alert channels out of the application config.
func ConfigFrom(alerts config.AlertsConfig) *Config {
	cfg := DefaultConfig()
	cfg.SNSEnabled = alerts.SNS.Enabled
	cfg.TopicARN = alerts.SNS.TopicARN
	cfg.SESEnabled = alerts.SES.Enabled
	cfg.FromEmail = alerts.SES.FromEmail
	cfg.To = alerts.SES.To
	return cfg
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.SNSEnabled && !strings.HasPrefix(c.TopicARN, "arn:") {
		return fmt.Errorf("sns topic_arn must be an ARN, got %q", c.TopicARN)
	}
	if c.SESEnabled {
		if c.FromEmail == "" {
			return fmt.Errorf("ses from_email is required")
		}
		if len(c.To) == 0 {
			return fmt.Errorf("ses needs at least one recipient")
		}
	}
	return nil
}

// Channels lists the enabled delivery channels.
func (c *Config) Channels() []string {
	var channels []string
	if c.SNSEnabled {
		channels = append(channels, ChannelSNS)
	}
	if c.SESEnabled {
		channels = append(channels, ChannelSES)
	}
	return channels
}

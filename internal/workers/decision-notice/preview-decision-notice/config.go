// internal/workers/decision-notice/preview-decision-notice/config.go
package previewdecisionnotice

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

// internal/workers/decision-notice/decision-notice-mid-event/config.go
package decisionnoticemidevent

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}

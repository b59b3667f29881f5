// internal/workers/decision-notice/validate-decision-notice/config.go
package validatedecisionnotice

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}

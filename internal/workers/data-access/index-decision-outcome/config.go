// internal/workers/data-access/index-decision-outcome/config.go
package indexdecisionoutcome

import "time"

type Config struct {
	Timeout time.Duration
	Index   string
}

func LoadConfig(index string) *Config {
	if index == "" {
		index = "decision-notice-outcomes"
	}
	return &Config{
		Timeout: 10 * time.Second,
		Index:   index,
	}
}

// internal/workers/data-access/record-decision-outcome/config.go
package recorddecisionoutcome

import "time"

type Config struct {
	Timeout time.Duration
	Table   string
}

func LoadConfig(table string) *Config {
	if table == "" {
		table = "decision_notice_outcomes"
	}
	return &Config{
		Timeout: 5 * time.Second,
		Table:   table,
	}
}

// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  name: tribunal-workers
camunda:
  broker_address: localhost:26500
database:
  postgres:
    host: localhost
    database: tribunal
    user: ${TEST_DB_USER}
  elasticsearch:
    addresses: ["http://localhost:9200"]
  redis:
    address: localhost:6379
workers:
  validate-decision-notice:
    enabled: true
    timeout: 5000
decision_notice:
  benefits: ["ESA"]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("TEST_DB_USER", "tribunal_app")

	cfg, err := LoadFromFile(writeConfig(t, baseYAML))
	require.NoError(t, err)

	assert.Equal(t, "tribunal_app", cfg.Database.Postgres.User)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, 8080, cfg.App.HTTPPort)

	assert.Equal(t, []string{"ESA"}, cfg.DecisionNotice.Benefits)
	assert.Equal(t, "decision_notice_outcomes", cfg.DecisionNotice.AuditTable)
	assert.Equal(t, "decision-notice-outcomes", cfg.DecisionNotice.OutcomeIndex)
	assert.Equal(t, "eu-west-2", cfg.Alerts.Region)

	worker := GetWorkerConfig(cfg, "validate-decision-notice")
	assert.Equal(t, 5000, worker.Timeout)
	assert.Equal(t, 3, worker.MaxRetries)
	assert.Equal(t, 5, worker.MaxJobsActive)

	assert.True(t, IsWorkerEnabled(cfg, "unknown-worker"))
	assert.Equal(t, 30000, GetWorkerConfig(cfg, "unknown-worker").Timeout)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "unsupported benefit",
			body:   strings.Replace(baseYAML, `["ESA"]`, `["PIP"]`, 1),
			errMsg: "unsupported benefit",
		},
		{
			name:   "audit table needing quotes",
			body:   baseYAML + "  audit_table: \"outcomes; DROP TABLE cases\"\n",
			errMsg: "decision_notice.audit_table",
		},
		{
			name:   "sns enabled without topic",
			body:   baseYAML + "alerts:\n  sns:\n    enabled: true\n",
			errMsg: "alerts.sns.topic_arn",
		},
		{
			name:   "ses enabled without recipients",
			body:   baseYAML + "alerts:\n  ses:\n    enabled: true\n    from_email: ops@example.org\n",
			errMsg: "alerts.ses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DB_USER", "tribunal_app")
			t.Setenv("DECISION_NOTICE_ALERT_TOPIC_ARN", "")

			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFromFile_MissingBroker(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, "app:\n  name: tribunal-workers\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camunda.broker_address is required")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, "1.5s", GetDuration(1500).String())
}

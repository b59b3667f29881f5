// internal/workers/decision-notice/preview-decision-notice/handler_test.go
package previewdecisionnotice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/common/validation"
	"tribunal-workers/internal/decisionnotice"
	"tribunal-workers/internal/decisionnotice/catalog"
	"tribunal-workers/internal/decisionnotice/predicate"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

func createTestLogger(t *testing.T) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}

func createTestHandler(t *testing.T) *Handler {
	engine, err := decisionnotice.NewEngine()
	require.NoError(t, err)
	return NewHandler(createTestConfig(), engine, nil, createTestLogger(t))
}

func createTestInput(benefit decisionnotice.Benefit) *Input {
	return &Input{
		CaseID:         "1234567890123456",
		Benefit:        benefit,
		GenerateNotice: predicate.Yes,
		WcaAppeal:      true,
	}
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		input          func() *Input
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name: "refused below threshold",
			input: func() *Input {
				in := createTestInput(decisionnotice.ESA)
				in.AllowedOrRefused = "refused"
				in.SupportGroupOnlyAppeal = predicate.No
				in.WorkCapabilityRisk = predicate.No
				in.PhysicalDisabilities = []string{"mobilisingUnaided"}
				in.ActivityAnswers = map[string]string{"mobilisingUnaided": "mobilisingUnaided1b"}
				return in
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.True(t, output.IsValid)
				require.NotNil(t, output.Result)
				assert.Equal(t, catalog.Scenario1, output.Scenario)
				assert.Equal(t, 9, output.PointsTotal)
				assert.Equal(t, "no award", output.AwardRate)
				require.Len(t, output.Descriptors, 1)
			},
		},
		{
			name: "uc support group only",
			input: func() *Input {
				in := createTestInput(decisionnotice.UC)
				in.AllowedOrRefused = "allowed"
				in.SupportGroupOnlyAppeal = predicate.Yes
				in.WorkRelatedActivities = []string{"schedule7Reaching"}
				return in
			},
			validateOutput: func(t *testing.T, output *Output) {
				require.NotNil(t, output.Result)
				assert.Equal(t, catalog.Scenario4, output.Scenario)
				assert.Equal(t, catalog.HigherRate, output.Award)
				assert.True(t, output.Entitled)
			},
		},
		{
			name: "inconsistent answers",
			input: func() *Input {
				in := createTestInput(decisionnotice.ESA)
				in.AllowedOrRefused = "refused"
				in.PhysicalDisabilities = []string{"mobilisingUnaided"}
				in.ActivityAnswers = map[string]string{"mobilisingUnaided": "mobilisingUnaided1e"}
				return in
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.False(t, output.IsValid)
				assert.Nil(t, output.Result)
				require.Len(t, output.ValidationErrors, 1)
				assert.Contains(t, output.ValidationErrors[0], "missing answer for the Regulation 29 question")
			},
		},
		{
			name: "notice not generated",
			input: func() *Input {
				in := createTestInput(decisionnotice.ESA)
				in.GenerateNotice = predicate.No
				return in
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.True(t, output.IsValid)
				require.NotNil(t, output.Result)
				assert.False(t, output.Generated)
			},
		},
	}

	h := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), tt.input())
			require.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, "1234567890123456", output.CaseID)
			assert.NotEmpty(t, output.EvaluationID)
			tt.validateOutput(t, output)
		})
	}
}

func TestHandler_Execute_CountsScenario(t *testing.T) {
	h := createTestHandler(t)
	counter := metrics.DecisionNoticeScenarios.WithLabelValues("UC", string(catalog.Scenario4))
	before := testutil.ToFloat64(counter)

	in := createTestInput(decisionnotice.UC)
	in.AllowedOrRefused = "allowed"
	in.SupportGroupOnlyAppeal = predicate.Yes
	in.WorkRelatedActivities = []string{"schedule7Reaching"}

	_, err := h.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestOutput_FlattensResult(t *testing.T) {
	h := createTestHandler(t)
	in := createTestInput(decisionnotice.ESA)
	in.AllowedOrRefused = "refused"
	in.WcaAppeal = false

	output, err := h.Execute(context.Background(), in)
	require.NoError(t, err)

	raw, err := json.Marshal(output)
	require.NoError(t, err)

	var vars map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &vars))
	assert.Equal(t, "SCENARIO_10", vars["scenario"])
	assert.Equal(t, "NON_WCA_APPEAL", vars["pointsConditionId"])
	assert.Equal(t, true, vars["isValid"])
	assert.NotContains(t, vars, "Result")
}

func TestHandler_Execute_Errors(t *testing.T) {
	h := createTestHandler(t)

	t.Run("unknown schedule key", func(t *testing.T) {
		in := createTestInput(decisionnotice.UC)
		in.AllowedOrRefused = "allowed"
		in.SupportGroupOnlyAppeal = predicate.Yes
		in.WorkRelatedActivities = []string{"schedule3Reaching"}

		_, err := h.Execute(context.Background(), in)
		assert.True(t, errors.Is(err, decisionnotice.ErrUnknownKey))
	})

	t.Run("expired context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)

		_, err := h.Execute(ctx, createTestInput(decisionnotice.ESA))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestOutput_MatchesOutputSchema(t *testing.T) {
	h := createTestHandler(t)
	in := createTestInput(decisionnotice.ESA)
	in.AllowedOrRefused = "refused"
	in.SupportGroupOnlyAppeal = predicate.No
	in.WorkCapabilityRisk = predicate.No
	in.PhysicalDisabilities = []string{"mobilisingUnaided"}
	in.ActivityAnswers = map[string]string{"mobilisingUnaided": "mobilisingUnaided1b"}

	output, err := h.Execute(context.Background(), in)
	require.NoError(t, err)

	raw, err := json.Marshal(output)
	require.NoError(t, err)
	var vars map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &vars))

	result := validation.ValidateInput(vars, GetOutputSchema())
	assert.True(t, result.Valid, result.GetErrorMessages())
}

// internal/workers/decision-notice/jobsupport/jobsupport_test.go
package jobsupport

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/decisionnotice"
	"tribunal-workers/internal/decisionnotice/predicate"
)

func createMockJob(key int64, variables string) entities.Job {
	return entities.Job{
		ActivatedJob: &pb.ActivatedJob{
			Key:                key,
			Type:               "validate-decision-notice",
			ProcessInstanceKey: 2251799813685249,
			Variables:          variables,
			Retries:            3,
		},
	}
}

func TestParseCase(t *testing.T) {
	tests := []struct {
		name        string
		variables   string
		expectError bool
		errorField  string
	}{
		{
			name:      "valid answers",
			variables: `{"caseId":"1234","benefit":"UC","generateNotice":"Yes","wcaAppeal":true,"physicalDisabilities":["mobilisingUnaided"],"activityAnswers":{"mobilisingUnaided":"mobilisingUnaided1a"}}`,
		},
		{
			name:        "not json",
			variables:   `{"caseId":`,
			expectError: true,
		},
		{
			name:        "schema violation",
			variables:   `{"caseId":"1234","benefit":"ESA","generateNotice":"Perhaps"}`,
			expectError: true,
			errorField:  "generateNotice",
		},
		{
			name:        "missing case id",
			variables:   `{"benefit":"ESA"}`,
			expectError: true,
			errorField:  "caseId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCase(createMockJob(1, tt.variables))
			if tt.expectError {
				require.Error(t, err)
				stdErr := errors.Normalize(err)
				assert.Equal(t, errors.ErrCodeInputSchemaInvalid, stdErr.Code)
				assert.False(t, stdErr.Retryable)
				if tt.errorField != "" {
					assert.Contains(t, stdErr.Details, tt.errorField)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "1234", c.CaseID)
			assert.Equal(t, decisionnotice.UC, c.Benefit)
			assert.Equal(t, predicate.Yes, c.GenerateNotice)
			assert.Equal(t, "mobilisingUnaided1a", c.ActivityAnswers["mobilisingUnaided"])
		})
	}
}

func TestEngineError(t *testing.T) {
	c := &decisionnotice.CaseAnswers{CaseID: "1234", Benefit: decisionnotice.ESA}

	tests := []struct {
		name         string
		err          error
		expectedCode errors.ErrorCode
		expectedMsg  string
	}{
		{
			name:         "catalog defect",
			err:          fmt.Errorf("%w: no points condition found", decisionnotice.ErrCatalogDefect),
			expectedCode: errors.ErrCodeCatalogDefect,
			expectedMsg:  decisionnotice.DefectMessage,
		},
		{
			name:         "no scenario",
			err:          fmt.Errorf("%w: %w for 3", decisionnotice.ErrCatalogDefect, decisionnotice.ErrNoScenario),
			expectedCode: errors.ErrCodeCatalogDefect,
			expectedMsg:  decisionnotice.DefectMessage,
		},
		{
			name:         "unknown key",
			err:          fmt.Errorf("%w: mobilisingUnaided1w", decisionnotice.ErrUnknownKey),
			expectedCode: errors.ErrCodeUnknownAnswerKey,
		},
		{
			name:         "unknown benefit",
			err:          fmt.Errorf("%w: \"PIP\"", decisionnotice.ErrUnknownBenefit),
			expectedCode: errors.ErrCodeUnknownBenefit,
		},
		{
			name:         "validation error",
			err:          &decisionnotice.ValidationError{ConditionID: "REFUSED_NON_SUPPORT_GROUP_ONLY", Messages: []string{"Please review your previous selection."}},
			expectedCode: errors.ErrCodeDecisionNoticeInvalid,
		},
		{
			name:         "anything else",
			err:          stderrors.New("boom"),
			expectedCode: errors.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdErr := EngineError(tt.err, c)
			assert.Equal(t, tt.expectedCode, stdErr.Code)
			assert.False(t, stdErr.Retryable)
			assert.Equal(t, "1234", stdErr.Metadata["caseId"])
			assert.Equal(t, "ESA", stdErr.Metadata["benefit"])
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, stdErr.Message)
				assert.Contains(t, stdErr.Details, "CATALOG_DEFECT")
			}
		})
	}
}

func TestRecordEvaluation(t *testing.T) {
	c := &decisionnotice.CaseAnswers{CaseID: "1", Benefit: decisionnotice.UC}

	valid := metrics.DecisionNoticeEvaluations.WithLabelValues("UC", metrics.ResultValid)
	invalid := metrics.DecisionNoticeEvaluations.WithLabelValues("UC", metrics.ResultInvalid)
	defects := metrics.CatalogDefects.WithLabelValues("UC")
	beforeValid, beforeInvalid, beforeDefects := testutil.ToFloat64(valid), testutil.ToFloat64(invalid), testutil.ToFloat64(defects)

	RecordEvaluation(c, true, nil)
	RecordEvaluation(c, true, &decisionnotice.ValidationError{ConditionID: "3", Messages: []string{"x"}})
	RecordEvaluation(c, true, fmt.Errorf("%w: x", decisionnotice.ErrCatalogDefect))
	RecordEvaluation(c, true, stderrors.New("unrelated"))

	assert.Equal(t, beforeValid+1, testutil.ToFloat64(valid))
	assert.Equal(t, beforeInvalid+1, testutil.ToFloat64(invalid))
	assert.Equal(t, beforeDefects+1, testutil.ToFloat64(defects))
}

func TestCaseFields(t *testing.T) {
	fields := CaseFields(&decisionnotice.CaseAnswers{
		CaseID:             "1234",
		Benefit:            decisionnotice.ESA,
		GenerateNotice:     predicate.Yes,
		WorkCapabilityRisk: predicate.No,
	})
	assert.Equal(t, "1234", fields["caseId"])
	assert.Equal(t, "Yes", fields["generateNotice"])
	assert.Equal(t, "No", fields["workCapabilityRisk"])
	assert.Equal(t, "", fields["supportGroupOnlyAppeal"])
}

func TestLogDefect(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewZapAdapter(zap.New(core))
	c := &decisionnotice.CaseAnswers{CaseID: "1234", Benefit: decisionnotice.ESA}

	LogDefect(log, stderrors.New("not a defect"), c)
	assert.Equal(t, 0, logs.Len())

	LogDefect(log, fmt.Errorf("%w: no points condition", decisionnotice.ErrCatalogDefect), c)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "catalog defect", entry.Message)
	assert.Equal(t, "1234", entry.ContextMap()["caseId"])
	assert.Contains(t, entry.ContextMap()["error"], "no points condition")
}

// internal/common/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Retry policy
// ==========================

func TestGetRetryCount(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeAuditInsertFailed, 3},
		{ErrCodeAuditGuardFailed, 3},
		{ErrCodeOutcomeIndexFailed, 3},
		{ErrCodeAlertPublishFailed, 3},
		{ErrCodeDatabaseConnectionFailed, 3},
		{ErrCodeStoreTimeout, 2},
		{ErrCodeCatalogDefect, 0},
		{ErrCodeUnknownAnswerKey, 0},
		{ErrCodeDecisionNoticeInvalid, 0},
		{ErrCodeInputSchemaInvalid, 0},
		{ErrorCode("SOMETHING_ELSE"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetRetryCount(tt.code))
			assert.Equal(t, tt.expected > 0, IsRetryableErrorCode(tt.code))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, ShouldRetry(NewAuditInsertFailedError("t", stderrors.New("boom")), 3))
	assert.False(t, ShouldRetry(NewAuditInsertFailedError("t", stderrors.New("boom")), 0))
	assert.False(t, ShouldRetry(NewCatalogDefectError("defect", stderrors.New("overlap")), 3))
}

func TestRemainingRetries(t *testing.T) {
	assert.Equal(t, int32(2), remainingRetries(3, 3))
	assert.Equal(t, int32(0), remainingRetries(1, 3))
	assert.Equal(t, int32(3), remainingRetries(5, 3))
}

// ==========================
// Conversion
// ==========================

func TestConvertToBPMNError(t *testing.T) {
	t.Run("catalog defect is thrown with case context", func(t *testing.T) {
		stdErr := NewCatalogDefectError("Unable to obtain a valid scenario - something has gone wrong", stderrors.New("no points condition")).
			WithMetadata("caseId", "1234")

		bpmnErr := ConvertToBPMNError(stdErr)

		assert.Equal(t, "CATALOG_DEFECT", bpmnErr.Code)
		assert.Equal(t, "Unable to obtain a valid scenario - something has gone wrong", bpmnErr.Message)
		assert.Equal(t, "no points condition", bpmnErr.Details)
		assert.Equal(t, 0, bpmnErr.Retries)

		vars := bpmnErr.ToErrorVariables()
		assert.Equal(t, "CATALOG_DEFECT", vars["errorCode"])
		assert.Equal(t, "CATALOG_DEFECT", vars["originalErrorCode"])
		assert.Equal(t, "1234", vars["caseId"])
		assert.NotEmpty(t, vars["timestamp"])
	})

	t.Run("guard failures share the audit bpmn code", func(t *testing.T) {
		bpmnErr := ConvertToBPMNError(NewAuditGuardFailedError(stderrors.New("redis down")))
		assert.Equal(t, "AUDIT_INSERT_FAILED", bpmnErr.Code)
		assert.Equal(t, 3, bpmnErr.Retries)
		assert.Equal(t, "AUDIT_GUARD_FAILED", bpmnErr.ErrorVariables["originalErrorCode"])
	})

	t.Run("unmapped code falls back to itself", func(t *testing.T) {
		bpmnErr := ConvertToBPMNError(NewInternalError(stderrors.New("nil pointer")))
		assert.Equal(t, "INTERNAL_ERROR", bpmnErr.Code)
		assert.False(t, bpmnErr.Retryable)
	})
}

func TestNormalize(t *testing.T) {
	inner := NewOutcomeIndexFailedError("decision-notice-outcomes", stderrors.New("503"))
	wrapped := fmt.Errorf("index outcome: %w", inner)

	got := Normalize(wrapped)
	require.Same(t, inner, got)

	other := Normalize(stderrors.New("plain"))
	assert.Equal(t, ErrCodeInternal, other.Code)
	assert.Equal(t, "plain", other.Details)
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeCatalogDefect, "RULES"},
		{ErrCodeUnknownAnswerKey, "RULES"},
		{ErrCodeUnknownBenefit, "RULES"},
		{ErrCodeAuditInsertFailed, "DATABASE"},
		{ErrCodeDatabaseConnectionFailed, "DATABASE"},
		{ErrCodeOutcomeIndexFailed, "SEARCH"},
		{ErrCodeAlertPublishFailed, "NOTIFICATION"},
		{ErrCodeInputSchemaInvalid, "VALIDATION"},
		{ErrCodeDecisionNoticeInvalid, "VALIDATION"},
		{ErrCodeStoreTimeout, "OTHER"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCategory(tt.code))
		})
	}
}

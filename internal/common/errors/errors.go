// internal/common/errors/errors.go
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Error Codes
// ==========================

type ErrorCode string

const (
	// Decision notice rules
	ErrCodeDecisionNoticeInvalid ErrorCode = "DECISION_NOTICE_INVALID"
	ErrCodeCatalogDefect         ErrorCode = "CATALOG_DEFECT"
	ErrCodeUnknownAnswerKey      ErrorCode = "UNKNOWN_ANSWER_KEY"
	ErrCodeUnknownBenefit        ErrorCode = "UNKNOWN_BENEFIT"
	ErrCodeInputSchemaInvalid    ErrorCode = "INPUT_SCHEMA_INVALID"

	// Outcome stores
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeAuditInsertFailed        ErrorCode = "AUDIT_INSERT_FAILED"
	ErrCodeAuditGuardFailed         ErrorCode = "AUDIT_GUARD_FAILED"
	ErrCodeOutcomeIndexFailed       ErrorCode = "OUTCOME_INDEX_FAILED"
	ErrCodeStoreTimeout             ErrorCode = "STORE_TIMEOUT"

	// Alerts
	ErrCodeAlertPublishFailed ErrorCode = "ALERT_PUBLISH_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// ==========================
// 2. Standard Error Types
// ==========================

type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key to the error and returns it for chaining.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

func NewDecisionNoticeInvalidError(details string) *StandardError {
	return newError(ErrCodeDecisionNoticeInvalid, "Decision notice answers are not valid", details, false)
}

// NewCatalogDefectError carries the generic caseworker message; the cause
// goes to Details so it is logged but never shown.
func NewCatalogDefectError(message string, err error) *StandardError {
	return newError(ErrCodeCatalogDefect, message, err.Error(), false)
}

func NewUnknownAnswerKeyError(err error) *StandardError {
	return newError(ErrCodeUnknownAnswerKey, "Unrecognised activity answer key", err.Error(), false)
}

func NewUnknownBenefitError(benefit string) *StandardError {
	return newError(ErrCodeUnknownBenefit, "Benefit is not supported", fmt.Sprintf("benefit: %s", benefit), false)
}

func NewInputSchemaInvalidError(details string) *StandardError {
	return newError(ErrCodeInputSchemaInvalid, "Job variables do not match the input schema", details, false)
}

func NewDatabaseConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseConnectionFailed, "Database connection error", err.Error(), true)
}

func NewAuditInsertFailedError(table string, err error) *StandardError {
	return newError(ErrCodeAuditInsertFailed, "Decision outcome audit insert failed",
		fmt.Sprintf("table: %s, error: %s", table, err.Error()), true)
}

func NewAuditGuardFailedError(err error) *StandardError {
	return newError(ErrCodeAuditGuardFailed, "Audit idempotency guard unavailable", err.Error(), true)
}

func NewOutcomeIndexFailedError(index string, err error) *StandardError {
	return newError(ErrCodeOutcomeIndexFailed, "Decision outcome indexing failed",
		fmt.Sprintf("index: %s, error: %s", index, err.Error()), true)
}

func NewStoreTimeoutError(store string) *StandardError {
	return newError(ErrCodeStoreTimeout, fmt.Sprintf("Store '%s' timeout", store), "operation exceeded the job timeout", true)
}

func NewAlertPublishFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeAlertPublishFailed, "Catalog defect alert delivery failed",
		fmt.Sprintf("channel: %s, error: %s", channel, err.Error()), true)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

// ==========================
// 4. BPMN Mapping
// ==========================

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeDecisionNoticeInvalid:    "DECISION_NOTICE_INVALID",
	ErrCodeCatalogDefect:            "CATALOG_DEFECT",
	ErrCodeUnknownAnswerKey:         "UNKNOWN_ANSWER_KEY",
	ErrCodeUnknownBenefit:           "UNKNOWN_BENEFIT",
	ErrCodeInputSchemaInvalid:       "INPUT_SCHEMA_INVALID",
	ErrCodeDatabaseConnectionFailed: "DATABASE_CONNECTION_FAILED",
	ErrCodeAuditInsertFailed:        "AUDIT_INSERT_FAILED",
	ErrCodeAuditGuardFailed:         "AUDIT_INSERT_FAILED",
	ErrCodeOutcomeIndexFailed:       "OUTCOME_INDEX_FAILED",
	ErrCodeStoreTimeout:             "STORE_TIMEOUT",
	ErrCodeAlertPublishFailed:       "ALERT_PUBLISH_FAILED",
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeAuditInsertFailed,
		ErrCodeAuditGuardFailed,
		ErrCodeOutcomeIndexFailed,
		ErrCodeAlertPublishFailed:
		return 3

	case ErrCodeStoreTimeout:
		return 2

	default:
		// rule and input errors are deterministic
		return 0
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Helpers
// ==========================

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CATALOG") || strings.Contains(codeStr, "ANSWER") || strings.Contains(codeStr, "BENEFIT"):
		return "RULES"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "AUDIT"):
		return "DATABASE"
	case strings.Contains(codeStr, "INDEX"):
		return "SEARCH"
	case strings.Contains(codeStr, "ALERT"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

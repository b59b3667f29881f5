// internal/workers/decision-notice/preview-decision-notice/models.go
package previewdecisionnotice

import "tribunal-workers/internal/decisionnotice"

type Input = decisionnotice.CaseAnswers

// Output flattens the evaluation result into the process variables. Result
// is nil when the answers failed validation.
type Output struct {
	*decisionnotice.Result
	CaseID           string   `json:"caseId"`
	EvaluationID     string   `json:"evaluationId"`
	IsValid          bool     `json:"isValid"`
	ValidationErrors []string `json:"validationErrors"`
}

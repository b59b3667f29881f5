// internal/workers/decision-notice/validate-decision-notice/models.go
package validatedecisionnotice

import "tribunal-workers/internal/decisionnotice"

type Input = decisionnotice.CaseAnswers

type Output struct {
	IsValid          bool     `json:"isValid"`
	ValidationErrors []string `json:"validationErrors"`
	ConditionID      string   `json:"conditionId,omitempty"`
	EvaluationID     string   `json:"evaluationId"`
}

// internal/workers/data-access/index-decision-outcome/document.go
package indexdecisionoutcome

import "time"

// BuildDocument maps job variables onto the outcome index document.
func BuildDocument(input *Input, now time.Time) *Document {
	validationErrors := input.ValidationErrors
	if validationErrors == nil {
		validationErrors = []string{}
	}
	return &Document{
		EvaluationID:       input.EvaluationID,
		CaseID:             input.CaseID,
		Benefit:            input.Benefit,
		Generated:          input.Generated,
		Valid:              input.IsValid,
		PointsTotal:        input.PointsTotal,
		PointsConditionID:  input.PointsConditionID,
		OutcomeConditionID: input.OutcomeConditionID,
		Award:              input.Award,
		Scenario:           input.Scenario,
		Entitled:           input.Entitled,
		ValidationErrors:   validationErrors,
		Descriptors:        input.Descriptors,
		EvaluatedAt:        now.UTC(),
	}
}

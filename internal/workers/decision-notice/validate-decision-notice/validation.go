// internal/workers/decision-notice/validate-decision-notice/validation.go
package validatedecisionnotice

import (
	"tribunal-workers/internal/common/validation"
	"tribunal-workers/internal/decisionnotice"
)

func GetInputSchema() validation.JSONSchema {
	return decisionnotice.CaseSchema()
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"isValid": {
				Type:        "boolean",
				Description: "False when the adjudicator must correct the answers",
			},
			"validationErrors": {
				Type:        "array",
				Description: "Messages to show on the submit page",
				Items:       &validation.Property{Type: "string"},
			},
			"conditionId": {
				Type:        "string",
				Description: "Catalog condition that rejected the answers",
			},
			"evaluationId": {Type: "string", Format: "uuid"},
		},
		AdditionalProperties: validation.BoolPtr(false),
	}
}

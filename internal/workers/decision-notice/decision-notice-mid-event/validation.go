// internal/workers/decision-notice/decision-notice-mid-event/validation.go
package decisionnoticemidevent

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
			"pointsTotal": {
				Type:        "integer",
				Description: "Points across the selected activities",
				Minimum:     validation.FloatPtr(0),
			},
			"showRegulationPage": {
				Type:        "boolean",
				Description: "Whether the regulation 29 and schedule 8 page is shown",
			},
			"isValid":          {Type: "boolean"},
			"validationErrors": {Type: "array", Items: &validation.Property{Type: "string"}},
		},
		AdditionalProperties: validation.BoolPtr(false),
	}
}

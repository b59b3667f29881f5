// internal/workers/data-access/record-decision-outcome/validation.go
package recorddecisionoutcome

import "tribunal-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"evaluationId", "caseId", "benefit", "isValid"},
		Properties: map[string]validation.Property{
			"evaluationId": {
				Type:        "string",
				Description: "Identifier of the evaluation being recorded",
				Format:      "uuid",
			},
			"caseId": {
				Type:        "string",
				Description: "Tribunal case reference",
				MinLength:   validation.IntPtr(1),
			},
			"benefit": {
				Type:        "string",
				Description: "Benefit the notice was evaluated for",
				Enum:        []string{"ESA", "UC"},
			},
			"generated": {
				Type:        "boolean",
				Description: "Whether a notice was generated",
			},
			"isValid": {
				Type:        "boolean",
				Description: "Whether the answers passed validation",
			},
			"validationErrors": {
				Type:        "array",
				Nullable:    true,
				Description: "Messages shown to the adjudicator",
				Items:       &validation.Property{Type: "string"},
			},
			"pointsTotal": {
				Type:        "integer",
				Description: "Activity points awarded",
				Minimum:     validation.FloatPtr(0),
			},
			"scenario": {
				Type:        "string",
				Nullable:    true,
				Description: "Resolved decision notice scenario",
			},
		},
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"auditId": {
				Type:        "string",
				Description: "Primary key of the audit row",
			},
			"evaluationId": {
				Type:        "string",
				Description: "Identifier of the recorded evaluation",
			},
			"duplicate": {
				Type:        "boolean",
				Description: "True when the evaluation had already been recorded",
			},
		},
		AdditionalProperties: validation.BoolPtr(false),
	}
}

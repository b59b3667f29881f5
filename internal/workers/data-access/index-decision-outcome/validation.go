// internal/workers/data-access/index-decision-outcome/validation.go
package indexdecisionoutcome

import "tribunal-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"evaluationId", "caseId", "benefit"},
		Properties: map[string]validation.Property{
			"evaluationId": {
				Type:        "string",
				Description: "Document id of the outcome",
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
			"pointsTotal": {
				Type:    "integer",
				Minimum: validation.FloatPtr(0),
			},
			"validationErrors": {
				Type:     "array",
				Nullable: true,
				Items:    &validation.Property{Type: "string"},
			},
		},
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"indexed":     {Type: "boolean"},
			"indexName":   {Type: "string"},
			"documentId":  {Type: "string"},
			"indexResult": {Type: "string", Description: "created or updated"},
		},
		AdditionalProperties: validation.BoolPtr(false),
	}
}

// internal/workers/communication/notify-catalog-defect/validation.go
package notifycatalogdefect

import "tribunal-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"caseId", "benefit", "errorCode", "errorMessage"},
		Properties: map[string]validation.Property{
			"caseId": {
				Type:        "string",
				Description: "Case whose answers hit the defect",
				MinLength:   validation.IntPtr(1),
			},
			"benefit": {
				Type:        "string",
				Description: "Benefit catalog that is defective",
			},
			"evaluationId": {
				Type:        "string",
				Description: "Evaluation that failed, when known",
			},
			"errorCode": {
				Type:        "string",
				Description: "BPMN error code that was thrown",
				MinLength:   validation.IntPtr(1),
			},
			"errorMessage": {
				Type:        "string",
				Description: "Message shown to the user",
			},
			"errorDetails": {
				Type:        "string",
				Description: "Underlying cause, for the ops team only",
				MaxLength:   validation.IntPtr(100000),
			},
		},
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"alertId":        {Type: "string"},
			"snsMessageId":   {Type: "string"},
			"emailMessageId": {Type: "string"},
			"channels": {
				Type:  "array",
				Items: &validation.Property{Type: "string", Enum: []string{ChannelSNS, ChannelSES}},
			},
			"sentAt": {Type: "string", Format: "date-time"},
		},
		AdditionalProperties: validation.BoolPtr(false),
	}
}

// internal/workers/decision-notice/preview-decision-notice/validation.go
package previewdecisionnotice

import (
	"tribunal-workers/internal/common/validation"
	"tribunal-workers/internal/decisionnotice"
)

func GetInputSchema() validation.JSONSchema {
	return decisionnotice.CaseSchema()
}

func GetOutputSchema() validation.JSONSchema {
	descriptor := &validation.Property{
		Type: "object",
		Properties: map[string]validation.Property{
			"activityQuestionNumber": {Type: "integer"},
			"activityQuestionValue":  {Type: "string"},
			"activityAnswerValue":    {Type: "string"},
			"activityAnswerLetter":   {Type: "string"},
			"activityAnswerPoints":   {Type: "integer"},
		},
	}
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"caseId":                  {Type: "string"},
			"evaluationId":            {Type: "string", Format: "uuid"},
			"isValid":                 {Type: "boolean"},
			"validationErrors":        {Type: "array", Items: &validation.Property{Type: "string"}},
			"benefit":                 {Type: "string", Enum: []string{"ESA", "UC"}},
			"generated":               {Type: "boolean"},
			"pointsConditionId":       {Type: "string"},
			"outcomeConditionId":      {Type: "string"},
			"pointsTotal":             {Type: "integer"},
			"award":                   {Type: "string", Enum: []string{"noAward", "lowerRate", "higherRate"}},
			"awardRate":               {Type: "string"},
			"entitled":                {Type: "boolean"},
			"scenario":                {Type: "string", Pattern: validation.StringPtr(`^SCENARIO_[0-9]+$`)},
			"descriptors":             {Type: "array", Items: descriptor},
			"scheduleDescriptors":     {Type: "array", Items: descriptor},
			"showRegulationPage":      {Type: "boolean"},
			"workCapabilityRisk":      {Type: "string", Nullable: true, Enum: []string{"Yes", "No"}},
			"workRelatedActivityRisk": {Type: "string", Nullable: true, Enum: []string{"Yes", "No"}},
		},
	}
}

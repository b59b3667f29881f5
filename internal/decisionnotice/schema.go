// internal/decisionnotice/schema.go
package decisionnotice

import (
	"tribunal-workers/internal/common/validation"
)

const answerKeyPattern = `^[a-zA-Z]+[0-9]+[a-z]$`

// CaseSchema is the JSON schema for the case answer variables. Process
// variables it does not name are allowed through.
func CaseSchema() validation.JSONSchema {
	yesNo := func(desc string) validation.Property {
		return validation.Property{
			Type:        "string",
			Nullable:    true,
			Description: desc,
			Enum:        []string{"Yes", "No", ""},
		}
	}
	questionList := func(desc string) validation.Property {
		return validation.Property{
			Type:        "array",
			Nullable:    true,
			Description: desc,
			Items:       &validation.Property{Type: "string", MinLength: validation.IntPtr(1)},
		}
	}

	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"caseId", "benefit"},
		Properties: map[string]validation.Property{
			"caseId": {
				Type:        "string",
				Description: "Case reference",
				MinLength:   validation.IntPtr(1),
				MaxLength:   validation.IntPtr(64),
			},
			"benefit": {
				Type:        "string",
				Description: "Benefit under appeal",
				Enum:        []string{string(ESA), string(UC)},
			},
			"generateNotice":         yesNo("Whether a decision notice is being generated"),
			"supportGroupOnlyAppeal": yesNo("Appeal is against the support group decision only"),
			"workCapabilityRisk":     yesNo("Substantial risk to health if found capable of work"),
			"workRelatedActivityRisk": yesNo(
				"Substantial risk to health if found capable of work related activity",
			),
			"allowedOrRefused": {
				Type:     "string",
				Nullable: true,
				Enum:     []string{"allowed", "refused", ""},
			},
			"wcaAppeal": {
				Type:        "boolean",
				Description: "Appeal concerns the work capability assessment",
			},
			"physicalDisabilities":  questionList("Physical disability questions answered"),
			"mentalAssessment":      questionList("Mental assessment questions answered"),
			"workRelatedActivities": questionList("Schedule activities selected"),
			"activityAnswers": {
				Type:        "object",
				Nullable:    true,
				Description: "Selected descriptor key for each answered question",
				PatternProperties: map[string]validation.Property{
					"^[a-zA-Z]+$": {Type: "string", Pattern: validation.StringPtr(answerKeyPattern)},
				},
			},
			"dwpReassessTheAward": {Type: "string", Nullable: true},
			"startDate":           {Type: "string", Nullable: true},
			"endDate":             {Type: "string", Nullable: true},
		},
	}
}

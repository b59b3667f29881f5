// internal/workers/activities.go
package workers

import (
	"fmt"

	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/validation"
	notifycatalogdefect "tribunal-workers/internal/workers/communication/notify-catalog-defect"
	indexdecisionoutcome "tribunal-workers/internal/workers/data-access/index-decision-outcome"
	recorddecisionoutcome "tribunal-workers/internal/workers/data-access/record-decision-outcome"
	decisionnoticemidevent "tribunal-workers/internal/workers/decision-notice/decision-notice-mid-event"
	previewdecisionnotice "tribunal-workers/internal/workers/decision-notice/preview-decision-notice"
	validatedecisionnotice "tribunal-workers/internal/workers/decision-notice/validate-decision-notice"
	"tribunal-workers/pkg/registry"
)

// RegistryVersion is stamped on generated activity registries.
const RegistryVersion = "1.0.0"

type definition struct {
	taskType    string
	displayName string
	description string
	category    string
	timeout     string
	input       validation.JSONSchema
	output      validation.JSONSchema
	errorCodes  []errors.ErrorCode
	tags        []string
}

var engineErrors = []errors.ErrorCode{
	errors.ErrCodeInputSchemaInvalid,
	errors.ErrCodeCatalogDefect,
	errors.ErrCodeUnknownAnswerKey,
	errors.ErrCodeUnknownBenefit,
	errors.ErrCodeDecisionNoticeInvalid,
}

func definitions() []definition {
	return []definition{
		{
			taskType:    decisionnoticemidevent.TaskType,
			displayName: "Decision Notice Mid-Event",
			description: "Totals activity points and runs the page-level checks while the adjudicator answers",
			category:    "decision-notice",
			timeout:     "5s",
			input:       decisionnoticemidevent.GetInputSchema(),
			output:      decisionnoticemidevent.GetOutputSchema(),
			errorCodes:  engineErrors,
			tags:        []string{"esa", "uc", "rules"},
		},
		{
			taskType:    validatedecisionnotice.TaskType,
			displayName: "Validate Decision Notice",
			description: "Checks the submitted answers against the benefit's validation conditions",
			category:    "decision-notice",
			timeout:     "5s",
			input:       validatedecisionnotice.GetInputSchema(),
			output:      validatedecisionnotice.GetOutputSchema(),
			errorCodes:  engineErrors,
			tags:        []string{"esa", "uc", "rules"},
		},
		{
			taskType:    previewdecisionnotice.TaskType,
			displayName: "Preview Decision Notice",
			description: "Resolves the award, scenario and descriptors for the notice preview",
			category:    "decision-notice",
			timeout:     "10s",
			input:       previewdecisionnotice.GetInputSchema(),
			output:      previewdecisionnotice.GetOutputSchema(),
			errorCodes:  engineErrors,
			tags:        []string{"esa", "uc", "rules"},
		},
		{
			taskType:    recorddecisionoutcome.TaskType,
			displayName: "Record Decision Outcome",
			description: "Writes one audit row per evaluation to postgres",
			category:    "data-access",
			timeout:     "5s",
			input:       recorddecisionoutcome.GetInputSchema(),
			output:      recorddecisionoutcome.GetOutputSchema(),
			errorCodes: []errors.ErrorCode{
				errors.ErrCodeInputSchemaInvalid,
				errors.ErrCodeAuditInsertFailed,
				errors.ErrCodeAuditGuardFailed,
				errors.ErrCodeDatabaseConnectionFailed,
				errors.ErrCodeStoreTimeout,
			},
			tags: []string{"postgres", "redis", "audit"},
		},
		{
			taskType:    indexdecisionoutcome.TaskType,
			displayName: "Index Decision Outcome",
			description: "Indexes the outcome document in elasticsearch for reporting",
			category:    "data-access",
			timeout:     "10s",
			input:       indexdecisionoutcome.GetInputSchema(),
			output:      indexdecisionoutcome.GetOutputSchema(),
			errorCodes: []errors.ErrorCode{
				errors.ErrCodeInputSchemaInvalid,
				errors.ErrCodeOutcomeIndexFailed,
				errors.ErrCodeStoreTimeout,
			},
			tags: []string{"elasticsearch", "reporting"},
		},
		{
			taskType:    notifycatalogdefect.TaskType,
			displayName: "Notify Catalog Defect",
			description: "Alerts the operations team over SNS and SES when a catalog defect is hit",
			category:    "communication",
			timeout:     "15s",
			input:       notifycatalogdefect.GetInputSchema(),
			output:      notifycatalogdefect.GetOutputSchema(),
			errorCodes: []errors.ErrorCode{
				errors.ErrCodeInputSchemaInvalid,
				errors.ErrCodeAlertPublishFailed,
			},
			tags: []string{"aws", "sns", "ses", "alerting"},
		},
	}
}

// TaskTypes lists every task type this module implements.
func TaskTypes() []string {
	defs := definitions()
	types := make([]string, len(defs))
	for i, d := range defs {
		types[i] = d.taskType
	}
	return types
}

// Activities renders the registry entries of every worker from its schemas.
func Activities() ([]registry.Activity, error) {
	defs := definitions()
	activities := make([]registry.Activity, 0, len(defs))
	for _, d := range defs {
		input, err := d.input.ToMap()
		if err != nil {
			return nil, fmt.Errorf("%s input schema: %w", d.taskType, err)
		}
		output, err := d.output.ToMap()
		if err != nil {
			return nil, fmt.Errorf("%s output schema: %w", d.taskType, err)
		}

		codes := make([]string, len(d.errorCodes))
		retries := 0
		for i, c := range d.errorCodes {
			codes[i] = string(c)
			if n := errors.GetRetryCount(c); n > retries {
				retries = n
			}
		}

		activities = append(activities, registry.Activity{
			ID:                   d.taskType,
			DisplayName:          d.displayName,
			Description:          d.description,
			Category:             d.category,
			Version:              RegistryVersion,
			TaskType:             d.taskType,
			ImplementationStatus: registry.StatusCompleted,
			InputSchema:          input,
			OutputSchema:         output,
			ErrorCodes:           codes,
			Timeout:              d.timeout,
			Retries:              retries,
			Workflows:            []string{"decision-notice"},
			Tags:                 d.tags,
		})
	}
	return activities, nil
}

// CheckRegistry reports task types that the registry does not list.
func CheckRegistry(reg *registry.ActivityRegistry) error {
	var missing []string
	for _, taskType := range TaskTypes() {
		if _, ok := reg.Find(taskType); !ok {
			missing = append(missing, taskType)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("activity registry is missing task types: %v", missing)
	}
	return nil
}

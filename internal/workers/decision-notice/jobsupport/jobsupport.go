// internal/workers/decision-notice/jobsupport/jobsupport.go
package jobsupport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"

	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/common/validation"
	"tribunal-workers/internal/decisionnotice"
)

// ParseCase checks the job variables against the case schema and decodes
// them.
func ParseCase(job entities.Job) (*decisionnotice.CaseAnswers, error) {
	vars, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, errors.NewInputSchemaInvalidError(fmt.Sprintf("parse variables: %v", err))
	}
	return DecodeCase(vars, job.Variables)
}

// DecodeCase validates already-unmarshalled variables and decodes raw into
// case answers.
func DecodeCase(vars map[string]interface{}, raw string) (*decisionnotice.CaseAnswers, error) {
	result := validation.ValidateInput(vars, decisionnotice.CaseSchema())
	if !result.Valid {
		return nil, errors.NewInputSchemaInvalidError(strings.Join(result.GetErrorMessages(), "; ")).
			WithMetadata("fieldErrors", result.Errors)
	}

	var c decisionnotice.CaseAnswers
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, errors.NewInputSchemaInvalidError(fmt.Sprintf("decode case answers: %v", err))
	}
	return &c, nil
}

// EngineError converts an engine failure into the error the job fails with.
// Catalog defects carry the generic message; the cause stays in Details.
// Workers normally complete invalid answers rather than failing on them.
func EngineError(err error, c *decisionnotice.CaseAnswers) *errors.StandardError {
	var stdErr *errors.StandardError
	verr, invalid := decisionnotice.AsValidationError(err)
	switch {
	case invalid:
		stdErr = errors.NewDecisionNoticeInvalidError(strings.Join(verr.Messages, "; ")).
			WithMetadata("conditionId", verr.ConditionID)
	case stderrors.Is(err, decisionnotice.ErrCatalogDefect):
		stdErr = errors.NewCatalogDefectError(decisionnotice.DefectMessage, err)
	case stderrors.Is(err, decisionnotice.ErrUnknownKey):
		stdErr = errors.NewUnknownAnswerKeyError(err)
	case stderrors.Is(err, decisionnotice.ErrUnknownBenefit):
		stdErr = errors.NewUnknownBenefitError(string(c.Benefit))
	default:
		stdErr = errors.Normalize(err)
	}
	return stdErr.
		WithMetadata("caseId", c.CaseID).
		WithMetadata("benefit", string(c.Benefit))
}

// CaseFields flattens the answers for a log entry.
func CaseFields(c *decisionnotice.CaseAnswers) map[string]interface{} {
	return map[string]interface{}{
		"caseId":                  c.CaseID,
		"benefit":                 string(c.Benefit),
		"generateNotice":          c.GenerateNotice.String(),
		"allowedOrRefused":        c.AllowedOrRefused,
		"wcaAppeal":               c.WcaAppeal,
		"supportGroupOnlyAppeal":  c.SupportGroupOnlyAppeal.String(),
		"physicalDisabilities":    c.PhysicalDisabilities,
		"mentalAssessment":        c.MentalAssessment,
		"activityAnswers":         c.ActivityAnswers,
		"workCapabilityRisk":      c.WorkCapabilityRisk.String(),
		"workRelatedActivityRisk": c.WorkRelatedActivityRisk.String(),
		"workRelatedActivities":   c.WorkRelatedActivities,
	}
}

// LogDefect logs a catalog defect at error level together with the answers
// that produced it. Other errors are ignored.
func LogDefect(log logger.Logger, err error, c *decisionnotice.CaseAnswers) {
	if !stderrors.Is(err, decisionnotice.ErrCatalogDefect) {
		return
	}
	fields := CaseFields(c)
	fields["error"] = err.Error()
	log.Error("catalog defect", fields)
}

// RecordEvaluation counts one evaluation under the result err implies.
func RecordEvaluation(c *decisionnotice.CaseAnswers, generated bool, err error) {
	result := metrics.ResultValid
	switch {
	case err == nil && !generated:
		result = metrics.ResultNotGenerated
	case err == nil:
	case stderrors.Is(err, decisionnotice.ErrCatalogDefect):
		result = metrics.ResultDefect
		metrics.CatalogDefects.WithLabelValues(string(c.Benefit)).Inc()
	default:
		if verr, ok := decisionnotice.AsValidationError(err); ok {
			result = metrics.ResultInvalid
			metrics.DecisionNoticeValidationFailures.WithLabelValues(string(c.Benefit), verr.ConditionID).Inc()
		} else {
			return
		}
	}
	metrics.DecisionNoticeEvaluations.WithLabelValues(string(c.Benefit), result).Inc()
}

// internal/decisionnotice/errors.go
package decisionnotice

import (
	"errors"
	"strings"

	"tribunal-workers/internal/decisionnotice/activity"
	"tribunal-workers/internal/decisionnotice/catalog"
)

var (
	ErrCatalogDefect  = catalog.ErrCatalogDefect
	ErrNoScenario     = catalog.ErrNoScenario
	ErrUnknownKey     = activity.ErrUnknownKey
	ErrUnknownBenefit = activity.ErrUnknownBenefit
)

// DefectMessage is shown to users whenever a catalog defect is hit. The
// underlying error is logged, never displayed.
const DefectMessage = "Unable to obtain a valid scenario - something has gone wrong"

// ValidationError is a user-correctable inconsistency in the answers.
type ValidationError struct {
	ConditionID string
	Messages    []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func newValidationError(o *catalog.ValidationOutcome) *ValidationError {
	return &ValidationError{ConditionID: o.ConditionID, Messages: []string{o.Message}}
}

// AsValidationError unwraps a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// internal/workers/decision-notice/decision-notice-mid-event/models.go
package decisionnoticemidevent

import "tribunal-workers/internal/decisionnotice"

type Input = decisionnotice.CaseAnswers

// Output drives the page flow of the decision notice journey.
type Output struct {
	PointsTotal        int      `json:"pointsTotal"`
	ShowRegulationPage bool     `json:"showRegulationPage"`
	IsValid            bool     `json:"isValid"`
	ValidationErrors   []string `json:"validationErrors"`
}

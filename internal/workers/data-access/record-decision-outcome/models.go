// internal/workers/data-access/record-decision-outcome/models.go
package recorddecisionoutcome

import "encoding/json"

// Input is the subset of preview or validate variables kept in the audit
// trail. Descriptor lists are stored as given.
type Input struct {
	EvaluationID        string          `json:"evaluationId"`
	CaseID              string          `json:"caseId"`
	Benefit             string          `json:"benefit"`
	Generated           bool            `json:"generated"`
	IsValid             bool            `json:"isValid"`
	ValidationErrors    []string        `json:"validationErrors"`
	PointsTotal         int             `json:"pointsTotal"`
	PointsConditionID   string          `json:"pointsConditionId,omitempty"`
	OutcomeConditionID  string          `json:"outcomeConditionId,omitempty"`
	Award               string          `json:"award,omitempty"`
	AwardRate           string          `json:"awardRate,omitempty"`
	Scenario            string          `json:"scenario,omitempty"`
	Entitled            bool            `json:"entitled"`
	Descriptors         json.RawMessage `json:"descriptors,omitempty"`
	ScheduleDescriptors json.RawMessage `json:"scheduleDescriptors,omitempty"`
}

type Output struct {
	AuditID      string `json:"auditId"`
	EvaluationID string `json:"evaluationId"`
	Duplicate    bool   `json:"duplicate"`
}

// internal/workers/data-access/index-decision-outcome/models.go
package indexdecisionoutcome

import (
	"encoding/json"
	"time"
)

type Input struct {
	EvaluationID       string          `json:"evaluationId"`
	CaseID             string          `json:"caseId"`
	Benefit            string          `json:"benefit"`
	Generated          bool            `json:"generated"`
	IsValid            bool            `json:"isValid"`
	ValidationErrors   []string        `json:"validationErrors"`
	PointsTotal        int             `json:"pointsTotal"`
	PointsConditionID  string          `json:"pointsConditionId,omitempty"`
	OutcomeConditionID string          `json:"outcomeConditionId,omitempty"`
	Award              string          `json:"award,omitempty"`
	Scenario           string          `json:"scenario,omitempty"`
	Entitled           bool            `json:"entitled"`
	Descriptors        json.RawMessage `json:"descriptors,omitempty"`
}

// Document is the indexed shape; field names follow the outcome index
// mapping.
type Document struct {
	EvaluationID       string          `json:"evaluationId"`
	CaseID             string          `json:"caseId"`
	Benefit            string          `json:"benefit"`
	Generated          bool            `json:"generated"`
	Valid              bool            `json:"valid"`
	PointsTotal        int             `json:"pointsTotal"`
	PointsConditionID  string          `json:"pointsConditionId,omitempty"`
	OutcomeConditionID string          `json:"outcomeConditionId,omitempty"`
	Award              string          `json:"award,omitempty"`
	Scenario           string          `json:"scenario,omitempty"`
	Entitled           bool            `json:"entitled"`
	ValidationErrors   []string        `json:"validationErrors"`
	Descriptors        json.RawMessage `json:"descriptors,omitempty"`
	EvaluatedAt        time.Time       `json:"evaluatedAt"`
}

type Output struct {
	Indexed    bool   `json:"indexed"`
	IndexName  string `json:"indexName"`
	DocumentID string `json:"documentId"`
	Result     string `json:"indexResult"`
}

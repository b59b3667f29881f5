// internal/decisionnotice/answers/answers.go
package answers

import (
	"strings"

	"tribunal-workers/internal/decisionnotice/predicate"
)

type Benefit string

const (
	ESA Benefit = "ESA"
	UC  Benefit = "UC"
)

func ParseBenefit(s string) (Benefit, bool) {
	switch Benefit(strings.ToUpper(strings.TrimSpace(s))) {
	case ESA:
		return ESA, true
	case UC:
		return UC, true
	default:
		return "", false
	}
}

// Case is a read-only snapshot of the adjudicator's decision notice answers.
//
// PhysicalDisabilities and MentalAssessment hold the activity question keys
// the adjudicator chose to answer; ActivityAnswers maps each of those keys to
// the selected descriptor key (e.g. "mobilisingUnaided" -> "mobilisingUnaided1b").
type Case struct {
	CaseID                  string            `json:"caseId"`
	Benefit                 Benefit           `json:"benefit"`
	GenerateNotice          predicate.YesNo   `json:"generateNotice"`
	AllowedOrRefused        string            `json:"allowedOrRefused,omitempty"`
	WcaAppeal               bool              `json:"wcaAppeal"`
	SupportGroupOnlyAppeal  predicate.YesNo   `json:"supportGroupOnlyAppeal"`
	PhysicalDisabilities    []string          `json:"physicalDisabilities"`
	MentalAssessment        []string          `json:"mentalAssessment"`
	ActivityAnswers         map[string]string `json:"activityAnswers,omitempty"`
	WorkCapabilityRisk      predicate.YesNo   `json:"workCapabilityRisk"`
	WorkRelatedActivityRisk predicate.YesNo   `json:"workRelatedActivityRisk"`
	WorkRelatedActivities   []string          `json:"workRelatedActivities"`
	DwpReassessTheAward     *string           `json:"dwpReassessTheAward,omitempty"`
	StartDate               string            `json:"startDate,omitempty"`
	EndDate                 string            `json:"endDate,omitempty"`
}

// Clone returns a deep copy so callers can adjust answers without touching
// the original snapshot.
func (c *Case) Clone() *Case {
	if c == nil {
		return nil
	}
	out := *c
	out.PhysicalDisabilities = cloneList(c.PhysicalDisabilities)
	out.MentalAssessment = cloneList(c.MentalAssessment)
	out.WorkRelatedActivities = cloneList(c.WorkRelatedActivities)
	if c.ActivityAnswers != nil {
		out.ActivityAnswers = make(map[string]string, len(c.ActivityAnswers))
		for k, v := range c.ActivityAnswers {
			out.ActivityAnswers[k] = v
		}
	}
	if c.DwpReassessTheAward != nil {
		v := *c.DwpReassessTheAward
		out.DwpReassessTheAward = &v
	}
	return &out
}

// DwpReassessAnswered is Unset when the field was never shown, No when it was
// left blank and Yes when a reassessment period was chosen.
func (c *Case) DwpReassessAnswered() predicate.YesNo {
	if c.DwpReassessTheAward == nil {
		return predicate.Unset
	}
	return predicate.FromBool(strings.TrimSpace(*c.DwpReassessTheAward) != "")
}

func cloneList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// internal/decisionnotice/catalog/vocabulary.go
package catalog

import (
	"tribunal-workers/internal/decisionnotice/answers"
	"tribunal-workers/internal/decisionnotice/condition"
	"tribunal-workers/internal/decisionnotice/predicate"
)

// Vocabulary holds the benefit-specific field labels and condition id
// fragments. Both benefits share the same catalog structure.
type Vocabulary struct {
	Benefit          answers.Benefit
	WcaAppeal        string
	FirstRegulation  string
	SecondRegulation string
	Schedule         string

	firstRegulationID  string
	secondRegulationID string
	descriptorsID      string
}

var (
	ESAVocabulary = Vocabulary{
		Benefit:            answers.ESA,
		WcaAppeal:          "Wca Appeal",
		FirstRegulation:    "Regulation 29",
		SecondRegulation:   "Regulation 35",
		Schedule:           "Schedule 3 Activities",
		firstRegulationID:  "REGULATION_29",
		secondRegulationID: "REGULATION_35",
		descriptorsID:      "SCHEDULE2",
	}

	UCVocabulary = Vocabulary{
		Benefit:            answers.UC,
		WcaAppeal:          "WCA Appeal",
		FirstRegulation:    "Schedule 8 Paragraph 4",
		SecondRegulation:   "Schedule 9 Paragraph 4",
		Schedule:           "Schedule 7 Activities",
		firstRegulationID:  "SCHEDULE_8_PARAGRAPH_4",
		secondRegulationID: "SCHEDULE_9_PARAGRAPH_4",
		descriptorsID:      "SCHEDULE6",
	}
)

const (
	supportGroupOnlyName = "Support Group Only Appeal"
	dwpReassessName      = "'When should DWP reassess the award?'"
)

// Extractors read the fields whose derivation is still under business
// review. Both can be replaced with WithExtractors.
type Extractors struct {
	SupportGroupOnly   condition.YesNoExtractor
	ScheduleSelections condition.ListExtractor
}

func DefaultExtractors() Extractors {
	return Extractors{
		SupportGroupOnly:   func(c *answers.Case) predicate.YesNo { return c.SupportGroupOnlyAppeal },
		ScheduleSelections: func(c *answers.Case) []string { return c.WorkRelatedActivities },
	}
}

// fields builds the field conditions used by both catalogs.
type fields struct {
	vocab   Vocabulary
	extract Extractors
}

func (f fields) wcaAppeal(p predicate.YesNoPredicate) *condition.YesNoField {
	return condition.YesNo(f.vocab.WcaAppeal, p, func(c *answers.Case) predicate.YesNo {
		return predicate.FromBool(c.WcaAppeal)
	})
}

func (f fields) supportGroupOnly(p predicate.YesNoPredicate) *condition.YesNoField {
	return condition.YesNo(supportGroupOnlyName, p, f.extract.SupportGroupOnly)
}

func (f fields) firstRegulation(p predicate.YesNoPredicate) *condition.YesNoField {
	return condition.YesNo(f.vocab.FirstRegulation, p, func(c *answers.Case) predicate.YesNo {
		return c.WorkCapabilityRisk
	})
}

func (f fields) secondRegulation(p predicate.YesNoPredicate) *condition.YesNoField {
	return condition.YesNo(f.vocab.SecondRegulation, p, func(c *answers.Case) predicate.YesNo {
		return c.WorkRelatedActivityRisk
	})
}

func (f fields) schedule(p predicate.List) *condition.ListField {
	return condition.List(f.vocab.Schedule, p, f.extract.ScheduleSelections)
}

func (f fields) dwpReassess(p predicate.YesNoPredicate) *condition.YesNoField {
	return condition.YesNo(dwpReassessName, p, func(c *answers.Case) predicate.YesNo {
		return c.DwpReassessAnswered()
	})
}

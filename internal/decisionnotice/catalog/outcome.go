// internal/decisionnotice/catalog/outcome.go
package catalog

import (
	"fmt"

	"tribunal-workers/internal/decisionnotice/activity"
	"tribunal-workers/internal/decisionnotice/answers"
	"tribunal-workers/internal/decisionnotice/condition"
	"tribunal-workers/internal/decisionnotice/predicate"
)

// OutcomeKind identifies an allowed/refused catalog entry.
type OutcomeKind int

const (
	RefusedNonSupportGroupOnly OutcomeKind = iota + 1
	RefusedSupportGroupOnlyLowPoints
	RefusedSupportGroupOnlyHighPoints
	AllowedNonSupportGroupOnlyHighPoints
	AllowedNonSupportGroupOnlyLowPoints
	AllowedSupportGroupOnlyScheduleSelected
	AllowedSupportGroupOnlyScheduleNotSelected
	AllowedSupportGroupOnlyScheduleUnspecified
	NonWcaAppealAllowed
	NonWcaAppealRefused
)

var outcomeIDs = map[OutcomeKind]string{
	RefusedNonSupportGroupOnly:                 "REFUSED_NON_SUPPORT_GROUP_ONLY",
	RefusedSupportGroupOnlyLowPoints:           "REFUSED_SUPPORT_GROUP_ONLY_LOW_POINTS",
	RefusedSupportGroupOnlyHighPoints:          "REFUSED_SUPPORT_GROUP_ONLY_HIGH_POINTS",
	AllowedNonSupportGroupOnlyHighPoints:       "ALLOWED_NON_SUPPORT_GROUP_ONLY_HIGH_POINTS",
	AllowedNonSupportGroupOnlyLowPoints:        "ALLOWED_NON_SUPPORT_GROUP_ONLY_LOW_POINTS",
	AllowedSupportGroupOnlyScheduleSelected:    "ALLOWED_SUPPORT_GROUP_ONLY_SCHEDULE_3_SELECTED",
	AllowedSupportGroupOnlyScheduleNotSelected: "ALLOWED_SUPPORT_GROUP_ONLY_SCHEDULE_3_NOT_SELECTED",
	AllowedSupportGroupOnlyScheduleUnspecified: "ALLOWED_SUPPORT_GROUP_ONLY_SCHEDULE_3_UNSPECIFIED",
	NonWcaAppealAllowed:                        "NON_WCA_APPEAL_ALLOWED",
	NonWcaAppealRefused:                        "NON_WCA_APPEAL_REFUSED",
}

func (k OutcomeKind) String() string {
	if id, ok := outcomeIDs[k]; ok {
		return id
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// OutcomeEntry is a valid combination of allowed/refused with the rest of
// the decision notice journey. Used on submission and before preview.
type OutcomeEntry struct {
	ID             string
	Kind           OutcomeKind
	Primary        []condition.Field
	PrimaryBand    activity.Band // zero means any points
	ValidationBand activity.Band // zero means no points check
	Validation     []condition.Field
}

func (e *OutcomeEntry) applicable(c *answers.Case, points int) bool {
	if c.GenerateNotice != predicate.Yes {
		return false
	}
	if e.PrimaryBand != 0 && !e.PrimaryBand.Holds(points) {
		return false
	}
	return condition.AllSatisfied(c, e.Primary...)
}

func (e *OutcomeEntry) validate(c *answers.Case, points int) *ValidationOutcome {
	var violations []string
	if e.ValidationBand != 0 && !e.ValidationBand.Holds(points) {
		violations = append(violations, e.ValidationBand.ViolationMessage())
	}
	violations = append(violations, condition.ViolationMessages(c, e.Validation...)...)
	if len(violations) == 0 {
		return nil
	}

	var satisfied []string
	if e.PrimaryBand != 0 {
		satisfied = append(satisfied, e.PrimaryBand.SatisfiedMessage())
	}
	satisfied = append(satisfied, condition.SatisfiedMessages(c, e.Primary...)...)
	return newValidationOutcome(e.ID, satisfied, violations)
}

type outcomeSpec struct {
	kind             OutcomeKind
	outcome          predicate.Outcome
	wcaAppeal        *condition.YesNoField
	supportGroupOnly *condition.YesNoField
	primaryBand      activity.Band
	schedule         *condition.ListField
	validationBand   activity.Band
	validation       []condition.Field
}

func (s outcomeSpec) build() *OutcomeEntry {
	primary := fieldList(condition.AllowedOrRefused(s.outcome), s.wcaAppeal)
	if s.supportGroupOnly != nil {
		primary = append(primary, s.supportGroupOnly)
	}
	if s.schedule != nil {
		primary = append(primary, s.schedule)
	}
	return &OutcomeEntry{
		ID:             s.kind.String(),
		Kind:           s.kind,
		Primary:        primary,
		PrimaryBand:    s.primaryBand,
		ValidationBand: s.validationBand,
		Validation:     s.validation,
	}
}

func outcomeEntries(f fields) []*OutcomeEntry {
	low := activity.LessThanFifteen
	high := activity.FifteenOrMore
	wca := f.wcaAppeal(predicate.IsTrue).Hidden()

	specs := []outcomeSpec{
		{
			kind:             RefusedNonSupportGroupOnly,
			outcome:          predicate.Refused,
			wcaAppeal:        wca,
			supportGroupOnly: f.supportGroupOnly(predicate.IsNotTrue),
			validationBand:   low,
			validation: fieldList(
				f.firstRegulation(predicate.IsFalse),
				f.schedule(predicate.ListUnspecified),
				f.supportGroupOnly(predicate.IsFalse).Hidden(),
				f.secondRegulation(predicate.IsUnspecified),
			),
		},
		{
			kind:             RefusedSupportGroupOnlyLowPoints,
			outcome:          predicate.Refused,
			wcaAppeal:        wca,
			supportGroupOnly: f.supportGroupOnly(predicate.IsTrue),
			primaryBand:      low,
			validation: fieldList(
				f.firstRegulation(predicate.IsUnspecified),
				f.schedule(predicate.ListEmpty),
				f.secondRegulation(predicate.IsFalse),
			),
		},
		{
			kind:             RefusedSupportGroupOnlyHighPoints,
			outcome:          predicate.Refused,
			wcaAppeal:        wca,
			supportGroupOnly: f.supportGroupOnly(predicate.IsTrue),
			primaryBand:      high,
			validation: fieldList(
				f.firstRegulation(predicate.IsUnspecified),
				f.schedule(predicate.ListEmpty),
				f.secondRegulation(predicate.IsFalse),
			),
		},
		{
			kind:             AllowedNonSupportGroupOnlyHighPoints,
			outcome:          predicate.Allowed,
			wcaAppeal:        wca,
			supportGroupOnly: f.supportGroupOnly(predicate.IsNotTrue),
			primaryBand:      high,
			validation:       fieldList(f.supportGroupOnly(predicate.IsFalse).Hidden()),
		},
		{
			kind:             AllowedNonSupportGroupOnlyLowPoints,
			outcome:          predicate.Allowed,
			wcaAppeal:        wca,
			supportGroupOnly: f.supportGroupOnly(predicate.IsNotTrue),
			primaryBand:      low,
			validation: fieldList(
				f.supportGroupOnly(predicate.IsFalse).Hidden(),
				f.firstRegulation(predicate.IsTrue),
			),
		},
		{
			kind:             AllowedSupportGroupOnlyScheduleSelected,
			outcome:          predicate.Allowed,
			wcaAppeal:        wca,
			supportGroupOnly: f.supportGroupOnly(predicate.IsTrue),
			schedule:         f.schedule(predicate.ListNotEmpty),
			validation:       fieldList(f.firstRegulation(predicate.IsUnspecified)),
		},
		{
			kind:             AllowedSupportGroupOnlyScheduleNotSelected,
			outcome:          predicate.Allowed,
			wcaAppeal:        wca,
			supportGroupOnly: f.supportGroupOnly(predicate.IsTrue),
			schedule:         f.schedule(predicate.ListEmpty),
			validation: fieldList(
				f.firstRegulation(predicate.IsUnspecified),
				f.secondRegulation(predicate.IsTrue),
			),
		},
		{
			kind:             AllowedSupportGroupOnlyScheduleUnspecified,
			outcome:          predicate.Allowed,
			wcaAppeal:        f.wcaAppeal(predicate.IsTrue),
			supportGroupOnly: f.supportGroupOnly(predicate.IsTrue),
			schedule:         f.schedule(predicate.ListUnspecified),
			validation: fieldList(
				f.firstRegulation(predicate.IsUnspecified),
				f.secondRegulation(predicate.IsTrue),
			),
		},
		{
			kind:       NonWcaAppealAllowed,
			outcome:    predicate.Allowed,
			wcaAppeal:  f.wcaAppeal(predicate.IsFalse),
			validation: fieldList(f.dwpReassess(predicate.IsUnspecified)),
		},
		{
			kind:       NonWcaAppealRefused,
			outcome:    predicate.Refused,
			wcaAppeal:  f.wcaAppeal(predicate.IsFalse),
			validation: fieldList(f.dwpReassess(predicate.IsUnspecified)),
		},
	}

	entries := make([]*OutcomeEntry, 0, len(specs))
	for _, s := range specs {
		entries = append(entries, s.build())
	}
	return entries
}

// scenario maps a resolved outcome entry to its narrative scenario.
func (cat *Catalog) scenario(e *OutcomeEntry, c *answers.Case) (Scenario, error) {
	secondRegulation := c.WorkRelatedActivityRisk
	scheduleSelected := len(cat.extract.ScheduleSelections(c)) > 0

	switch e.Kind {
	case RefusedNonSupportGroupOnly:
		return Scenario1, nil
	case RefusedSupportGroupOnlyLowPoints, RefusedSupportGroupOnlyHighPoints:
		return Scenario2, nil
	case AllowedSupportGroupOnlyScheduleNotSelected:
		switch secondRegulation {
		case predicate.Yes:
			return Scenario3, nil
		case predicate.Unset:
			return Scenario4, nil
		}
	case AllowedSupportGroupOnlyScheduleSelected:
		return Scenario4, nil
	case AllowedNonSupportGroupOnlyHighPoints:
		if scheduleSelected {
			return Scenario6, nil
		}
		if secondRegulation == predicate.Yes {
			return Scenario12, nil
		}
		return Scenario5, nil
	case AllowedNonSupportGroupOnlyLowPoints:
		if scheduleSelected {
			return Scenario9, nil
		}
		switch secondRegulation {
		case predicate.No:
			return Scenario7, nil
		case predicate.Yes:
			return Scenario8, nil
		}
	case NonWcaAppealAllowed, NonWcaAppealRefused:
		return Scenario10, nil
	}
	return "", fmt.Errorf("%w: %w for %s", ErrCatalogDefect, ErrNoScenario, e.ID)
}

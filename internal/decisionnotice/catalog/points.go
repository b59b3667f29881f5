// internal/decisionnotice/catalog/points.go
package catalog

import (
	"tribunal-workers/internal/decisionnotice/activity"
	"tribunal-workers/internal/decisionnotice/answers"
	"tribunal-workers/internal/decisionnotice/condition"
	"tribunal-workers/internal/decisionnotice/predicate"
)

// PointsEntry is a valid journey through the points, regulation and
// schedule questions. Used before preview to derive the award.
type PointsEntry struct {
	ID                     string
	Band                   activity.Band
	Primary                []condition.Field
	Award                  Award
	DisplayPointsSatisfied bool
	Validation             []condition.Field
}

func (e *PointsEntry) applicable(c *answers.Case, points int) bool {
	return c.GenerateNotice == predicate.Yes &&
		e.Band.Holds(points) &&
		condition.AllSatisfied(c, e.Primary...)
}

func (e *PointsEntry) validate(c *answers.Case) *ValidationOutcome {
	violations := condition.ViolationMessages(c, e.Validation...)
	if len(violations) == 0 {
		return nil
	}

	var satisfied []string
	if e.DisplayPointsSatisfied {
		satisfied = append(satisfied, e.Band.SatisfiedMessage())
	}
	satisfied = append(satisfied, condition.SatisfiedMessages(c, e.Primary...)...)
	return newValidationOutcome(e.ID, satisfied, violations)
}

func pointsEntries(f fields) []*PointsEntry {
	r1 := f.vocab.firstRegulationID
	r2 := f.vocab.secondRegulationID
	low := activity.LessThanFifteen
	high := activity.FifteenOrMore
	lowNonSupportGroup := "LOW_POINTS_" + r1 + "_DOES_APPLY_" + r2
	lowSupportGroup := "LOW_POINTS_" + f.vocab.descriptorsID + "_AND_REG_29_SKIPPED_" + r2

	return []*PointsEntry{
		// Points were lowered after the first regulation question was skipped.
		{
			ID:   "LOW_POINTS_" + r1 + "_UNSPECIFIED",
			Band: low,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.supportGroupOnly(predicate.IsNotTrue),
				f.firstRegulation(predicate.IsUnspecified).Hidden(),
			),
			DisplayPointsSatisfied: true,
			Validation:             fieldList(f.firstRegulation(predicate.IsSpecified)),
		},
		{
			ID:   "LOW_POINTS_" + r1 + "_DOES_NOT_APPLY",
			Band: low,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.supportGroupOnly(predicate.IsNotTrue),
				f.firstRegulation(predicate.IsFalse),
			),
			Award:                  NoAward,
			DisplayPointsSatisfied: true,
			Validation: fieldList(
				f.secondRegulation(predicate.IsUnspecified),
				f.schedule(predicate.ListUnspecified),
			),
		},
		{
			ID:   lowNonSupportGroup + "_UNSPECIFIED_NON_SUPPORT_GROUP_ONLY",
			Band: low,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.supportGroupOnly(predicate.IsNotTrue),
				f.firstRegulation(predicate.IsTrue),
				f.secondRegulation(predicate.IsUnspecified),
			),
			Award:                  HigherRate,
			DisplayPointsSatisfied: true,
			Validation:             fieldList(f.schedule(predicate.ListNotEmpty)),
		},
		{
			ID:   lowNonSupportGroup + "_DOES_NOT_APPLY_NON_SUPPORT_GROUP_ONLY",
			Band: low,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.supportGroupOnly(predicate.IsNotTrue),
				f.firstRegulation(predicate.IsTrue),
				f.secondRegulation(predicate.IsFalse),
			),
			Award:                  LowerRate,
			DisplayPointsSatisfied: true,
			Validation:             fieldList(f.schedule(predicate.ListEmpty)),
		},
		{
			ID:   lowNonSupportGroup + "_DOES_APPLY_NON_SUPPORT_GROUP_ONLY",
			Band: low,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.supportGroupOnly(predicate.IsNotTrue),
				f.firstRegulation(predicate.IsTrue),
				f.secondRegulation(predicate.IsTrue),
			),
			Award:                  HigherRate,
			DisplayPointsSatisfied: true,
			Validation:             fieldList(f.schedule(predicate.ListEmpty)),
		},
		{
			ID:   lowSupportGroup + "_UNSPECIFIED_SUPPORT_GROUP_ONLY",
			Band: low,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.supportGroupOnly(predicate.IsTrue),
				f.secondRegulation(predicate.IsUnspecified),
			),
			Award: HigherRate,
			Validation: fieldList(
				f.schedule(predicate.ListNotEmpty),
				f.firstRegulation(predicate.IsUnspecified),
			),
		},
		{
			ID:   lowSupportGroup + "_DOES_NOT_APPLY_SUPPORT_GROUP_ONLY",
			Band: low,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.supportGroupOnly(predicate.IsTrue),
				f.secondRegulation(predicate.IsFalse),
			),
			Award: LowerRate,
			Validation: fieldList(
				f.schedule(predicate.ListEmpty),
				f.firstRegulation(predicate.IsUnspecified),
			),
		},
		{
			ID:   lowSupportGroup + "_DOES_APPLY_SUPPORT_GROUP_ONLY",
			Band: low,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.supportGroupOnly(predicate.IsTrue),
				f.secondRegulation(predicate.IsTrue),
			),
			Award: HigherRate,
			Validation: fieldList(
				f.schedule(predicate.ListEmpty),
				f.firstRegulation(predicate.IsUnspecified),
			),
		},
		{
			ID:   "HIGH_POINTS_" + r2 + "_UNSPECIFIED",
			Band: high,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.secondRegulation(predicate.IsUnspecified),
			),
			Award:                  HigherRate,
			DisplayPointsSatisfied: true,
			Validation: fieldList(
				f.firstRegulation(predicate.IsUnspecified),
				f.supportGroupOnly(predicate.IsNotTrue),
				f.schedule(predicate.ListNotEmpty),
			),
		},
		{
			ID:   "HIGH_POINTS_" + r2 + "_DOES_NOT_APPLY",
			Band: high,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.secondRegulation(predicate.IsFalse),
			),
			Award:                  LowerRate,
			DisplayPointsSatisfied: true,
			Validation: fieldList(
				f.firstRegulation(predicate.IsUnspecified),
				f.supportGroupOnly(predicate.IsNotTrue),
				f.schedule(predicate.ListEmpty),
			),
		},
		{
			ID:   "HIGH_POINTS_" + r2 + "_DOES_APPLY",
			Band: high,
			Primary: fieldList(
				f.wcaAppeal(predicate.IsTrue).Hidden(),
				f.secondRegulation(predicate.IsTrue),
			),
			Award:                  HigherRate,
			DisplayPointsSatisfied: true,
			Validation: fieldList(
				f.firstRegulation(predicate.IsUnspecified),
				f.supportGroupOnly(predicate.IsNotTrue),
				f.schedule(predicate.ListEmpty),
			),
		},
		{
			ID:         "NON_WCA_APPEAL",
			Band:       low,
			Primary:    fieldList(f.wcaAppeal(predicate.IsFalse).Hidden()),
			Validation: fieldList(f.dwpReassess(predicate.IsUnspecified)),
		},
	}
}

func fieldList(fields ...condition.Field) []condition.Field {
	return fields
}

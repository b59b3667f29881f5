// internal/decisionnotice/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"

	"tribunal-workers/internal/decisionnotice/activity"
	"tribunal-workers/internal/decisionnotice/answers"
	"tribunal-workers/internal/decisionnotice/condition"
)

var (
	// ErrCatalogDefect means no catalog entry resolves for a case. It is a
	// defect in the catalog, never a user-correctable answer.
	ErrCatalogDefect = errors.New("CATALOG_DEFECT")
	ErrNoScenario    = errors.New("no scenario applicable")
)

// ValidationOutcome describes answers inconsistent with the applicable entry.
type ValidationOutcome struct {
	ConditionID string   `json:"conditionId"`
	Satisfied   []string `json:"satisfied,omitempty"`
	Violations  []string `json:"violations"`
	Message     string   `json:"message"`
}

func newValidationOutcome(id string, satisfied, violations []string) *ValidationOutcome {
	msg := "You have " + condition.Join(satisfied)
	if len(satisfied) > 0 {
		msg += ", but have "
	}
	msg += condition.Join(violations) + ". Please review your previous selection."

	return &ValidationOutcome{
		ConditionID: id,
		Satisfied:   satisfied,
		Violations:  violations,
		Message:     msg,
	}
}

type Option func(*Catalog)

// WithExtractors overrides the support group only and schedule extractors.
// Nil fields keep their defaults.
func WithExtractors(x Extractors) Option {
	return func(cat *Catalog) {
		if x.SupportGroupOnly != nil {
			cat.extract.SupportGroupOnly = x.SupportGroupOnly
		}
		if x.ScheduleSelections != nil {
			cat.extract.ScheduleSelections = x.ScheduleSelections
		}
	}
}

// Catalog holds both ordered condition catalogs of one benefit. It is
// immutable after New and safe for concurrent use.
type Catalog struct {
	vocab    Vocabulary
	registry *activity.Registry
	extract  Extractors
	points   []*PointsEntry
	outcomes []*OutcomeEntry
}

func New(benefit answers.Benefit, opts ...Option) (*Catalog, error) {
	var vocab Vocabulary
	switch benefit {
	case answers.ESA:
		vocab = ESAVocabulary
	case answers.UC:
		vocab = UCVocabulary
	default:
		return nil, fmt.Errorf("%w: %q", activity.ErrUnknownBenefit, benefit)
	}

	registry, err := activity.For(benefit)
	if err != nil {
		return nil, err
	}

	cat := &Catalog{
		vocab:    vocab,
		registry: registry,
		extract:  DefaultExtractors(),
	}
	for _, opt := range opts {
		opt(cat)
	}

	f := fields{vocab: vocab, extract: cat.extract}
	cat.points = pointsEntries(f)
	cat.outcomes = outcomeEntries(f)
	return cat, nil
}

func (cat *Catalog) Vocabulary() Vocabulary { return cat.vocab }

func (cat *Catalog) Registry() *activity.Registry { return cat.registry }

func (cat *Catalog) PointsEntries() []*PointsEntry { return cat.points }

func (cat *Catalog) OutcomeEntries() []*OutcomeEntry { return cat.outcomes }

// ScheduleSelections reads the schedule list through the configured extractor.
func (cat *Catalog) ScheduleSelections(c *answers.Case) []string {
	return cat.extract.ScheduleSelections(c)
}

// Points totals every selected descriptor across both groupings.
func (cat *Catalog) Points(c *answers.Case) (int, error) {
	return cat.registry.TotalPoints(c)
}

// ApplicablePoints returns every points entry whose primary conditions hold,
// in declaration order.
func (cat *Catalog) ApplicablePoints(c *answers.Case) ([]*PointsEntry, error) {
	points, err := cat.Points(c)
	if err != nil {
		return nil, err
	}
	var out []*PointsEntry
	for _, e := range cat.points {
		if e.applicable(c, points) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ApplicableOutcomes returns every outcome entry whose primary conditions
// hold, in declaration order.
func (cat *Catalog) ApplicableOutcomes(c *answers.Case) ([]*OutcomeEntry, error) {
	points, err := cat.Points(c)
	if err != nil {
		return nil, err
	}
	var out []*OutcomeEntry
	for _, e := range cat.outcomes {
		if e.applicable(c, points) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ResolvePoints returns the first applicable points entry whose validation
// conditions also pass.
func (cat *Catalog) ResolvePoints(c *answers.Case) (*PointsEntry, error) {
	entries, err := cat.ApplicablePoints(c)
	if err != nil {
		return nil, err
	}
	if len(entries) > 1 {
		return nil, cat.overlapping(c, pointsIDs(entries))
	}
	for _, e := range entries {
		if e.validate(c) == nil {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: no points condition found for %s", ErrCatalogDefect, cat.describe(c))
}

// ResolveOutcome returns the first applicable allowed/refused entry whose
// validation conditions also pass.
func (cat *Catalog) ResolveOutcome(c *answers.Case) (*OutcomeEntry, error) {
	points, err := cat.Points(c)
	if err != nil {
		return nil, err
	}
	entries, err := cat.ApplicableOutcomes(c)
	if err != nil {
		return nil, err
	}
	if len(entries) > 1 {
		return nil, cat.overlapping(c, outcomeIDsOf(entries))
	}
	for _, e := range entries {
		if e.validate(c, points) == nil {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: no allowed/refused condition found for %s", ErrCatalogDefect, cat.describe(c))
}

// Scenario maps a resolved outcome entry to its narrative scenario.
func (cat *Catalog) Scenario(e *OutcomeEntry, c *answers.Case) (Scenario, error) {
	return cat.scenario(e, c)
}

// ValidatePoints checks the answers against the single applicable points
// entry. It returns nil when that entry passes validation.
func (cat *Catalog) ValidatePoints(c *answers.Case) (*ValidationOutcome, error) {
	entries, err := cat.ApplicablePoints(c)
	if err != nil {
		return nil, err
	}
	switch len(entries) {
	case 0:
		return nil, fmt.Errorf("%w: no points condition applicable for %s", ErrCatalogDefect, cat.describe(c))
	case 1:
		return entries[0].validate(c), nil
	default:
		return nil, cat.overlapping(c, pointsIDs(entries))
	}
}

// ValidateOutcome checks the answers against the single applicable
// allowed/refused entry.
func (cat *Catalog) ValidateOutcome(c *answers.Case) (*ValidationOutcome, error) {
	points, err := cat.Points(c)
	if err != nil {
		return nil, err
	}
	entries, err := cat.ApplicableOutcomes(c)
	if err != nil {
		return nil, err
	}
	switch len(entries) {
	case 0:
		return nil, fmt.Errorf("%w: no allowed/refused condition applicable for %s", ErrCatalogDefect, cat.describe(c))
	case 1:
		return entries[0].validate(c, points), nil
	default:
		return nil, cat.overlapping(c, outcomeIDsOf(entries))
	}
}

// Validate is the submit-time check: points entries first, then the
// allowed/refused entries. The first inconsistency found is returned.
func (cat *Catalog) Validate(c *answers.Case) (*ValidationOutcome, error) {
	outcome, err := cat.ValidatePoints(c)
	if err != nil || outcome != nil {
		return outcome, err
	}
	return cat.ValidateOutcome(c)
}

func (cat *Catalog) describe(c *answers.Case) string {
	return fmt.Sprintf("%s %s:%v:%s", cat.vocab.Benefit, c.WorkCapabilityRisk, cat.extract.ScheduleSelections(c), c.WorkRelatedActivityRisk)
}

func (cat *Catalog) overlapping(c *answers.Case, ids []string) error {
	return fmt.Errorf("%w: conditions %v all apply to %s", ErrCatalogDefect, ids, cat.describe(c))
}

func pointsIDs(entries []*PointsEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func outcomeIDsOf(entries []*OutcomeEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

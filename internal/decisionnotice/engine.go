// internal/decisionnotice/engine.go
package decisionnotice

import (
	"fmt"

	"tribunal-workers/internal/decisionnotice/activity"
	"tribunal-workers/internal/decisionnotice/answers"
	"tribunal-workers/internal/decisionnotice/catalog"
	"tribunal-workers/internal/decisionnotice/predicate"
)

// CaseAnswers is the snapshot the engine evaluates.
type CaseAnswers = answers.Case

type Benefit = answers.Benefit

const (
	ESA = answers.ESA
	UC  = answers.UC
)

type engineOptions struct {
	benefits   []answers.Benefit
	extractors catalog.Extractors
}

type Option func(*engineOptions)

// WithBenefits limits the engine to the given benefits. Both are enabled by
// default.
func WithBenefits(benefits ...answers.Benefit) Option {
	return func(o *engineOptions) {
		o.benefits = benefits
	}
}

// WithExtractors replaces how the support group only flag and the schedule
// selections are read from the answers.
func WithExtractors(x catalog.Extractors) Option {
	return func(o *engineOptions) {
		o.extractors = x
	}
}

// Engine evaluates decision notice answers against the catalogs of every
// enabled benefit. It holds no mutable state.
type Engine struct {
	catalogs map[answers.Benefit]*catalog.Catalog
}

func NewEngine(opts ...Option) (*Engine, error) {
	o := engineOptions{benefits: []answers.Benefit{answers.ESA, answers.UC}}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{catalogs: make(map[answers.Benefit]*catalog.Catalog, len(o.benefits))}
	for _, b := range o.benefits {
		cat, err := catalog.New(b, catalog.WithExtractors(o.extractors))
		if err != nil {
			return nil, err
		}
		e.catalogs[b] = cat
	}
	return e, nil
}

// Catalog returns the catalog of an enabled benefit.
func (e *Engine) Catalog(benefit answers.Benefit) (*catalog.Catalog, error) {
	cat, ok := e.catalogs[benefit]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBenefit, benefit)
	}
	return cat, nil
}

// Result is everything decision notice prose needs from a consistent set of
// answers.
type Result struct {
	Benefit                 answers.Benefit       `json:"benefit"`
	Generated               bool                  `json:"generated"`
	PointsConditionID       string                `json:"pointsConditionId,omitempty"`
	OutcomeConditionID      string                `json:"outcomeConditionId,omitempty"`
	PointsTotal             int                   `json:"pointsTotal"`
	Award                   catalog.Award         `json:"award,omitempty"`
	AwardRate               string                `json:"awardRate,omitempty"`
	Entitled                bool                  `json:"entitled"`
	Scenario                catalog.Scenario      `json:"scenario,omitempty"`
	Descriptors             []activity.Descriptor `json:"descriptors"`
	ScheduleDescriptors     []activity.Descriptor `json:"scheduleDescriptors"`
	ShowRegulationPage      bool                  `json:"showRegulationPage"`
	WorkCapabilityRisk      predicate.YesNo       `json:"workCapabilityRisk"`
	WorkRelatedActivityRisk predicate.YesNo       `json:"workRelatedActivityRisk"`
}

// Validate is the submit-time consistency check. It returns a
// *ValidationError for answers the adjudicator must correct, and nil when no
// notice is being generated.
func (e *Engine) Validate(c *CaseAnswers) error {
	cat, err := e.Catalog(c.Benefit)
	if err != nil {
		return err
	}
	if c.GenerateNotice != predicate.Yes {
		return nil
	}

	outcome, err := cat.Validate(c)
	if err != nil {
		return err
	}
	if outcome != nil {
		return newValidationError(outcome)
	}
	return nil
}

// Evaluate resolves the award, scenario and descriptors for a preview. The
// answers are not modified; the first regulation answer is ignored once the
// activities score 15 points or more. Answers are validated against the
// single applicable entry before anything is resolved, so only a catalog
// with no applicable entry, or more than one, yields ErrCatalogDefect.
func (e *Engine) Evaluate(c *CaseAnswers) (*Result, error) {
	cat, err := e.Catalog(c.Benefit)
	if err != nil {
		return nil, err
	}

	total, err := cat.Points(c)
	if err != nil {
		return nil, err
	}

	working := c.Clone()
	if total >= activity.Threshold {
		working.WorkCapabilityRisk = predicate.Unset
	}

	res := &Result{
		Benefit:                 c.Benefit,
		PointsTotal:             total,
		Descriptors:             []activity.Descriptor{},
		ScheduleDescriptors:     []activity.Descriptor{},
		ShowRegulationPage:      total < activity.Threshold,
		WorkCapabilityRisk:      working.WorkCapabilityRisk,
		WorkRelatedActivityRisk: working.WorkRelatedActivityRisk,
	}
	if working.GenerateNotice != predicate.Yes {
		return res, nil
	}
	res.Generated = true

	outcome, err := cat.Validate(working)
	if err != nil {
		return nil, err
	}
	if outcome != nil {
		return nil, newValidationError(outcome)
	}

	pointsEntry, err := cat.ResolvePoints(working)
	if err != nil {
		return nil, err
	}
	outcomeEntry, err := cat.ResolveOutcome(working)
	if err != nil {
		return nil, err
	}
	scenario, err := cat.Scenario(outcomeEntry, working)
	if err != nil {
		return nil, err
	}

	res.PointsConditionID = pointsEntry.ID
	res.OutcomeConditionID = outcomeEntry.ID
	res.Scenario = scenario

	if !working.WcaAppeal {
		return res, nil
	}

	res.Award = pointsEntry.Award
	res.AwardRate = pointsEntry.Award.RateText()
	res.Entitled = pointsEntry.Award.IsEntitled()

	if res.Descriptors, err = cat.Registry().Descriptors(working); err != nil {
		return nil, err
	}
	if res.ScheduleDescriptors, err = cat.Registry().ScheduleDescriptors(cat.ScheduleSelections(working)); err != nil {
		return nil, err
	}
	return res, nil
}

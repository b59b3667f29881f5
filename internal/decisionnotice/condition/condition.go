// internal/decisionnotice/condition/condition.go
package condition

import (
	"fmt"

	"tribunal-workers/internal/decisionnotice/answers"
	"tribunal-workers/internal/decisionnotice/predicate"
)

// Field binds a predicate to one field of the case answers.
type Field interface {
	Name() string
	Satisfied(c *answers.Case) bool
	// SatisfiedMessage describes the value when it satisfies the predicate
	// and the field is configured to be displayed.
	SatisfiedMessage(c *answers.Case) (string, bool)
	// ViolationMessage describes why the value fails the predicate.
	ViolationMessage(c *answers.Case) (string, bool)
}

type YesNoExtractor func(c *answers.Case) predicate.YesNo

type ListExtractor func(c *answers.Case) []string

// YesNoField is a tri-state field condition.
type YesNoField struct {
	name      string
	predicate predicate.YesNoPredicate
	extract   YesNoExtractor
	display   bool
}

func YesNo(name string, p predicate.YesNoPredicate, extract YesNoExtractor) *YesNoField {
	return &YesNoField{name: name, predicate: p, extract: extract, display: true}
}

// Hidden returns a copy that never contributes a satisfied message.
func (f *YesNoField) Hidden() *YesNoField {
	cp := *f
	cp.display = false
	return &cp
}

func (f *YesNoField) Name() string { return f.name }

func (f *YesNoField) Satisfied(c *answers.Case) bool {
	return f.predicate.Test(f.extract(c))
}

func (f *YesNoField) SatisfiedMessage(c *answers.Case) (string, bool) {
	if !f.display {
		return "", false
	}
	v := f.extract(c)
	if !f.predicate.Test(v) {
		return "", false
	}
	switch v {
	case predicate.Yes:
		return fmt.Sprintf("specified that %s applies", f.name), true
	case predicate.No:
		return fmt.Sprintf("specified that %s does not apply", f.name), true
	}
	if f.predicate == predicate.IsUnspecified {
		return fmt.Sprintf("not provided an answer to the %s question", f.name), true
	}
	return "", false
}

func (f *YesNoField) ViolationMessage(c *answers.Case) (string, bool) {
	v := f.extract(c)
	switch f.predicate.Classify(v) {
	case predicate.Missing:
		return fmt.Sprintf("a missing answer for the %s question", f.name), true
	case predicate.Unexpected:
		return fmt.Sprintf("submitted an unexpected answer for the %s question", f.name), true
	case predicate.Contradiction:
		return fmt.Sprintf("answered %s for the %s question", v, f.name), true
	default:
		return "", false
	}
}

// ListField is a condition over an optional list of selections.
type ListField struct {
	name      string
	predicate predicate.List
	extract   ListExtractor
}

func List(name string, p predicate.List, extract ListExtractor) *ListField {
	return &ListField{name: name, predicate: p, extract: extract}
}

func (f *ListField) Name() string { return f.name }

func (f *ListField) Satisfied(c *answers.Case) bool {
	return f.predicate.Test(f.extract(c))
}

func (f *ListField) SatisfiedMessage(c *answers.Case) (string, bool) {
	if !f.Satisfied(c) {
		return "", false
	}
	switch f.predicate {
	case predicate.ListEmpty:
		return fmt.Sprintf("made no selections for the %s question", f.name), true
	case predicate.ListNotEmpty:
		return fmt.Sprintf("made selections for the %s question", f.name), true
	default:
		return fmt.Sprintf("not provided an answer to the %s question", f.name), true
	}
}

func (f *ListField) ViolationMessage(c *answers.Case) (string, bool) {
	values := f.extract(c)
	switch f.predicate.Classify(values) {
	case predicate.Missing:
		// The leading "have" is part of the published wording.
		return fmt.Sprintf("have a missing answer for the %s question", f.name), true
	case predicate.Unexpected:
		return fmt.Sprintf("submitted an unexpected answer for the %s question", f.name), true
	case predicate.Contradiction:
		if len(values) == 0 {
			return fmt.Sprintf("made no selections for the %s question", f.name), true
		}
		return fmt.Sprintf("made selections for the %s question", f.name), true
	default:
		return "", false
	}
}

const allowedOrRefusedName = "Allowed or Refused"

// OutcomeField is the allowed/refused primary condition.
type OutcomeField struct {
	predicate predicate.Outcome
}

func AllowedOrRefused(p predicate.Outcome) *OutcomeField {
	return &OutcomeField{predicate: p}
}

func (f *OutcomeField) Name() string { return allowedOrRefusedName }

func (f *OutcomeField) Satisfied(c *answers.Case) bool {
	return f.predicate.Test(c.AllowedOrRefused)
}

func (f *OutcomeField) SatisfiedMessage(c *answers.Case) (string, bool) {
	if !f.Satisfied(c) {
		return "", false
	}
	return fmt.Sprintf("specified that the appeal is %s", f.predicate), true
}

func (f *OutcomeField) ViolationMessage(c *answers.Case) (string, bool) {
	switch f.predicate.Classify(c.AllowedOrRefused) {
	case predicate.Missing:
		return fmt.Sprintf("a missing answer for the %s question", allowedOrRefusedName), true
	case predicate.Contradiction:
		return fmt.Sprintf("answered %s for the %s question", c.AllowedOrRefused, allowedOrRefusedName), true
	case predicate.Unexpected:
		return fmt.Sprintf("submitted an unexpected answer for the %s question", allowedOrRefusedName), true
	default:
		return "", false
	}
}

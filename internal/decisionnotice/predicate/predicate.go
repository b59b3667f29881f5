// internal/decisionnotice/predicate/predicate.go
package predicate

import "strings"

// Violation classifies how a value fails a predicate.
type Violation int

const (
	Satisfied Violation = iota
	// Missing means the value is unset but the predicate requires one.
	Missing
	// Contradiction means a value of the wrong state is present.
	Contradiction
	// Unexpected means a value is present where none is accepted, or the
	// value is outside the predicate's vocabulary.
	Unexpected
)

func (v Violation) String() string {
	switch v {
	case Satisfied:
		return "satisfied"
	case Missing:
		return "missing"
	case Contradiction:
		return "contradiction"
	case Unexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Outcome is an allowed/refused predicate over free text.
type Outcome string

const (
	Allowed Outcome = "allowed"
	Refused Outcome = "refused"
)

func (o Outcome) Test(value string) bool {
	return value == string(o)
}

func (o Outcome) Classify(value string) Violation {
	switch {
	case o.Test(value):
		return Satisfied
	case strings.TrimSpace(value) == "":
		return Missing
	case value == string(Allowed) || value == string(Refused):
		return Contradiction
	default:
		return Unexpected
	}
}

// List is a predicate over an optional list of selections. A nil list is
// unspecified; an empty non-nil list means nothing was selected.
type List int

const (
	ListEmpty List = iota + 1
	ListNotEmpty
	ListUnspecified
)

func (p List) Test(values []string) bool {
	switch p {
	case ListEmpty:
		return values != nil && len(values) == 0
	case ListNotEmpty:
		return len(values) > 0
	case ListUnspecified:
		return values == nil
	default:
		return false
	}
}

func (p List) Classify(values []string) Violation {
	switch {
	case p.Test(values):
		return Satisfied
	case values == nil:
		return Missing
	case p == ListUnspecified:
		return Unexpected
	default:
		return Contradiction
	}
}

func (p List) String() string {
	switch p {
	case ListEmpty:
		return "EMPTY"
	case ListNotEmpty:
		return "NOT_EMPTY"
	case ListUnspecified:
		return "UNSPECIFIED"
	default:
		return "UNKNOWN"
	}
}

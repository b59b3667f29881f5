// internal/decisionnotice/catalog/award.go
package catalog

import (
	"strings"
	"unicode"
)

// Award is the benefit rate attached to a resolved points condition.
type Award string

const (
	NoAward    Award = "noAward"
	LowerRate  Award = "lowerRate"
	HigherRate Award = "higherRate"
)

// RateText renders the award for decision notice prose, e.g. "lower rate".
func (a Award) RateText() string {
	if a == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range string(a) {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func (a Award) IsEntitled() bool {
	return a == LowerRate || a == HigherRate
}

// Scenario selects the narrative paragraphs of a decision notice.
type Scenario string

const (
	Scenario1  Scenario = "SCENARIO_1"
	Scenario2  Scenario = "SCENARIO_2"
	Scenario3  Scenario = "SCENARIO_3"
	Scenario4  Scenario = "SCENARIO_4"
	Scenario5  Scenario = "SCENARIO_5"
	Scenario6  Scenario = "SCENARIO_6"
	Scenario7  Scenario = "SCENARIO_7"
	Scenario8  Scenario = "SCENARIO_8"
	Scenario9  Scenario = "SCENARIO_9"
	Scenario10 Scenario = "SCENARIO_10"
	Scenario12 Scenario = "SCENARIO_12"
)

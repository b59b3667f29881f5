// internal/decisionnotice/condition/join.go
package condition

import (
	"strings"

	"tribunal-workers/internal/decisionnotice/answers"
)

// Join renders phrases as "a", "a and b" or "a, b and c".
func Join(phrases []string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	default:
		last := len(phrases) - 1
		return strings.Join(phrases[:last], ", ") + " and " + phrases[last]
	}
}

// SatisfiedMessages collects the satisfied messages of fields, in order.
func SatisfiedMessages(c *answers.Case, fields ...Field) []string {
	var out []string
	for _, f := range fields {
		if msg, ok := f.SatisfiedMessage(c); ok {
			out = append(out, msg)
		}
	}
	return out
}

// ViolationMessages collects the violation messages of fields, in order.
func ViolationMessages(c *answers.Case, fields ...Field) []string {
	var out []string
	for _, f := range fields {
		if msg, ok := f.ViolationMessage(c); ok {
			out = append(out, msg)
		}
	}
	return out
}

// AllSatisfied reports whether every field holds.
func AllSatisfied(c *answers.Case, fields ...Field) bool {
	for _, f := range fields {
		if !f.Satisfied(c) {
			return false
		}
	}
	return true
}

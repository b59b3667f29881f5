// internal/decisionnotice/activity/registry.go
package activity

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"tribunal-workers/internal/decisionnotice/answers"
)

var (
	ErrUnknownKey     = errors.New("UNKNOWN_ANSWER_KEY")
	ErrUnknownBenefit = errors.New("UNKNOWN_BENEFIT")
)

// Grouping splits the limited capability for work activities.
type Grouping int

const (
	Physical Grouping = iota + 1
	Mental
)

func (g Grouping) String() string {
	switch g {
	case Physical:
		return "physical"
	case Mental:
		return "mental"
	default:
		return "unknown"
	}
}

type Answer struct {
	Key    string
	Label  string
	Letter string
	Points int
}

type Question struct {
	Key      string
	Label    string
	Number   int
	Grouping Grouping
	Answers  []Answer
}

// ScheduleActivity is a limited capability for work-related activity entry.
type ScheduleActivity struct {
	Key    string
	Label  string
	Number int
}

// Descriptor is a resolved answer, ready for decision notice prose.
type Descriptor struct {
	ActivityQuestionNumber int    `json:"activityQuestionNumber"`
	ActivityQuestionValue  string `json:"activityQuestionValue"`
	ActivityAnswerValue    string `json:"activityAnswerValue,omitempty"`
	ActivityAnswerLetter   string `json:"activityAnswerLetter,omitempty"`
	ActivityAnswerPoints   int    `json:"activityAnswerPoints"`
}

// Registry is the immutable table of questions and answers for one benefit.
type Registry struct {
	benefit   answers.Benefit
	questions map[string]Question
	answers   map[string]answerRef
	schedule  map[string]ScheduleActivity
}

type answerRef struct {
	question string
	answer   Answer
}

func newRegistry(benefit answers.Benefit, questions []Question, schedule []ScheduleActivity) *Registry {
	r := &Registry{
		benefit:   benefit,
		questions: make(map[string]Question, len(questions)),
		answers:   make(map[string]answerRef),
		schedule:  make(map[string]ScheduleActivity, len(schedule)),
	}
	for _, q := range questions {
		r.questions[q.Key] = q
		for _, a := range q.Answers {
			r.answers[a.Key] = answerRef{question: q.Key, answer: a}
		}
	}
	for _, s := range schedule {
		r.schedule[s.Key] = s
	}
	return r
}

var registries = map[answers.Benefit]*Registry{
	answers.ESA: newRegistry(answers.ESA, workCapabilityQuestions(), scheduleActivities("schedule3")),
	answers.UC:  newRegistry(answers.UC, workCapabilityQuestions(), scheduleActivities("schedule7")),
}

// For returns the registry of the given benefit.
func For(benefit answers.Benefit) (*Registry, error) {
	r, ok := registries[benefit]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBenefit, benefit)
	}
	return r, nil
}

func (r *Registry) Benefit() answers.Benefit { return r.benefit }

func (r *Registry) Question(key string) (Question, error) {
	q, ok := r.questions[key]
	if !ok {
		return Question{}, fmt.Errorf("%w: question %q for %s", ErrUnknownKey, key, r.benefit)
	}
	return q, nil
}

// Questions returns every question in activity number order.
func (r *Registry) Questions() []Question {
	out := make([]Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (r *Registry) ScheduleActivities() []ScheduleActivity {
	out := make([]ScheduleActivity, 0, len(r.schedule))
	for _, s := range r.schedule {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// selected resolves the answer chosen for each question key in the grouping.
// A question with no answer yet contributes nothing.
func (r *Registry) selected(c *answers.Case, g Grouping) ([]Descriptor, error) {
	var keys []string
	switch g {
	case Physical:
		keys = c.PhysicalDisabilities
	case Mental:
		keys = c.MentalAssessment
	default:
		return nil, fmt.Errorf("%w: grouping %d", ErrUnknownKey, g)
	}

	var out []Descriptor
	for _, key := range keys {
		q, err := r.Question(key)
		if err != nil {
			return nil, err
		}
		if q.Grouping != g {
			return nil, fmt.Errorf("%w: question %q is not a %s activity", ErrUnknownKey, key, g)
		}

		answerKey := strings.TrimSpace(c.ActivityAnswers[key])
		if answerKey == "" {
			continue
		}
		ref, ok := r.answers[answerKey]
		if !ok || ref.question != key {
			return nil, fmt.Errorf("%w: answer %q for question %q", ErrUnknownKey, answerKey, key)
		}
		out = append(out, Descriptor{
			ActivityQuestionNumber: q.Number,
			ActivityQuestionValue:  fmt.Sprintf("%d. %s", q.Number, q.Label),
			ActivityAnswerValue:    ref.answer.Label,
			ActivityAnswerLetter:   ref.answer.Letter,
			ActivityAnswerPoints:   ref.answer.Points,
		})
	}
	return out, nil
}

// TotalPoints sums the points of every selected answer in the requested
// groupings, or in both when none are given.
func (r *Registry) TotalPoints(c *answers.Case, groupings ...Grouping) (int, error) {
	if len(groupings) == 0 {
		groupings = []Grouping{Physical, Mental}
	}
	total := 0
	for _, g := range groupings {
		descriptors, err := r.selected(c, g)
		if err != nil {
			return 0, err
		}
		for _, d := range descriptors {
			total += d.ActivityAnswerPoints
		}
	}
	return total, nil
}

// Descriptors returns the selected descriptors of both groupings ordered by
// activity number then letter. The list is empty when they score no points.
func (r *Registry) Descriptors(c *answers.Case) ([]Descriptor, error) {
	physical, err := r.selected(c, Physical)
	if err != nil {
		return nil, err
	}
	mental, err := r.selected(c, Mental)
	if err != nil {
		return nil, err
	}

	all := append(physical, mental...)
	total := 0
	for _, d := range all {
		total += d.ActivityAnswerPoints
	}
	if total == 0 {
		return []Descriptor{}, nil
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].ActivityQuestionNumber != all[j].ActivityQuestionNumber {
			return all[i].ActivityQuestionNumber < all[j].ActivityQuestionNumber
		}
		return all[i].ActivityAnswerLetter < all[j].ActivityAnswerLetter
	})
	return all, nil
}

// ScheduleDescriptors resolves work-related activity selections.
func (r *Registry) ScheduleDescriptors(keys []string) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(keys))
	for _, key := range keys {
		s, ok := r.schedule[key]
		if !ok {
			return nil, fmt.Errorf("%w: schedule activity %q for %s", ErrUnknownKey, key, r.benefit)
		}
		out = append(out, Descriptor{
			ActivityQuestionNumber: s.Number,
			ActivityQuestionValue:  fmt.Sprintf("%d. %s", s.Number, s.Label),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ActivityQuestionNumber < out[j].ActivityQuestionNumber
	})
	return out, nil
}

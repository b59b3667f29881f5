// internal/decisionnotice/activity/band.go
package activity

// Threshold is the points total at which limited capability for work is met.
const Threshold = 15

// Band is one of the non-overlapping ranges of points totals.
type Band int

const (
	LessThanFifteen Band = iota + 1
	FifteenOrMore
)

func BandFor(points int) Band {
	if points >= Threshold {
		return FifteenOrMore
	}
	return LessThanFifteen
}

func (b Band) Holds(points int) bool {
	switch b {
	case LessThanFifteen:
		return points < Threshold
	case FifteenOrMore:
		return points >= Threshold
	default:
		return false
	}
}

func (b Band) SatisfiedMessage() string {
	if b == FifteenOrMore {
		return "awarded 15 points or more"
	}
	return "awarded less than 15 points"
}

func (b Band) ViolationMessage() string {
	if b == FifteenOrMore {
		return "not awarded 15 points or more"
	}
	return "not awarded less than 15 points"
}

func (b Band) String() string {
	switch b {
	case LessThanFifteen:
		return "POINTS_LESS_THAN_FIFTEEN"
	case FifteenOrMore:
		return "POINTS_GREATER_OR_EQUAL_TO_FIFTEEN"
	default:
		return "UNKNOWN"
	}
}

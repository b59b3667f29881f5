// internal/decisionnotice/predicate/yesno.go
package predicate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// YesNo is a tri-state answer. The zero value is Unset.
type YesNo int

const (
	Unset YesNo = iota
	Yes
	No
)

func FromBool(b bool) YesNo {
	if b {
		return Yes
	}
	return No
}

func (v YesNo) IsSet() bool {
	return v == Yes || v == No
}

// Bool returns nil when the answer is unset.
func (v YesNo) Bool() *bool {
	if !v.IsSet() {
		return nil
	}
	b := v == Yes
	return &b
}

func (v YesNo) String() string {
	switch v {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return ""
	}
}

func (v YesNo) MarshalJSON() ([]byte, error) {
	if !v.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(v.String())
}

func (v *YesNo) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Unset
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case bool:
		*v = FromBool(val)
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "yes":
			*v = Yes
		case "no":
			*v = No
		case "":
			*v = Unset
		default:
			return fmt.Errorf("invalid yes/no value %q", val)
		}
	default:
		return fmt.Errorf("invalid yes/no value %s", string(data))
	}
	return nil
}

// YesNoPredicate is the set of YesNo states it accepts.
type YesNoPredicate uint8

const (
	IsTrue        YesNoPredicate = 1 << iota // accepts Yes
	IsFalse                                  // accepts No
	IsUnspecified                            // accepts Unset

	IsSpecified = IsTrue | IsFalse
	IsNotTrue   = IsFalse | IsUnspecified
)

func (p YesNoPredicate) Or(other YesNoPredicate) YesNoPredicate {
	return p | other
}

func (p YesNoPredicate) Test(v YesNo) bool {
	switch v {
	case Yes:
		return p&IsTrue != 0
	case No:
		return p&IsFalse != 0
	default:
		return p&IsUnspecified != 0
	}
}

// Classify reports why v is rejected, or Satisfied when it is not.
func (p YesNoPredicate) Classify(v YesNo) Violation {
	switch {
	case p.Test(v):
		return Satisfied
	case !v.IsSet():
		return Missing
	case p == IsUnspecified:
		return Unexpected
	default:
		return Contradiction
	}
}

func (p YesNoPredicate) String() string {
	switch p {
	case IsTrue:
		return "TRUE"
	case IsFalse:
		return "FALSE"
	case IsUnspecified:
		return "UNSPECIFIED"
	case IsSpecified:
		return "SPECIFIED"
	case IsNotTrue:
		return "NOT_TRUE"
	case IsTrue | IsUnspecified:
		return "NOT_FALSE"
	case IsTrue | IsFalse | IsUnspecified:
		return "ANY"
	default:
		return "NONE"
	}
}

package deepsim

import (
	"encoding/json"
)

// Kind classifies a position visited during comparison
type Kind string

const (
	// kindMatch marks a pair of equal scalars. matches count toward
	// similarity & are never reported as a Difference
	kindMatch = Kind("match")
	// MissingInLeft is a position that only exists in the right document
	MissingInLeft = Kind("missing_in_left")
	// MissingInRight is a position that only exists in the left document
	MissingInRight = Kind("missing_in_right")
	// TypeMismatch is a position where the documents hold different structural
	// kinds, eg: a mapping in one & a scalar in the other
	TypeMismatch = Kind("type_mismatch")
	// ValueMismatch is a position where both documents hold unequal scalars
	ValueMismatch = Kind("value_mismatch")
)

// Symbol returns the single-character marker used in text reports
func (k Kind) Symbol() string {
	switch k {
	case MissingInLeft:
		return "+"
	case MissingInRight:
		return "-"
	case TypeMismatch:
		return "!"
	case ValueMismatch:
		return "~"
	default:
		return " "
	}
}

// Difference describes a single location where two documents disagree
type Difference struct {
	// the type of disagreement
	Kind Kind
	// Path locates the difference from the root of both documents
	Path Path
	// value in the left document, unset for MissingInLeft
	Left interface{}
	// value in the right document, unset for MissingInRight
	Right interface{}
}

// MarshalJSON implements a custom JSON Marshaller. left & right are omitted
// when the position doesn't exist on that side, and kept (possibly as null)
// otherwise
func (d *Difference) MarshalJSON() ([]byte, error) {
	v := map[string]interface{}{
		"kind": d.Kind,
		"path": d.Path,
	}
	if d.Kind != MissingInLeft {
		v["left"] = d.Left
	}
	if d.Kind != MissingInRight {
		v["right"] = d.Right
	}
	return json.Marshal(v)
}

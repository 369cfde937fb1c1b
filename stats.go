package deepsim

// Stats holds the leaf counts a comparison's similarity is computed from
type Stats struct {
	Leaves  int `json:"leaves"`  // count of all terminal positions visited
	Matches int `json:"matches"` // number of equal scalar pairs

	MissingInLeft   int `json:"missingInLeft,omitempty"`   // positions only in the right document
	MissingInRight  int `json:"missingInRight,omitempty"`  // positions only in the left document
	TypeMismatches  int `json:"typeMismatches,omitempty"`  // positions with differing structure
	ValueMismatches int `json:"valueMismatches,omitempty"` // positions with unequal scalars
}

// Differences returns the count of non-matching leaves
func (s Stats) Differences() int {
	return s.Leaves - s.Matches
}

// Similarity returns the percentage of leaves that matched, from 0.0 to
// 100.0. Comparisons with no leaves at all (eg: two empty objects) are
// 100.0 similar
func (s Stats) Similarity() float64 {
	if s.Leaves == 0 {
		return 100
	}
	return 100 * float64(s.Matches) / float64(s.Leaves)
}

func (s *Stats) add(k Kind) {
	s.Leaves++
	switch k {
	case kindMatch:
		s.Matches++
	case MissingInLeft:
		s.MissingInLeft++
	case MissingInRight:
		s.MissingInRight++
	case TypeMismatch:
		s.TypeMismatches++
	case ValueMismatch:
		s.ValueMismatches++
	}
}

package forte

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation distinguishes a set from its non-identical mirror inversion.
// Inversionally symmetric classes carry OrientationNone.
type Orientation uint8

const (
	OrientationNone   Orientation = iota
	OrientationPrime              // matches the catalog's primary form ("A")
	OrientationMirror             // matches the mirror of the primary form ("B")
)

func (o Orientation) String() string {
	switch o {
	case OrientationPrime:
		return "A"
	case OrientationMirror:
		return "B"
	default:
		return ""
	}
}

// MarshalJSON renders the orientation as its conventional letter.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(o.String())), nil
}

// A Label identifies a set class: cardinality, index within that
// cardinality, and for asymmetric classes the orientation of the set that
// produced it. Label identity never depends on transposition level.
type Label struct {
	Cardinality int         `json:"cardinality"`
	Index       int         `json:"index"`
	Orientation Orientation `json:"orientation,omitempty"`
}

// String renders the conventional form, e.g. "3-5" or "4-15A".
func (l Label) String() string {
	return fmt.Sprintf("%d-%d%s", l.Cardinality, l.Index, l.Orientation)
}

// Class strips the orientation marker, for counting that conflates a set
// with its mirror.
func (l Label) Class() Label {
	l.Orientation = OrientationNone
	return l
}

// ParseLabel parses a label string such as "3-5", "4-15A" or "4-15b".
func ParseLabel(s string) (Label, error) {
	body := s
	var orient Orientation
	switch {
	case strings.HasSuffix(body, "A"), strings.HasSuffix(body, "a"):
		orient = OrientationPrime
		body = body[:len(body)-1]
	case strings.HasSuffix(body, "B"), strings.HasSuffix(body, "b"):
		orient = OrientationMirror
		body = body[:len(body)-1]
	}
	card, idx, ok := strings.Cut(body, "-")
	if !ok {
		return Label{}, fmt.Errorf("malformed class label %q", s)
	}
	c, err := strconv.Atoi(card)
	if err != nil {
		return Label{}, fmt.Errorf("malformed class label %q", s)
	}
	i, err := strconv.Atoi(idx)
	if err != nil {
		return Label{}, fmt.Errorf("malformed class label %q", s)
	}
	if c < 0 || c > 12 || i < 1 {
		return Label{}, fmt.Errorf("class label %q out of range", s)
	}
	return Label{Cardinality: c, Index: i, Orientation: orient}, nil
}

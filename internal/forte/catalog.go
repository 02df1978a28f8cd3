// Package forte classifies pitch-class sets against the complete catalog of
// set classes for cardinalities 0 through 12, and enumerates the distinct
// classes embedded in a set's sub-collections.
package forte

import (
	"errors"
	"fmt"

	"github.com/tonerow/forte/internal/pcset"
)

// ErrEmptySet is returned when classification is requested for a set with no
// members; cardinality 0 has a catalog entry but no musical content to
// orient or compare.
var ErrEmptySet = errors.New("cannot classify an empty pitch-class set")

type classEntry struct {
	card   int
	index  int
	prime  []int
	mirror []int
}

// classCounts is the number of set classes at each cardinality. NewCatalog
// refuses to start with a table that disagrees.
var classCounts = [13]int{1, 1, 6, 12, 29, 38, 50, 38, 29, 12, 6, 1, 1}

// Catalog maps zero-anchored normal orders to class labels and back. Build
// one with NewCatalog at startup and pass it explicitly to everything that
// classifies; it is immutable afterwards and safe for concurrent readers.
type Catalog struct {
	byForm map[uint64]Label
	forms  [13][]classEntry
}

// NewCatalog builds the lookup structures from the embedded class table,
// verifying the build-time completeness invariant. It panics if the
// generated table is malformed: a short or duplicated table is a programming
// error, not a runtime condition.
func NewCatalog() *Catalog {
	c := &Catalog{byForm: make(map[uint64]Label, 352)}
	for _, e := range classTable {
		if e.card < 0 || e.card > 12 || e.index != len(c.forms[e.card])+1 {
			panic(fmt.Sprintf("forte: class table entry %d-%d out of sequence", e.card, e.index))
		}
		c.forms[e.card] = append(c.forms[e.card], e)

		lab := Label{Cardinality: e.card, Index: e.index}
		if e.mirror == nil {
			c.register(e.prime, lab)
			continue
		}
		lab.Orientation = OrientationPrime
		c.register(e.prime, lab)
		lab.Orientation = OrientationMirror
		c.register(e.mirror, lab)
	}
	for card, want := range classCounts {
		if len(c.forms[card]) != want {
			panic(fmt.Sprintf("forte: class table has %d classes at cardinality %d, want %d",
				len(c.forms[card]), card, want))
		}
	}
	return c
}

func (c *Catalog) register(form []int, lab Label) {
	key := encodeForm(form)
	if prev, dup := c.byForm[key]; dup {
		panic(fmt.Sprintf("forte: classes %s and %s share a form", prev, lab))
	}
	c.byForm[key] = lab
}

// Classify returns the class label for the set, including the orientation
// marker for asymmetric classes. The set's zero-anchored normal order is
// always either its class's primary form or that form's mirror, so a single
// exact-match lookup resolves both the class and the orientation. A missing
// entry means the embedded table is incomplete, which NewCatalog's checks
// make unreachable; Classify panics rather than propagating an impossible
// error.
func (c *Catalog) Classify(s pcset.Set) (Label, error) {
	if s.Cardinality() == 0 {
		return Label{}, ErrEmptySet
	}
	form := pcset.TransposeToZero(s.NormalOrder())
	lab, ok := c.byForm[encodeForm(form)]
	if !ok {
		panic(fmt.Sprintf("forte: no catalog entry for form %v", form))
	}
	return lab, nil
}

// ClassifyClass is the orientation-insensitive lookup: the class label with
// no marker, conflating a set with its mirror.
func (c *Catalog) ClassifyClass(s pcset.Set) (Label, error) {
	lab, err := c.Classify(s)
	return lab.Class(), err
}

// PrimeForm returns the canonical prime form for a label, ignoring its
// orientation; ok is false when no such class exists.
func (c *Catalog) PrimeForm(lab Label) ([]int, bool) {
	if lab.Cardinality < 0 || lab.Cardinality > 12 {
		return nil, false
	}
	entries := c.forms[lab.Cardinality]
	if lab.Index < 1 || lab.Index > len(entries) {
		return nil, false
	}
	e := entries[lab.Index-1]
	form := e.prime
	if lab.Orientation == OrientationMirror && e.mirror != nil {
		form = e.mirror
	}
	out := make([]int, len(form))
	copy(out, form)
	return out, true
}

// Classes lists every class at the given cardinality in index order.
// Asymmetric classes report OrientationPrime so callers can tell the two
// kinds apart; symmetric classes carry no marker.
func (c *Catalog) Classes(cardinality int) []Label {
	if cardinality < 0 || cardinality > 12 {
		return nil
	}
	out := make([]Label, 0, len(c.forms[cardinality]))
	for _, e := range c.forms[cardinality] {
		lab := Label{Cardinality: e.card, Index: e.index}
		if e.mirror != nil {
			lab.Orientation = OrientationPrime
		}
		out = append(out, lab)
	}
	return out
}

// encodeForm packs an ordered pitch-class sequence into a map key: four bits
// per element under a length sentinel. Twelve elements fit in 52 bits.
func encodeForm(seq []int) uint64 {
	key := uint64(1)
	for _, pc := range seq {
		key = key<<4 | uint64(pc)
	}
	return key<<4 | uint64(len(seq))
}

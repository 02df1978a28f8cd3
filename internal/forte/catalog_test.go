package forte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonerow/forte/internal/pcset"
)

func TestNewCatalogComplete(t *testing.T) {
	c := NewCatalog()
	total := 0
	for card, want := range classCounts {
		got := len(c.Classes(card))
		assert.Equal(t, want, got, "cardinality %d", card)
		total += got
	}
	assert.Equal(t, 224, total)
}

func TestClassifyKnownSets(t *testing.T) {
	c := NewCatalog()
	cases := []struct {
		name string
		pcs  []int
		want string
	}{
		{"0 1 5", []int{0, 1, 5}, "3-4A"},
		{"0 1 6", []int{0, 1, 6}, "3-5A"},
		{"minor triad", []int{0, 3, 7}, "3-11A"},
		{"major triad", []int{0, 4, 7}, "3-11B"},
		{"transposed major triad", []int{2, 6, 9}, "3-11B"},
		{"diminished seventh", []int{0, 3, 6, 9}, "4-29"},
		{"whole tone", []int{0, 2, 4, 6, 8, 10}, "6-50"},
		{"diatonic scale", []int{0, 2, 4, 5, 7, 9, 11}, "7-34"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lab, err := c.Classify(pcset.New(tc.pcs...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, lab.String())
		})
	}
}

func TestClassifyDistinguishesTrichords(t *testing.T) {
	c := NewCatalog()
	a, err := c.ClassifyClass(pcset.New(0, 1, 5))
	require.NoError(t, err)
	b, err := c.ClassifyClass(pcset.New(0, 1, 6))
	require.NoError(t, err)
	assert.Equal(t, "3-4", a.String())
	assert.Equal(t, "3-5", b.String())
	assert.NotEqual(t, a, b)
}

func TestClassifyEmptySet(t *testing.T) {
	c := NewCatalog()
	_, err := c.Classify(pcset.Set{})
	assert.ErrorIs(t, err, ErrEmptySet)
}

func TestSymmetricClassesCarryNoMarker(t *testing.T) {
	c := NewCatalog()
	for _, pcs := range [][]int{
		{0, 2, 4, 6, 8, 10}, // whole tone
		{0, 3, 6, 9},        // diminished seventh
		{0, 1, 2},           // chromatic trichord
	} {
		lab, err := c.Classify(pcset.New(pcs...))
		require.NoError(t, err)
		assert.Equal(t, OrientationNone, lab.Orientation, "set %v", pcs)
	}
}

// Every set must classify to the same class as its inversion, orientation
// aside, and the two orientations of an asymmetric class must both resolve.
func TestClassifyInversionSameClass(t *testing.T) {
	c := NewCatalog()
	for mask := 1; mask < 1<<12; mask++ {
		s := setFromMask(mask)
		lab, err := c.Classify(s)
		require.NoError(t, err)
		inv, err := c.Classify(s.Invert())
		require.NoError(t, err)
		if lab.Class() != inv.Class() {
			t.Fatalf("mask %03x: %s and inversion %s are different classes", mask, lab, inv)
		}
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	c := NewCatalog()
	for card := 1; card <= 12; card++ {
		for _, lab := range c.Classes(card) {
			form, ok := c.PrimeForm(lab)
			require.True(t, ok, "no prime form for %s", lab)
			got, err := c.Classify(pcset.New(form...))
			require.NoError(t, err)
			assert.Equal(t, lab, got, "prime form of %s", lab)

			if lab.Orientation == OrientationNone {
				continue
			}
			mirror := lab
			mirror.Orientation = OrientationMirror
			form, ok = c.PrimeForm(mirror)
			require.True(t, ok)
			got, err = c.Classify(pcset.New(form...))
			require.NoError(t, err)
			assert.Equal(t, mirror, got, "mirror form of %s", lab)
		}
	}
}

func TestPrimeFormUnknownLabel(t *testing.T) {
	c := NewCatalog()
	_, ok := c.PrimeForm(Label{Cardinality: 3, Index: 13})
	assert.False(t, ok)
	_, ok = c.PrimeForm(Label{Cardinality: 13, Index: 1})
	assert.False(t, ok)
}

func TestParseLabel(t *testing.T) {
	lab, err := ParseLabel("4-15A")
	require.NoError(t, err)
	assert.Equal(t, Label{Cardinality: 4, Index: 15, Orientation: OrientationPrime}, lab)

	lab, err = ParseLabel("3-5")
	require.NoError(t, err)
	assert.Equal(t, Label{Cardinality: 3, Index: 5}, lab)

	lab, err = ParseLabel("6-20b")
	require.NoError(t, err)
	assert.Equal(t, OrientationMirror, lab.Orientation)

	for _, bad := range []string{"", "35", "x-1", "3-x", "13-1", "3-0"} {
		_, err := ParseLabel(bad)
		assert.Error(t, err, "ParseLabel(%q)", bad)
	}
}

func setFromMask(mask int) pcset.Set {
	var pcs []int
	for pc := 0; pc < 12; pc++ {
		if mask&(1<<pc) != 0 {
			pcs = append(pcs, pc)
		}
	}
	return pcset.New(pcs...)
}

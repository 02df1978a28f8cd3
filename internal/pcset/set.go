// Package pcset implements canonical forms for unordered pitch-class
// collections: normal order, prime form, and the derived operations
// (inversion, chromatic complement, transposition interval).
package pcset

import "math/bits"

// A Set is an unordered collection of distinct pitch classes, integers
// modulo 12. Sets are small value types; the zero value is the empty set
// and Sets compare equal with == when they hold the same pitch classes.
type Set struct {
	mask uint16
}

// New builds a Set from raw pitch-class values. Out-of-range integers are
// reduced modulo 12 rather than rejected, and duplicates collapse, so the
// order and multiplicity of the input never affect identity.
func New(pcs ...int) Set {
	var s Set
	for _, pc := range pcs {
		s.mask |= 1 << uint(Mod12(pc))
	}
	return s
}

// Mod12 reduces an integer to its non-negative residue modulo 12.
// Go's % operator keeps the sign of the dividend, so -3 % 12 is -3.
func Mod12(v int) int {
	v %= 12
	if v < 0 {
		v += 12
	}
	return v
}

// Cardinality returns the number of distinct pitch classes in the set.
func (s Set) Cardinality() int {
	return bits.OnesCount16(s.mask)
}

// Contains reports whether the pitch class (reduced mod 12) is a member.
func (s Set) Contains(pc int) bool {
	return s.mask&(1<<uint(Mod12(pc))) != 0
}

// Members returns the pitch classes in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Cardinality())
	for pc := 0; pc < 12; pc++ {
		if s.mask&(1<<uint(pc)) != 0 {
			out = append(out, pc)
		}
	}
	return out
}

// Transpose returns the set shifted by the given interval (mod 12).
func (s Set) Transpose(interval int) Set {
	t := New()
	for pc := 0; pc < 12; pc++ {
		if s.mask&(1<<uint(pc)) != 0 {
			t.mask |= 1 << uint(Mod12(pc+interval))
		}
	}
	return t
}

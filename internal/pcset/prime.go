package pcset

// PrimeForm returns the transposition/inversion-invariant canonical form of
// the set: the zero-anchored normal order of the set or of its inversion,
// whichever is lexicographically smaller. Two sets share a prime form exactly
// when one can be transposed and/or inverted onto the other. A tie means the
// set is inversionally symmetric and either sequence serves.
func (s Set) PrimeForm() []int {
	a := TransposeToZero(s.NormalOrder())
	b := TransposeToZero(s.Invert().NormalOrder())
	if lexLess(b, a) {
		return b
	}
	return a
}

func lexLess(a, b []int) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

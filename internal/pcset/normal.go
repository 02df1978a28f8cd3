package pcset

// NormalOrder returns the canonical rotation of the set: the rotation of the
// ascending member list whose span (last minus first, mod 12) is minimal.
// Ties fall to the rotation with the smallest interval from the first element
// to the k-th, checked for k = n-1 down to 1; a set symmetric enough to tie
// on every interval (whole-tone, diminished-seventh) falls to the rotation
// with the numerically smallest first element. The empty set yields an empty
// sequence.
func (s Set) NormalOrder() []int {
	n := s.Cardinality()
	if n == 0 {
		return []int{}
	}
	sorted := s.Members()

	rotations := make([][]int, n)
	for i := 0; i < n; i++ {
		rot := make([]int, n)
		copy(rot, sorted[i:])
		copy(rot[n-i:], sorted[:i])
		rotations[i] = rot
	}

	candidates := rotations
	for k := n - 1; k >= 1 && len(candidates) > 1; k-- {
		best := 12
		for _, rot := range candidates {
			if iv := Mod12(rot[k] - rot[0]); iv < best {
				best = iv
			}
		}
		kept := candidates[:0]
		for _, rot := range candidates {
			if Mod12(rot[k]-rot[0]) == best {
				kept = append(kept, rot)
			}
		}
		candidates = kept
	}

	winner := candidates[0]
	for _, rot := range candidates[1:] {
		if rot[0] < winner[0] {
			winner = rot
		}
	}
	return winner
}

// TransposeToZero re-anchors an ordered pitch-class sequence so it starts at
// 0, subtracting the first element from every element mod 12. Used for
// comparison between sequences, not for set identity.
func TransposeToZero(seq []int) []int {
	out := make([]int, len(seq))
	if len(seq) == 0 {
		return out
	}
	root := seq[0]
	for i, pc := range seq {
		out[i] = Mod12(pc - root)
	}
	return out
}

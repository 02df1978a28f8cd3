package pcset

// Invert reflects the set around the first element of its own normal order:
// with root r, every member pc maps to (r - pc) mod 12. The result is a Set,
// so callers re-canonicalize by taking its NormalOrder.
func (s Set) Invert() Set {
	no := s.NormalOrder()
	if len(no) == 0 {
		return Set{}
	}
	root := no[0]
	inv := New()
	for _, pc := range no {
		inv.mask |= 1 << uint(Mod12(root-pc))
	}
	return inv
}

// Complement returns the chromatic complement: the 12 pitch classes not
// present in the set. The complement of the full chromatic set (and of the
// empty set's complement) is empty.
func (s Set) Complement() Set {
	return Set{mask: ^s.mask & 0x0fff}
}

// TranspositionInterval returns the difference between the first elements of
// the two sets' normal orders (b minus a), as a signed integer. This measures
// first-element offset only: it is a true transposition interval only when
// the sets are transpositionally equivalent, which the operation does not
// verify — callers wanting a meaningful distance must check class equality
// first.
func TranspositionInterval(a, b Set) int {
	na, nb := a.NormalOrder(), b.NormalOrder()
	if len(na) == 0 || len(nb) == 0 {
		return 0
	}
	return nb[0] - na[0]
}

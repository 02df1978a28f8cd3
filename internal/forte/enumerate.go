package forte

import "github.com/tonerow/forte/internal/pcset"

// SubsetClasses enumerates the sub-collections of the input with
// cardinalities from n-1 down to 3 (the full set and anything below a
// trichord are excluded), classifies each, and returns the distinct
// orientation-insensitive labels in first-seen order. Deduplication is keyed
// on prime form rather than label, so a subset and its mirror collapse to
// one entry.
//
// Combinations are drawn over the caller's input ordering, which makes the
// first-seen order an artifact of how the pitches were listed; only the set
// of returned labels is a semantic guarantee.
func SubsetClasses(c *Catalog, elems []int) []Label {
	// Collapse duplicate pitch classes, keeping first-occurrence order.
	var have [12]bool
	distinct := make([]int, 0, len(elems))
	for _, v := range elems {
		pc := pcset.Mod12(v)
		if !have[pc] {
			have[pc] = true
			distinct = append(distinct, pc)
		}
	}

	n := len(distinct)
	seen := make(map[uint64]struct{})
	out := []Label{}
	pcs := make([]int, 0, n)
	for k := n - 1; k >= 3; k-- {
		eachCombination(n, k, func(idx []int) {
			pcs = pcs[:0]
			for _, i := range idx {
				pcs = append(pcs, distinct[i])
			}
			s := pcset.New(pcs...)
			key := encodeForm(s.PrimeForm())
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			lab, err := c.ClassifyClass(s)
			if err != nil {
				return // unreachable: k >= 3
			}
			out = append(out, lab)
		})
	}
	return out
}

// eachCombination visits every k-sized index combination of 0..n-1 in
// lexicographic order. The slice passed to visit is reused between calls.
func eachCombination(n, k int, visit func(idx []int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		visit(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

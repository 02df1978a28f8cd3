// Command gencatalog regenerates internal/forte/table.go: the complete
// catalog of set-class prime forms for cardinalities 0 through 12, indexed
// ascending-lexicographic within each cardinality, with the mirror-oriented
// form recorded for every inversionally asymmetric class.
//
// Run from the repository root:
//
//	go run ./tools/gencatalog > internal/forte/table.go
package main

import (
	"fmt"
	"math/bits"
	"os"
	"sort"
	"strings"

	"github.com/tonerow/forte/internal/pcset"
)

func main() {
	// Every subset of the chromatic scale, bucketed by cardinality.
	forms := make([]map[string][]int, 13)
	for card := range forms {
		forms[card] = make(map[string][]int)
	}
	for mask := 0; mask < 1<<12; mask++ {
		var pcs []int
		for pc := 0; pc < 12; pc++ {
			if mask&(1<<pc) != 0 {
				pcs = append(pcs, pc)
			}
		}
		pf := pcset.New(pcs...).PrimeForm()
		forms[bits.OnesCount(uint(mask))][key(pf)] = pf
	}

	var b strings.Builder
	b.WriteString("// Code generated by tools/gencatalog. DO NOT EDIT.\n\n")
	b.WriteString("package forte\n\n")
	b.WriteString("// classTable lists every set class for cardinalities 0 through 12, ordered\n")
	b.WriteString("// ascending-lexicographic by prime form within each cardinality. Asymmetric\n")
	b.WriteString("// classes carry the mirror-oriented form; symmetric classes carry nil.\n")
	b.WriteString("var classTable = []classEntry{\n")
	for card := 0; card <= 12; card++ {
		primes := make([][]int, 0, len(forms[card]))
		for _, pf := range forms[card] {
			primes = append(primes, pf)
		}
		sort.Slice(primes, func(i, j int) bool { return key(primes[i]) < key(primes[j]) })

		fmt.Fprintf(&b, "\t// cardinality %d\n", card)
		for i, pf := range primes {
			mirror := pcset.TransposeToZero(pcset.New(pf...).Invert().NormalOrder())
			m := "nil"
			if key(mirror) != key(pf) {
				m = literal(mirror)
			}
			fmt.Fprintf(&b, "\t{%d, %d, %s, %s},\n", card, i+1, literal(pf), m)
		}
		if card < 12 {
			b.WriteString("\n")
		}
	}
	b.WriteString("}\n")
	os.Stdout.WriteString(b.String())
}

// key encodes a form so that string ordering matches lexicographic ordering
// of the sequences. Two hex digits per element would be overkill; one is
// exact for values 0-11.
func key(seq []int) string {
	var b strings.Builder
	for _, pc := range seq {
		b.WriteByte("0123456789ab"[pc])
	}
	return b.String()
}

func literal(seq []int) string {
	parts := make([]string, len(seq))
	for i, pc := range seq {
		parts[i] = fmt.Sprint(pc)
	}
	return "[]int{" + strings.Join(parts, ", ") + "}"
}

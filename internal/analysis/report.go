package analysis

import (
	"fmt"
	"sort"

	"github.com/tonerow/forte/internal/forte"
	"github.com/tonerow/forte/internal/notename"
	"github.com/tonerow/forte/internal/pcset"
)

// Collection is the analysis of one named pitch collection.
type Collection struct {
	Name          string   `json:"name"`
	Pitches       []int    `json:"pitches"`
	Label         string   `json:"label"`
	NormalOrder   []int    `json:"normal_order"`
	PrimeForm     []int    `json:"prime_form"`
	SubsetClasses []string `json:"subset_classes"`
}

// Report aggregates a corpus. Frequency counts how many collections contain
// each orientation-insensitive class, either as their own class or embedded
// as a sub-collection; ByClass is the reverse index from class label to the
// names of the collections containing it.
type Report struct {
	Collections []Collection        `json:"collections"`
	Frequency   map[string]int      `json:"frequency"`
	ByClass     map[string][]string `json:"by_class"`
}

// Analyze classifies every collection in the corpus. Collections are
// processed in name order so the report is deterministic regardless of map
// iteration.
func Analyze(cat *forte.Catalog, corpus Corpus) (Report, error) {
	rep := Report{
		Frequency: make(map[string]int),
		ByClass:   make(map[string][]string),
	}
	for _, name := range corpus.Names() {
		pitches, err := notename.ParseCollection(corpus.Collections[name])
		if err != nil {
			return Report{}, fmt.Errorf("collection %q: %w", name, err)
		}
		set := pcset.New(pitches...)
		lab, err := cat.Classify(set)
		if err != nil {
			return Report{}, fmt.Errorf("collection %q: %w", name, err)
		}

		col := Collection{
			Name:        name,
			Pitches:     pitches,
			Label:       lab.String(),
			NormalOrder: set.NormalOrder(),
			PrimeForm:   set.PrimeForm(),
		}
		contained := []string{lab.Class().String()}
		for _, sub := range forte.SubsetClasses(cat, pitches) {
			col.SubsetClasses = append(col.SubsetClasses, sub.String())
			contained = append(contained, sub.String())
		}
		rep.Collections = append(rep.Collections, col)

		for _, class := range contained {
			rep.Frequency[class]++
			rep.ByClass[class] = append(rep.ByClass[class], name)
		}
	}
	return rep, nil
}

// ContainedIn returns the names of collections containing the given class,
// ignoring orientation.
func (r Report) ContainedIn(lab forte.Label) []string {
	names := r.ByClass[lab.Class().String()]
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

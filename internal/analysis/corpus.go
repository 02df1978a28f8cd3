// Package analysis drives the classification pipeline over a corpus of
// named pitch collections and aggregates the results: per-collection labels,
// a class frequency table, and a reverse index from class to the collections
// containing it.
package analysis

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Corpus is a set of named pitch collections, each given as a
// whitespace-separated string of note names or raw pitch-class integers.
type Corpus struct {
	Collections map[string]string `yaml:"collections"`
}

// LoadCorpus reads a corpus from a YAML file.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus: %w", err)
	}
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Corpus{}, fmt.Errorf("parse corpus: %w", err)
	}
	if len(c.Collections) == 0 {
		return Corpus{}, fmt.Errorf("corpus %s has no collections", path)
	}
	return c, nil
}

// Names returns the collection names in sorted order, so reports built from
// the map are deterministic.
func (c Corpus) Names() []string {
	names := make([]string, 0, len(c.Collections))
	for name := range c.Collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

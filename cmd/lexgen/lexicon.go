package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/coregx/lexgen"
)

// lexiconEntry is the on-disk YAML shape of a single Spec: an ordered
// name/pattern pair (SPEC_FULL.md's "lexicon file format" supplement —
// spec.md itself leaves the CLI's input format unspecified). Kept
// separate from lexgen.Spec so the core package stays free of any
// serialization tag, matching the teacher's own separation of internal
// value types from their CLI-facing YAML shapes.
type lexiconEntry struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// loadLexicon reads an ordered list of lexiconEntry from path and
// converts it to []lexgen.Spec, preserving list order (the order is
// semantically load-bearing: it becomes each pattern's output value).
func loadLexicon(path string) ([]lexgen.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}

	var entries []lexiconEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing lexicon %s: %s", path, yaml.FormatError(err, true, true))
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("lexicon %s defines no patterns", path)
	}

	specs := make([]lexgen.Spec, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("lexicon %s: entry %d has no name", path, i)
		}
		specs[i] = lexgen.Spec{Name: e.Name, Pattern: e.Pattern}
	}
	return specs, nil
}

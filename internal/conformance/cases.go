package conformance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CaseFile is one conformance table: named groups of canonization,
// relation, and prefix-stripping cases.
type CaseFile struct {
	// Name uniquely identifies this table; the golden file shares it.
	Name string `yaml:"name"`

	// Description explains what this table covers.
	Description string `yaml:"description"`

	// Canons lists canonization cases.
	Canons []CanonCase `yaml:"canons,omitempty"`

	// Relations lists relation-classification cases.
	Relations []RelationCase `yaml:"relations,omitempty"`

	// Strips lists prefix-stripping cases.
	Strips []StripCase `yaml:"strips,omitempty"`
}

// CanonCase expects input to canonize to expect.
type CanonCase struct {
	Input  string `yaml:"input"`
	Expect string `yaml:"expect"`
}

// RelationCase expects relation_to(a, b) to classify as expect
// (Disjoint, Intersects, Includes, or Equals).
type RelationCase struct {
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Expect string `yaml:"expect"`
}

// StripCase expects stripping prefix from pattern to yield exactly the
// expect residuals, in scan order. An empty expect means the prefix cannot
// match the pattern (or consumes it exactly).
type StripCase struct {
	Pattern string   `yaml:"pattern"`
	Prefix  string   `yaml:"prefix"`
	Expect  []string `yaml:"expect"`
}

// Load reads and validates a case file.
func Load(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse case file %s: %w", path, err)
	}
	if cf.Name == "" {
		return nil, fmt.Errorf("case file %s: missing name", path)
	}
	if len(cf.Canons)+len(cf.Relations)+len(cf.Strips) == 0 {
		return nil, fmt.Errorf("case file %s: no cases", path)
	}
	return &cf, nil
}

package validate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Cardinality defaults applied when a limit is unset.
const (
	DefaultMaxEntities    = 100_000
	DefaultMaxAnnotations = 100_000
)

// Limits bounds document cardinality. Zero values fall back to the
// defaults; the limits exist to keep canonicalization and hashing
// tractable, not to express business rules.
type Limits struct {
	// MaxEntities caps the entity count per document.
	MaxEntities int `yaml:"max_entities"`

	// MaxAnnotations caps the annotation count per document.
	MaxAnnotations int `yaml:"max_annotations"`
}

// DefaultLimits returns the built-in cardinality limits.
func DefaultLimits() Limits {
	return Limits{
		MaxEntities:    DefaultMaxEntities,
		MaxAnnotations: DefaultMaxAnnotations,
	}
}

// withDefaults fills unset fields from the defaults.
func (l Limits) withDefaults() Limits {
	if l.MaxEntities <= 0 {
		l.MaxEntities = DefaultMaxEntities
	}
	if l.MaxAnnotations <= 0 {
		l.MaxAnnotations = DefaultMaxAnnotations
	}
	return l
}

// LoadLimits reads cardinality limits from a YAML file. Fields absent
// from the file keep their defaults.
func LoadLimits(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("failed to read limits file: %w", err)
	}

	var limits Limits
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Limits{}, fmt.Errorf("failed to parse limits file: %w", err)
	}

	return limits.withDefaults(), nil
}

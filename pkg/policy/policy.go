// Package policy holds the tunable constants of the descriptor
// grammar. The descriptor language has shipped in several variants
// differing in the restricted-operand limit and in whether the
// extended (128-bit and decimal) base types are accepted, so both are
// runtime policy rather than hardcoded.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy configures grammar limits for one generator run.
type Policy struct {
	// MaxRestrictedOperands bounds how many arguments of one prototype
	// may carry a const-int restriction.
	MaxRestrictedOperands int `yaml:"max_restricted_operands"`
	// ExtendedTypes enables __int128, _Float128, the _Decimal types,
	// and __ibm128 (and the vector shorthands over __int128).
	ExtendedTypes bool `yaml:"extended_types"`
}

// Default returns the richest shipped variant: two restricted
// operands and the full base-type vocabulary.
func Default() Policy {
	return Policy{
		MaxRestrictedOperands: 2,
		ExtendedTypes:         true,
	}
}

// Load reads a policy from a YAML file. Fields absent from the file
// keep their defaults.
func Load(path string) (Policy, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("policy file %s: %w", path, err)
	}
	if p.MaxRestrictedOperands < 0 {
		return p, fmt.Errorf("policy file %s: max_restricted_operands must not be negative", path)
	}
	return p, nil
}

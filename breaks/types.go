// SPDX-License-Identifier: MIT

package breaks

import (
	"fmt"
	"strings"
)

// Algorithm selects a break computation. The set is closed: values outside
// the declared constants are rejected with ErrUnknownAlgorithm.
type Algorithm int

const (
	// Equal splits [min,max] into k intervals of equal width.
	Equal Algorithm = iota
	// Quantile places breaks at evenly spaced ranks.
	Quantile
	// StdDev places breaks on a ladder of standard deviations around the mean.
	StdDev
	// Pretty places breaks on human-friendly round numbers.
	Pretty
	// Natural is the Jenks optimal (variance-minimizing) partition.
	Natural
	// HeadTail recursively splits the head of a heavy-tailed distribution at its mean.
	HeadTail
	// Unique classifies by distinct value and has no break sequence.
	Unique
)

// algorithmNames holds the canonical name of every Algorithm, indexed by value.
var algorithmNames = [...]string{
	Equal:    "equal",
	Quantile: "quantile",
	StdDev:   "stdev",
	Pretty:   "pretty",
	Natural:  "natural",
	HeadTail: "headtail",
	Unique:   "unique",
}

// aliases maps accepted alternative spellings to algorithms.
var aliases = map[string]Algorithm{
	"histogram": Equal,
	"jenks":     Natural,
}

// String returns the canonical name of a.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Valid reports whether a is one of the declared constants.
func (a Algorithm) Valid() bool {
	return a >= Equal && a <= Unique
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(algorithmNames))
	for a := Equal; a <= Unique; a++ {
		out = append(out, a)
	}
	return out
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == key {
			return Algorithm(a), nil
		}
	}
	if a, ok := aliases[key]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(algorithmNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

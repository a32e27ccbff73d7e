// SPDX-License-Identifier: MIT

package classify

import (
	"github.com/katalvlaran/choropleth/breaks"
)

type specKind int

const (
	kindAlgorithm specKind = iota
	kindBreaks
	kindUnique
)

// BreaksSpec tells a Classifier where its break sequence comes from.
// Build one with ByAlgorithm, ByName, ByBreaks or ByUnique.
type BreaksSpec struct {
	kind specKind
	algo breaks.Algorithm
	opts []breaks.Option
	brks []float64
}

// ByAlgorithm computes breaks from the item values. breaks.Unique is
// equivalent to ByUnique.
func ByAlgorithm(algo breaks.Algorithm, opts ...breaks.Option) BreaksSpec {
	if algo == breaks.Unique {
		return ByUnique()
	}
	return BreaksSpec{kind: kindAlgorithm, algo: algo, opts: opts}
}

// ByName is ByAlgorithm with breaks.ParseAlgorithm applied to name.
func ByName(name string, opts ...breaks.Option) (BreaksSpec, error) {
	algo, err := breaks.ParseAlgorithm(name)
	if err != nil {
		return BreaksSpec{}, err
	}
	return ByAlgorithm(algo, opts...), nil
}

// ByBreaks uses brks unchanged. The slice is copied.
func ByBreaks(brks []float64) BreaksSpec {
	own := make([]float64, len(brks))
	copy(own, brks)
	return BreaksSpec{kind: kindBreaks, brks: own}
}

// ByUnique classifies by distinct value.
func ByUnique() BreaksSpec {
	return BreaksSpec{kind: kindUnique, algo: breaks.Unique}
}

// String names the spec: the algorithm name, "custom" or "unique".
func (s BreaksSpec) String() string {
	switch s.kind {
	case kindBreaks:
		return "custom"
	case kindUnique:
		return breaks.Unique.String()
	default:
		return s.algo.String()
	}
}

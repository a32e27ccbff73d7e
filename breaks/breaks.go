// SPDX-License-Identifier: MIT

package breaks

import (
	"math"
	"sort"
)

// Operation names used for error context.
const (
	opCompute = "Compute"
	opGVF     = "GVF"
)

// Compute returns the break sequence of values for the given algorithm.
//
// Implementation:
//   - Stage 1: validate algorithm, options and input (non-empty, finite).
//   - Stage 2: copy and sort unless WithPresorted.
//   - Stage 3: collapse single-valued input to [v, v].
//   - Stage 4: dispatch to the algorithm.
//
// Errors:
//   - ErrUnknownAlgorithm:  algo is not a declared constant.
//   - ErrUniqueMode:        algo is Unique.
//   - ErrInvalidInput:      empty values, Classes < 1, NaN/Inf, bad HeadTailRatio.
//
// The input slice is never modified.
func Compute(values []float64, algo Algorithm, opts ...Option) ([]float64, error) {
	return ComputeWith(values, algo, Apply(opts...))
}

// ComputeWith is Compute with pre-resolved Options.
func ComputeWith(values []float64, algo Algorithm, o Options) ([]float64, error) {
	// Stage 1 (Validate).
	if !algo.Valid() {
		return nil, breaksErrorf(opCompute, ErrUnknownAlgorithm)
	}
	if algo == Unique {
		return nil, breaksErrorf(opCompute, ErrUniqueMode)
	}
	if err := o.validate(); err != nil {
		return nil, breaksErrorf(opCompute, err)
	}
	if len(values) == 0 {
		return nil, breaksErrorf(opCompute, ErrInvalidInput)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, breaksErrorf(opCompute, ErrInvalidInput)
		}
	}

	// Stage 2 (Sort).
	sorted := values
	if !o.Presorted {
		sorted = make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
	}

	// Stage 3 (Degenerate).
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []float64{lo, hi}, nil
	}

	// Stage 4 (Dispatch).
	k := o.Classes
	switch algo {
	case Equal:
		return equalInterval(sorted, k), nil
	case Quantile:
		return quantile(sorted, k), nil
	case StdDev:
		return stdDev(sorted, k, o.SampleStdDev), nil
	case Pretty:
		return pretty(sorted, k), nil
	case Natural:
		return natural(sorted, k), nil
	case HeadTail:
		return headTail(sorted, k, o.HeadTailRatio), nil
	default:
		return nil, breaksErrorf(opCompute, ErrUnknownAlgorithm)
	}
}

// ClassCount returns the number of classes delimited by brks.
func ClassCount(brks []float64) int {
	if len(brks) < 2 {
		return 0
	}
	return len(brks) - 1
}

// Validate checks that brks is a usable break sequence: at least two finite
// elements in non-decreasing order.
func Validate(brks []float64) error {
	if len(brks) < 2 {
		return ErrInvalidInput
	}
	for i, b := range brks {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return ErrInvalidInput
		}
		if i > 0 && b < brks[i-1] {
			return ErrInvalidInput
		}
	}

	return nil
}

// mean returns the arithmetic mean of a non-empty slice.
func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

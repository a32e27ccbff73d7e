// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInsufficientClasses indicates a class count ≤ 1.
	ErrInsufficientClasses = errors.New("interp: need at least two classes")

	// ErrInsufficientStops indicates fewer than two value stops.
	ErrInsufficientStops = errors.New("interp: need at least two value stops")

	// ErrShapeMismatch indicates stops of differing (or zero) length.
	ErrShapeMismatch = errors.New("interp: value stops differ in shape")
)

// Value is a scalar (length 1) or a fixed-length tuple such as RGB.
type Value []float64

// Scalar returns a 1-tuple.
func Scalar(v float64) Value { return Value{v} }

// Tuple returns a tuple of the given coordinates.
func Tuple(vs ...float64) Value {
	out := make(Value, len(vs))
	copy(out, vs)
	return out
}

// IsScalar reports whether v has exactly one coordinate.
func (v Value) IsScalar() bool { return len(v) == 1 }

// Scalar returns the single coordinate of a scalar value, or NaN otherwise.
func (v Value) Scalar() float64 {
	if len(v) != 1 {
		return math.NaN()
	}
	return v[0]
}

// Equal reports coordinate-wise equality.
func (v Value) Equal(o Value) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders scalars bare and tuples in parentheses: 2.5, (255,0,0).
func (v Value) String() string {
	if len(v) == 1 {
		return strconv.FormatFloat(v[0], 'g', -1, 64)
	}
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Lerp interpolates a→b at t ∈ [0,1], coordinate by coordinate.
// a and b must have the same length. The product is rounded before the
// addition (no fused multiply-add) so results match across platforms.
func Lerp(a, b Value, t float64) Value {
	out := make(Value, len(a))
	for i := range a {
		out[i] = a[i] + float64(t*(b[i]-a[i]))
	}
	return out
}

// Shape validates stops and returns their common length.
func Shape(stops []Value) (int, error) {
	if len(stops) == 0 {
		return 0, ErrInsufficientStops
	}
	n := len(stops[0])
	if n == 0 {
		return 0, ErrShapeMismatch
	}
	for _, s := range stops[1:] {
		if len(s) != n {
			return 0, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, len(s))
		}
	}
	return n, nil
}

// ClassValues returns classCount values interpolated piecewise-linearly
// across stops.
//
// Implementation:
//   - Stage 1: validate classCount ≥ 2, len(stops) ≥ 2, uniform shape.
//   - Stage 2: for class c, p = c·(len(stops)-1)/(classCount-1),
//     lo = floor(p), hi = ceil(p), value = Lerp(stops[lo], stops[hi], p-lo).
//
// The returned values never alias stops.
//
// Complexity: O(classCount · len(Value)).
func ClassValues(classCount int, stops []Value) ([]Value, error) {
	// Stage 1 (Validate).
	if classCount <= 1 {
		return nil, ErrInsufficientClasses
	}
	if len(stops) < 2 {
		return nil, ErrInsufficientStops
	}
	if _, err := Shape(stops); err != nil {
		return nil, err
	}

	// Stage 2 (Interpolate).
	span := float64(len(stops) - 1)
	out := make([]Value, classCount)
	var p float64
	var lo, hi int
	for c := range out {
		p = float64(c) * span / float64(classCount-1)
		lo = int(math.Floor(p))
		hi = int(math.Ceil(p))
		out[c] = Lerp(stops[lo], stops[hi], p-float64(lo))
	}

	return out, nil
}

// Cycle returns stops[i mod len(stops)]; it is a pure function of i, so a
// cycle can be restarted or read concurrently. Panics on empty stops.
func Cycle(stops []Value, i int) Value {
	n := len(stops)
	return stops[((i%n)+n)%n]
}

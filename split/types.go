// SPDX-License-Identifier: MIT

package split

import (
	"fmt"
	"iter"
)

// Range is an inclusive value interval [Lower, Upper].
type Range struct {
	Lower float64
	Upper float64
}

// Contains reports whether Lower ≤ v ≤ Upper.
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

// String renders the range as "[lower, upper]".
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper)
}

// Group is one class: its value range and the member items in ascending
// value order (input order for Membership).
type Group[T any] struct {
	Range   Range
	Members []T
}

// Groups is the pull interface shared by every producer in this package.
type Groups[T any] interface {
	// Next advances to the next group and reports whether there is one.
	Next() bool
	// Group returns the current group. Valid after Next returned true.
	Group() Group[T]
}

// Seq adapts g to a range-over-func sequence. Stopping early leaves the
// remaining groups unproduced.
func Seq[T any](g Groups[T]) iter.Seq[Group[T]] {
	return func(yield func(Group[T]) bool) {
		for g.Next() {
			if !yield(g.Group()) {
				return
			}
		}
	}
}

// Collect drains g into a slice.
func Collect[T any](g Groups[T]) []Group[T] {
	var out []Group[T]
	for g.Next() {
		out = append(out, g.Group())
	}

	return out
}

// Ranges converts a break sequence into its class ranges.
func Ranges(brks []float64) []Range {
	if len(brks) < 2 {
		return nil
	}
	out := make([]Range, len(brks)-1)
	for i := range out {
		out[i] = Range{Lower: brks[i], Upper: brks[i+1]}
	}

	return out
}

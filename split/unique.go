// SPDX-License-Identifier: MIT

package split

import (
	"iter"

	"github.com/katalvlaran/choropleth/accessor"
)

// RunIterator yields one group per run of equal values in sorted order.
type RunIterator[T any] struct {
	items  []T
	values []float64
	pos    int
	group  Group[T]
}

// Next groups the next run of equal values.
func (it *RunIterator[T]) Next() bool {
	if it.pos >= len(it.values) {
		it.group = Group[T]{}
		return false
	}
	start, v := it.pos, it.values[it.pos]
	for it.pos < len(it.values) && it.values[it.pos] == v {
		it.pos++
	}
	it.group = Group[T]{
		Range:   Range{Lower: v, Upper: v},
		Members: it.items[start:it.pos:it.pos],
	}

	return true
}

// Group returns the current group.
func (it *RunIterator[T]) Group() Group[T] { return it.group }

// Seq adapts the iterator to range-over-func.
func (it *RunIterator[T]) Seq() iter.Seq[Group[T]] { return Seq[T](it) }

// Unique groups items by distinct value, ascending. Within a group items keep
// their input order.
//
// Errors: accessor.ErrNonNumeric unless WithDiscardInvalid.
//
// Complexity: O(n log n) up front, O(n) across the iteration.
func Unique[T any](items []T, acc accessor.Func[T], opts ...Option) (*RunIterator[T], error) {
	o := gatherOptions(opts)

	sorted, values, err := accessor.Sorted(items, acc, o.DiscardInvalid)
	if err != nil {
		return nil, splitErrorf(opUnique, err)
	}

	return &RunIterator[T]{items: sorted, values: values}, nil
}

// SPDX-License-Identifier: MIT

package split

import (
	"fmt"
	"iter"
	"sort"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/katalvlaran/choropleth/breaks"
)

// cursor walks a break sequence one class at a time.
type cursor struct {
	lower, upper float64
	rest         []float64
}

func newCursor(brks []float64) cursor {
	return cursor{lower: brks[0], upper: brks[1], rest: brks[2:]}
}

// advance moves to the next pair of breaks; false when none remain.
func (c *cursor) advance() bool {
	if len(c.rest) == 0 {
		return false
	}
	c.lower, c.upper = c.upper, c.rest[0]
	c.rest = c.rest[1:]

	return true
}

func (c *cursor) rng() Range {
	return Range{Lower: c.lower, Upper: c.upper}
}

// Iterator yields the groups of Split in class order, exactly one per class.
type Iterator[T any] struct {
	items  []T
	values []float64
	pos    int

	cur     cursor
	started bool
	done    bool
	group   Group[T]
}

// Next claims every remaining item whose value does not exceed the current
// upper break, then advances the cursor on the following call.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	if it.started && !it.cur.advance() {
		it.done = true
		it.group = Group[T]{}
		return false
	}
	it.started = true

	start := it.pos
	for it.pos < len(it.values) && it.values[it.pos] <= it.cur.upper {
		it.pos++
	}
	it.group = Group[T]{
		Range:   it.cur.rng(),
		Members: it.items[start:it.pos:it.pos],
	}

	return true
}

// Group returns the current group.
func (it *Iterator[T]) Group() Group[T] { return it.group }

// Seq adapts the iterator to range-over-func.
func (it *Iterator[T]) Seq() iter.Seq[Group[T]] { return Seq[T](it) }

// Split partitions items against brks.
//
// Implementation:
//   - Stage 1: validate brks (≥ 2 finite, non-decreasing elements).
//   - Stage 2: extract values and stable-sort items by value.
//   - Stage 3: apply the out-of-range policy to the sorted ends.
//   - Stage 4: return a lazy iterator over len(brks)-1 groups.
//
// Errors:
//   - ErrInvalidBreaks:       malformed break sequence.
//   - accessor.ErrNonNumeric:  accessor failure (unless WithDiscardInvalid).
//   - ErrValueOutOfRange:     under Reject, the first offending value.
//
// Complexity: O(n log n) up front, O(n + k) across the iteration.
func Split[T any](items []T, brks []float64, acc accessor.Func[T], opts ...Option) (*Iterator[T], error) {
	o := gatherOptions(opts)

	// Stage 1 (Validate).
	if err := breaks.Validate(brks); err != nil {
		return nil, splitErrorf(opSplit, ErrInvalidBreaks)
	}

	// Stage 2 (Extract & sort).
	sorted, values, err := accessor.Sorted(items, acc, o.DiscardInvalid)
	if err != nil {
		return nil, splitErrorf(opSplit, err)
	}

	return newIterator(opSplit, sorted, values, brks, o.OutOfRange)
}

// SplitBy computes breaks with algo (see WithBreakOptions) and splits items
// against them in one pass over the sorted values.
//
// Errors: those of breaks.Compute (breaks.Unique yields breaks.ErrUniqueMode;
// use Unique instead) and those of Split.
func SplitBy[T any](items []T, algo breaks.Algorithm, acc accessor.Func[T], opts ...Option) (*Iterator[T], []float64, error) {
	o := gatherOptions(opts)

	sorted, values, err := accessor.Sorted(items, acc, o.DiscardInvalid)
	if err != nil {
		return nil, nil, splitErrorf(opSplitBy, err)
	}
	brks, err := breaks.Compute(values, algo, append(o.Breaks, breaks.WithPresorted())...)
	if err != nil {
		return nil, nil, splitErrorf(opSplitBy, err)
	}
	it, err := newIterator(opSplitBy, sorted, values, brks, o.OutOfRange)
	if err != nil {
		return nil, nil, err
	}

	return it, brks, nil
}

// newIterator applies the out-of-range policy to already sorted input.
func newIterator[T any](op string, sorted []T, values []float64, brks []float64, policy OutOfRange) (*Iterator[T], error) {
	lo, hi := brks[0], brks[len(brks)-1]
	first := sort.SearchFloat64s(values, lo)
	last := sort.Search(len(values), func(i int) bool { return values[i] > hi })

	if first > 0 || last < len(values) {
		if policy == Reject {
			bad := values[0]
			if first == 0 {
				bad = values[last]
			}
			return nil, splitErrorf(op, fmt.Errorf("%w: %g not in [%g, %g]", ErrValueOutOfRange, bad, lo, hi))
		}
		sorted, values = sorted[first:last], values[first:last]
	}

	own := make([]float64, len(brks))
	copy(own, brks)

	return &Iterator[T]{
		items:  sorted,
		values: values,
		cur:    newCursor(own),
	}, nil
}

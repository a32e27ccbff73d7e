// SPDX-License-Identifier: MIT

package split

import (
	"iter"
	"math"

	"github.com/katalvlaran/choropleth/accessor"
)

// MembershipIterator yields one group per range, scanning all items for each.
type MembershipIterator[T any] struct {
	items  []T
	values []float64
	ranges []Range
	idx    int
	group  Group[T]
}

// Next scans every item against the next range.
func (it *MembershipIterator[T]) Next() bool {
	if it.idx >= len(it.ranges) {
		it.group = Group[T]{}
		return false
	}
	r := it.ranges[it.idx]
	it.idx++

	var members []T
	for i, v := range it.values {
		if r.Contains(v) {
			members = append(members, it.items[i])
		}
	}
	it.group = Group[T]{Range: r, Members: members}

	return true
}

// Group returns the current group.
func (it *MembershipIterator[T]) Group() Group[T] { return it.group }

// Seq adapts the iterator to range-over-func.
func (it *MembershipIterator[T]) Seq() iter.Seq[Group[T]] { return Seq[T](it) }

// Membership selects, for each range independently, the items whose value
// lies in [Lower, Upper]. Unlike Split the result is not a partition: ranges
// may overlap and leave gaps. Members keep input order.
//
// Errors:
//   - ErrInvalidRange:          Lower > Upper or a non-finite bound.
//   - accessor.ErrNonNumeric:   accessor failure (unless WithDiscardInvalid).
//
// Complexity: O(n) up front, O(n) per range consumed.
func Membership[T any](items []T, ranges []Range, acc accessor.Func[T], opts ...Option) (*MembershipIterator[T], error) {
	o := gatherOptions(opts)

	for _, r := range ranges {
		if r.Lower > r.Upper || isBad(r.Lower) || isBad(r.Upper) {
			return nil, splitErrorf(opMembership, ErrInvalidRange)
		}
	}
	kept, values, err := accessor.Extract(items, acc, o.DiscardInvalid)
	if err != nil {
		return nil, splitErrorf(opMembership, err)
	}
	own := make([]Range, len(ranges))
	copy(own, ranges)

	return &MembershipIterator[T]{items: kept, values: values, ranges: own}, nil
}

func isBad(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

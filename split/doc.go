// SPDX-License-Identifier: MIT

// Package split regroups items into classes.
//
// Three producers share one Group type:
//
//	Split:       a partition against a break sequence: every in-range item
//	             lands in exactly one group, one group per class (possibly
//	             empty), ranges in order reconstruct the break sequence.
//	Unique:      one group per distinct value, ascending, range (v, v).
//	Membership:  one group per caller-supplied inclusive range; ranges may
//	             overlap, so an item may appear in several groups or in none.
//
// Boundary rule for Split: every class is closed on its upper break and the
// walk moves on only when a value strictly exceeds it. The first class also
// accepts values equal to the first break. A value equal to a break shared by
// two classes therefore belongs to the lower class.
//
// Values outside [first break, last break] are rejected with
// ErrValueOutOfRange (default) or dropped (WithOutOfRange(Drop)). Either way
// the decision is made before the first group is produced.
//
// Producers extract and sort eagerly (O(n log n)) and then yield groups
// lazily; each iterator is single-pass.
//
//	it, err := split.Split(items, brks, acc)
//	for g := range it.Seq() {
//	  fmt.Println(g.Range, len(g.Members))
//	}
package split

// SPDX-License-Identifier: MIT

package breaks

import "sort"

// headTail implements head/tail breaks for heavy-tailed distributions.
//
// Starting from the whole sorted set, the mean splits the current subset into
// a tail (≤ mean) and a head (> mean); the mean becomes a break and the
// process recurses into the head. Recursion stops when:
//   - the head is empty (the subset is constant), or
//   - the head holds more than ratio of the subset (no longer heavy-tailed;
//     that last mean is still emitted), or
//   - k classes have been produced.
//
// The result is [min, m1, m2, …, max] with at most k classes.
//
// Complexity: O(n) overall; each level touches at most ratio of the previous.
func headTail(sorted []float64, k int, ratio float64) []float64 {
	out := []float64{sorted[0]}
	sub := sorted

	for len(out) < k {
		m := mean(sub)
		idx := sort.Search(len(sub), func(i int) bool { return sub[i] > m })
		head := sub[idx:]
		if len(head) == 0 {
			break
		}
		out = append(out, m)
		if float64(len(head))/float64(len(sub)) > ratio {
			break
		}
		sub = head
	}

	return append(out, sorted[len(sorted)-1])
}

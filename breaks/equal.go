// SPDX-License-Identifier: MIT

package breaks

// equalInterval splits [min,max] into k intervals of width (max-min)/k.
// The last break is pinned to max to absorb rounding error.
//
// Complexity: O(k).
func equalInterval(sorted []float64, k int) []float64 {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	width := (hi - lo) / float64(k)

	out := make([]float64, k+1)
	for i := range out {
		out[i] = lo + float64(i)*width
	}
	out[k] = hi

	return out
}

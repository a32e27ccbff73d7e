// SPDX-License-Identifier: MIT

package breaks

import "math"

// quantile places break i at rank p = i·(n-1)/k of the sorted values,
// interpolating linearly between sorted[floor(p)] and sorted[floor(p)+1].
// Ranks 0 and n-1 are exact, so the ends are min and max.
//
// Complexity: O(k).
func quantile(sorted []float64, k int) []float64 {
	n := len(sorted)
	out := make([]float64, k+1)

	var (
		pos, frac float64
		lo        int
	)
	for i := 0; i <= k; i++ {
		pos = float64(i) * float64(n-1) / float64(k)
		lo = int(math.Floor(pos))
		frac = pos - float64(lo)
		if lo+1 < n && frac > 0 {
			out[i] = sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
		} else {
			out[i] = sorted[lo]
		}
	}

	return out
}

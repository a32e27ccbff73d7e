// SPDX-License-Identifier: MIT

package breaks

import "math"

// stdDev places breaks on a ladder μ + (i - k/2)·u for i = 0..k, where u is
// the smallest multiple of σ/2 for which k/2 rungs reach the farther end of
// the data. Rungs are clipped to [min,max] and the ends are min and max, so
// clipped rungs may repeat (empty classes on the short side).
//
// Complexity: O(n + k).
func stdDev(sorted []float64, k int, sample bool) []float64 {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	mu, sigma := meanStd(sorted, sample)

	half := float64(k) / 2
	reach := math.Max(hi-mu, mu-lo) / sigma // in σ units
	unit := math.Ceil(2*reach/half) / 2
	if unit < 0.5 {
		unit = 0.5
	}

	out := make([]float64, k+1)
	for i := range out {
		out[i] = clamp(mu+(float64(i)-half)*unit*sigma, lo, hi)
	}
	out[0], out[k] = lo, hi

	return out
}

// meanStd returns the mean and standard deviation (population, or sample
// when requested and n > 1). Two-pass for stability.
func meanStd(v []float64, sample bool) (float64, float64) {
	mu := mean(v)

	var ss, d float64
	for _, x := range v {
		d = x - mu
		ss += d * d
	}
	den := float64(len(v))
	if sample && len(v) > 1 {
		den--
	}

	return mu, math.Sqrt(ss / den)
}

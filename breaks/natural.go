// SPDX-License-Identifier: MIT

package breaks

import "math"

// natural computes the Jenks optimal partition of sorted into k contiguous
// classes, minimizing the sum of squared deviations from the class means
// (SDCM). Equivalent to maximizing between-class variance.
//
// Algorithm Outline:
//  1. Prefix sums S[i], Q[i] of (x-shift) and (x-shift)² give the squared
//     deviation of any run sorted[i:j] in O(1):
//     ssd(i,j) = (Q[j]-Q[i]) - (S[j]-S[i])² / (j-i).
//     The shift (the mean) keeps the subtraction well conditioned.
//  2. cost[c][j] = minimal SDCM of sorted[:j] in c classes:
//     cost[1][j] = ssd(0,j)
//     cost[c][j] = min_{c-1 ≤ i < j} cost[c-1][i] + ssd(i,j)
//     from[c][j] remembers the minimizing i.
//  3. Backtrack from (k,n); each class contributes its largest value as the
//     upper break.
//
// k is capped at n: a class cannot be empty.
//
// Complexity: O(k·n²) time, O(k·n) memory.
func natural(sorted []float64, k int) []float64 {
	n := len(sorted)
	if k > n {
		k = n
	}

	// Stage 1: shifted prefix sums.
	shift := mean(sorted)
	s := make([]float64, n+1)
	q := make([]float64, n+1)
	var d float64
	for i, x := range sorted {
		d = x - shift
		s[i+1] = s[i] + d
		q[i+1] = q[i] + d*d
	}
	ssd := func(i, j int) float64 {
		sum := s[j] - s[i]
		r := (q[j] - q[i]) - sum*sum/float64(j-i)
		if r < 0 {
			return 0
		}
		return r
	}

	// Stage 2: DP tables, row c for c classes.
	cost := make([][]float64, k+1)
	from := make([][]int, k+1)
	for c := range cost {
		cost[c] = make([]float64, n+1)
		from[c] = make([]int, n+1)
	}
	for j := 1; j <= n; j++ {
		cost[1][j] = ssd(0, j)
	}

	var best, x float64
	var arg int
	for c := 2; c <= k; c++ {
		for j := c; j <= n; j++ {
			best, arg = math.Inf(1), c-1
			for i := c - 1; i < j; i++ {
				x = cost[c-1][i] + ssd(i, j)
				if x < best {
					best, arg = x, i
				}
			}
			cost[c][j] = best
			from[c][j] = arg
		}
	}

	// Stage 3: backtrack class ends.
	ends := make([]int, k)
	j := n
	for c := k; c >= 1; c-- {
		ends[c-1] = j
		j = from[c][j]
	}

	out := make([]float64, k+1)
	out[0] = sorted[0]
	for c, end := range ends {
		out[c+1] = sorted[end-1]
	}

	return out
}

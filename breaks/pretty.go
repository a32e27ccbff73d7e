// SPDX-License-Identifier: MIT

package breaks

import "math"

// niceMultipliers are the mantissas of "pretty" step sizes.
var niceMultipliers = [...]float64{1, 2, 5}

// prettyTol absorbs float noise when dividing by a step (0.3/0.1 = 2.9999…).
const prettyTol = 1e-9

// pretty returns round-number breaks: consecutive multiples of a step
// m·10^e (m ∈ {1,2,5}) covering [min,max]. The step is chosen so the class
// count is as close to k as possible, ties going to the coarser step. The
// outermost multiples are replaced by the true min and max.
//
// The class count approximates k and may differ from it.
//
// Complexity: O(1) to pick the step, O(classes) to emit.
func pretty(sorted []float64, k int) []float64 {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	step, exp := niceStep(lo, hi, k)

	start := math.Floor(lo/step + prettyTol)
	end := math.Ceil(hi/step - prettyTol)
	count := int(end - start)
	if count < 1 {
		count = 1
	}

	out := make([]float64, count+1)
	for j := range out {
		out[j] = roundDecimals((start+float64(j))*step, -exp)
	}
	out[0], out[count] = lo, hi

	return out
}

// niceStep evaluates m·10^e for e around log10((max-min)/k) and returns the
// step whose class count lies closest to k, plus its exponent e.
func niceStep(lo, hi float64, k int) (float64, int) {
	raw := (hi - lo) / float64(k)
	base := int(math.Floor(math.Log10(raw)))

	var (
		bestStep = math.Inf(1)
		bestExp  int
		bestDiff = math.MaxInt
	)
	for e := base - 1; e <= base+1; e++ {
		for _, m := range niceMultipliers {
			step := m * math.Pow(10, float64(e))
			count := int(math.Ceil(hi/step-prettyTol) - math.Floor(lo/step+prettyTol))
			diff := count - k
			if diff < 0 {
				diff = -diff
			}
			if diff < bestDiff || (diff == bestDiff && step > bestStep) {
				bestStep, bestExp, bestDiff = step, e, diff
			}
		}
	}

	return bestStep, bestExp
}

// roundDecimals rounds x to d decimal places when d > 0, removing the
// representation noise of products like 3·0.1.
func roundDecimals(x float64, d int) float64 {
	if d <= 0 {
		return x
	}
	p := math.Pow(10, float64(d))
	return math.Round(x*p) / p
}

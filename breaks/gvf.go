// SPDX-License-Identifier: MIT

package breaks

import (
	"math"
	"sort"
)

// GVF returns the goodness of variance fit of a break sequence:
//
//	GVF = 1 - SDCM / SDAM
//
// where SDAM is the squared deviation of all values from their mean and SDCM
// the sum of squared deviations of each class from its own mean. Values are
// assigned with the same rule as split.Split: a class is closed on its upper
// break, ties go to the lower class, and out-of-range values join the nearest
// end class. 1 means a perfect fit; constant input scores 1.
//
// Errors: ErrInvalidInput for empty values or an invalid break sequence.
//
// Complexity: O(n log n).
func GVF(values, brks []float64) (float64, error) {
	if len(values) == 0 {
		return 0, breaksErrorf(opGVF, ErrInvalidInput)
	}
	if err := Validate(brks); err != nil {
		return 0, breaksErrorf(opGVF, err)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sdam := sumSquares(sorted)
	if sdam == 0 {
		return 1, nil
	}

	var sdcm float64
	classes := len(brks) - 1
	start, class := 0, 0
	for i, v := range sorted {
		for class < classes-1 && v > brks[class+1] {
			sdcm += sumSquares(sorted[start:i])
			start = i
			class++
		}
	}
	sdcm += sumSquares(sorted[start:])

	return 1 - sdcm/sdam, nil
}

// sumSquares returns Σ(x-mean)² over v (0 for empty v).
func sumSquares(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	mu := mean(v)

	var ss, d float64
	for _, x := range v {
		d = x - mu
		ss += d * d
	}

	return math.Max(ss, 0)
}

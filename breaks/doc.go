// SPDX-License-Identifier: MIT

// Package breaks computes class break points for a set of numeric values.
//
// A break sequence for k classes holds k+1 non-decreasing values. The first
// element is the minimum of the input and the last is the maximum; consecutive
// pairs delimit one class each.
//
// 🚀 Algorithms
//
//	Equal:      k intervals of identical width ("histogram" is an alias).
//	Quantile:   breaks at ranks i·(n-1)/k, linearly interpolated.
//	StdDev:     a symmetric ladder of standard deviations around the mean.
//	Pretty:     round multiples of 1, 2 or 5 × 10^e; class count approximates k.
//	Natural:    Jenks optimal partition: minimal total within-class variance.
//	HeadTail:   recursive mean split for heavy-tailed data; at most k classes.
//	Unique:     no breaks at all; one class per distinct value (see package split).
//
// ⚙️ Usage:
//
//	brks, err := breaks.Compute(values, breaks.Natural, breaks.WithClasses(5))
//	if err != nil {
//	  // ErrInvalidInput, ErrUnknownAlgorithm or ErrUniqueMode
//	}
//	fit, _ := breaks.GVF(values, brks) // 0..1, higher is better
//
// Degenerate input: when every value is identical the result is [v, v] for
// every algorithm, i.e. a single class.
//
// Complexity:
//
//   - Natural:  O(k·n²) time, O(k·n) memory.
//   - Others:   O(n) after the O(n log n) sort (skipped with WithPresorted).
package breaks

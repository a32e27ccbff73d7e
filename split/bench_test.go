// SPDX-License-Identifier: MIT

package split_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/choropleth/breaks"
	"github.com/katalvlaran/choropleth/split"
)

// BenchmarkSplitBy_Quantile100k measures sort + walk on 100k items.
func BenchmarkSplitBy_Quantile100k(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	values := make([]float64, 100_000)
	for i := range values {
		values[i] = rng.NormFloat64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, _, err := split.SplitBy(values, breaks.Quantile, ident, split.WithBreakOptions(breaks.WithClasses(9)))
		if err != nil {
			b.Fatalf("SplitBy failed: %v", err)
		}
		_ = split.Collect[float64](it)
	}
}

// SPDX-License-Identifier: MIT

package breaks_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/choropleth/breaks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// skewed mirrors a parabola sampled unevenly: a long right tail.
func skewed() []float64 {
	out := make([]float64, 0, 1100)
	for i := -100; i < 1000; i++ {
		out = append(out, float64(-500000+i*i))
	}
	return out
}

func assertWellFormed(t *testing.T, values, brks []float64) {
	t.Helper()
	require.GreaterOrEqual(t, len(brks), 2)
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	assert.Equal(t, lo, brks[0], "first break is the minimum")
	assert.Equal(t, hi, brks[len(brks)-1], "last break is the maximum")
	assert.True(t, sort.Float64sAreSorted(brks), "breaks non-decreasing: %v", brks)
}

func TestCompute_AllAlgorithmsWellFormed(t *testing.T) {
	values := skewed()
	for _, algo := range breaks.Algorithms() {
		if algo == breaks.Unique {
			continue
		}
		t.Run(algo.String(), func(t *testing.T) {
			brks, err := breaks.Compute(values, algo, breaks.WithClasses(5))
			require.NoError(t, err)
			assertWellFormed(t, values, brks)

			switch algo {
			case breaks.Equal, breaks.Quantile, breaks.StdDev, breaks.Natural:
				assert.Len(t, brks, 6)
			case breaks.HeadTail:
				assert.LessOrEqual(t, len(brks), 6)
			}
		})
	}
}

func TestCompute_InputUntouched(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	_, err := breaks.Compute(values, breaks.Quantile, breaks.WithClasses(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, values)
}

func TestCompute_Errors(t *testing.T) {
	_, err := breaks.Compute(nil, breaks.Equal)
	assert.ErrorIs(t, err, breaks.ErrInvalidInput, "empty input")

	_, err = breaks.Compute([]float64{1, 2}, breaks.Algorithm(42))
	assert.ErrorIs(t, err, breaks.ErrUnknownAlgorithm)

	_, err = breaks.Compute([]float64{1, 2}, breaks.Unique)
	assert.ErrorIs(t, err, breaks.ErrUniqueMode)

	_, err = breaks.Compute([]float64{1, math.NaN()}, breaks.Equal)
	assert.ErrorIs(t, err, breaks.ErrInvalidInput, "NaN input")

	opts := breaks.DefaultOptions()
	opts.Classes = 0
	_, err = breaks.ComputeWith([]float64{1, 2}, breaks.Equal, opts)
	assert.ErrorIs(t, err, breaks.ErrInvalidInput, "k < 1")

	opts = breaks.DefaultOptions()
	opts.HeadTailRatio = 0
	_, err = breaks.ComputeWith([]float64{1, 2}, breaks.HeadTail, opts)
	assert.ErrorIs(t, err, breaks.ErrInvalidInput)
}

func TestCompute_SingleValueDegenerates(t *testing.T) {
	for _, algo := range breaks.Algorithms() {
		if algo == breaks.Unique {
			continue
		}
		brks, err := breaks.Compute([]float64{3, 3, 3}, algo, breaks.WithClasses(4))
		require.NoError(t, err, algo.String())
		assert.Equal(t, []float64{3, 3}, brks, algo.String())
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { breaks.WithClasses(0) })
	assert.Panics(t, func() { breaks.WithHeadTailRatio(0) })
	assert.Panics(t, func() { breaks.WithHeadTailRatio(1.5) })
	assert.NotPanics(t, func() { breaks.WithHeadTailRatio(1) })
}

func TestEqual(t *testing.T) {
	values := []float64{10, 0, 3, 7, 5}
	brks, err := breaks.Compute(values, breaks.Equal, breaks.WithClasses(5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, brks)
}

func TestEqual_PropertyRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(40)
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.NormFloat64() * 100
		}
		k := 2 + rng.Intn(8)
		brks, err := breaks.Compute(values, breaks.Equal, breaks.WithClasses(k))
		require.NoError(t, err)
		if n == 1 {
			assert.Len(t, brks, 2)
			continue
		}
		assert.Len(t, brks, k+1)
		assertWellFormed(t, values, brks)
	}
}

func TestQuantile(t *testing.T) {
	brks, err := breaks.Compute([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, breaks.Quantile, breaks.WithClasses(4))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 7, 9}, brks)

	brks, err = breaks.Compute([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, breaks.Quantile, breaks.WithClasses(4))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 3.25, 5.5, 7.75, 10}, brks, eps)
}

func TestQuantile_RankFraction(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := rng.Perm(97)
	fv := make([]float64, len(values))
	for i, v := range values {
		fv[i] = float64(v) * 1.5
	}
	const k = 6
	brks, err := breaks.Compute(fv, breaks.Quantile, breaks.WithClasses(k))
	require.NoError(t, err)

	n := float64(len(fv))
	for i := 1; i < k; i++ {
		var le int
		for _, v := range fv {
			if v <= brks[i] {
				le++
			}
		}
		assert.InDelta(t, float64(i)/k, float64(le)/n, 2/n, "break %d", i)
	}
}

func TestStdDev(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sigma := math.Sqrt(10)

	brks, err := breaks.Compute(values, breaks.StdDev, breaks.WithClasses(4))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 5 - sigma, 5, 5 + sigma, 10}, brks, eps)
}

func TestStdDev_SampleWidensLadder(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	pop, err := breaks.Compute(values, breaks.StdDev, breaks.WithClasses(4))
	require.NoError(t, err)
	smp, err := breaks.Compute(values, breaks.StdDev, breaks.WithClasses(4), breaks.WithSampleStdDev())
	require.NoError(t, err)

	assert.Less(t, smp[1], pop[1], "sample σ is larger, so the first rung moves down")
	assert.Equal(t, pop[2], smp[2], "centre rung is the mean")
}

func TestPretty(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i * i)
	}
	brks, err := breaks.Compute(values, breaks.Pretty, breaks.WithClasses(5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2000, 4000, 6000, 8000, 9801}, brks)
}

func TestPretty_Decimals(t *testing.T) {
	brks, err := breaks.Compute([]float64{0.13, 0.5, 0.97}, breaks.Pretty, breaks.WithClasses(4))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.13, 0.2, 0.4, 0.6, 0.8, 0.97}, brks)
}

func TestNatural_Clusters(t *testing.T) {
	values := []float64{21, 1, 12, 2, 22, 3, 10, 11, 20}
	brks, err := breaks.Compute(values, breaks.Natural, breaks.WithClasses(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 12, 22}, brks)
}

func TestNatural_CapsClassesAtN(t *testing.T) {
	brks, err := breaks.Compute([]float64{1, 5, 9}, breaks.Natural, breaks.WithClasses(10))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 5, 9}, brks)
}

// partitionSSD assigns sorted values to classes (closed upper bound, ties
// low) and returns the total within-class squared deviation.
func partitionSSD(sorted, brks []float64) float64 {
	var total float64
	start, class := 0, 0
	for i, v := range sorted {
		for class < len(brks)-2 && v > brks[class+1] {
			total += ssd(sorted[start:i])
			start = i
			class++
		}
	}
	return total + ssd(sorted[start:])
}

func ssd(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	mu := sum / float64(len(v))
	var out float64
	for _, x := range v {
		out += (x - mu) * (x - mu)
	}
	return out
}

// bruteBest enumerates every way to cut sorted into k non-empty runs.
func bruteBest(sorted []float64, k int) float64 {
	best := math.Inf(1)
	var rec func(start, left int, acc float64)
	rec = func(start, left int, acc float64) {
		if left == 1 {
			best = math.Min(best, acc+ssd(sorted[start:]))
			return
		}
		for end := start + 1; end <= len(sorted)-left+1; end++ {
			rec(end, left-1, acc+ssd(sorted[start:end]))
		}
	}
	rec(0, k, 0)
	return best
}

func TestNatural_OptimalAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 40; trial++ {
		n := 2 + rng.Intn(11) // 2..12
		perm := rng.Perm(1000)[:n]
		sorted := make([]float64, n)
		for i, p := range perm {
			sorted[i] = float64(p * p)
		}
		sort.Float64s(sorted)
		if sorted[0] == sorted[n-1] {
			continue
		}
		k := 1 + rng.Intn(4)
		if k > n {
			k = n
		}

		brks, err := breaks.Compute(sorted, breaks.Natural, breaks.WithClasses(k), breaks.WithPresorted())
		require.NoError(t, err)
		require.Len(t, brks, k+1)

		got := partitionSSD(sorted, brks)
		want := bruteBest(sorted, k)
		assert.InDelta(t, want, got, 1e-6*math.Max(1, want), "n=%d k=%d values=%v", n, k, sorted)
	}
}

func TestHeadTail(t *testing.T) {
	values := []float64{1, 1, 1, 1, 1, 1, 1, 2, 4, 100}
	brks, err := breaks.Compute(values, breaks.HeadTail, breaks.WithClasses(5))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 11.3, 100}, brks)
}

func TestHeadTail_StopsWhenHeadIsLarge(t *testing.T) {
	brks, err := breaks.Compute([]float64{1, 2, 3, 4}, breaks.HeadTail, breaks.WithClasses(5))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 4}, brks, "head 2/4 > 0.4: emit the mean and stop")

	brks, err = breaks.Compute([]float64{1, 2, 3, 4}, breaks.HeadTail, breaks.WithClasses(5), breaks.WithHeadTailRatio(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3.5, 4}, brks, "ratio 1 recurses until the head is constant")
}

func TestHeadTail_RespectsClassCap(t *testing.T) {
	values := skewed()
	for k := 1; k <= 6; k++ {
		brks, err := breaks.Compute(values, breaks.HeadTail, breaks.WithClasses(k))
		require.NoError(t, err)
		assert.LessOrEqual(t, breaks.ClassCount(brks), k)
		assertWellFormed(t, values, brks)
	}
}

func TestGVF(t *testing.T) {
	values := []float64{1, 1, 5, 5, 9, 9}
	brks, err := breaks.Compute(values, breaks.Natural, breaks.WithClasses(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 5, 9}, brks)

	fit, err := breaks.GVF(values, brks)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fit, eps)

	fit, err = breaks.GVF(values, []float64{1, 9})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, fit, eps, "a single class explains nothing")

	_, err = breaks.GVF(values, []float64{9, 1})
	assert.ErrorIs(t, err, breaks.ErrInvalidInput)
}

func TestGVF_NaturalBeatsEqualOnSkew(t *testing.T) {
	values := skewed()
	nat, err := breaks.Compute(values, breaks.Natural, breaks.WithClasses(4))
	require.NoError(t, err)
	eq, err := breaks.Compute(values, breaks.Equal, breaks.WithClasses(4))
	require.NoError(t, err)

	gn, err := breaks.GVF(values, nat)
	require.NoError(t, err)
	ge, err := breaks.GVF(values, eq)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, gn, ge)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]breaks.Algorithm{
		"equal":     breaks.Equal,
		"Histogram": breaks.Equal,
		"quantile":  breaks.Quantile,
		"stdev":     breaks.StdDev,
		"pretty":    breaks.Pretty,
		" natural ": breaks.Natural,
		"JENKS":     breaks.Natural,
		"headtail":  breaks.HeadTail,
		"unique":    breaks.Unique,
	}
	for name, want := range cases {
		got, err := breaks.ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := breaks.ParseAlgorithm("kmeans")
	assert.ErrorIs(t, err, breaks.ErrUnknownAlgorithm)
}

func TestAlgorithm_TextRoundTrip(t *testing.T) {
	var a breaks.Algorithm
	require.NoError(t, a.UnmarshalText([]byte("headtail")))
	assert.Equal(t, breaks.HeadTail, a)

	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "headtail", string(text))

	_, err = breaks.Algorithm(-1).MarshalText()
	assert.ErrorIs(t, err, breaks.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(-1)", breaks.Algorithm(-1).String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, breaks.Validate([]float64{0, 0, 1}))
	assert.ErrorIs(t, breaks.Validate([]float64{1}), breaks.ErrInvalidInput)
	assert.ErrorIs(t, breaks.Validate([]float64{2, 1}), breaks.ErrInvalidInput)
	assert.ErrorIs(t, breaks.Validate([]float64{0, math.Inf(1)}), breaks.ErrInvalidInput)
}

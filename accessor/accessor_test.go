// SPDX-License-Identifier: MIT

package accessor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type score float64

type city struct {
	Name string
	Pop  any
}

func TestIdentity(t *testing.T) {
	v, err := accessor.Identity[int]()(42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	_, err = accessor.Identity[float64]()(math.NaN())
	assert.ErrorIs(t, err, accessor.ErrNonNumeric, "NaN has no place in a total order")

	_, err = accessor.Identity[float64]()(math.Inf(-1))
	assert.ErrorIs(t, err, accessor.ErrNonNumeric)
}

func TestToFloat(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"int", 7, 7, true},
		{"uint8", uint8(200), 200, true},
		{"float32", float32(1.5), 1.5, true},
		{"string", " 3.25 ", 3.25, true},
		{"exponent", "1e3", 1000, true},
		{"bytes", []byte("-2"), -2, true},
		{"named float", score(9.5), 9.5, true},
		{"expression", "1+2", 0, false},
		{"word", "abc", 0, false},
		{"nan text", "NaN", 0, false},
		{"inf text", "+Inf", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
		{"struct", struct{}{}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := accessor.ToFloat(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, accessor.ErrNonNumeric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtract_FailsOnFirstBadRecord(t *testing.T) {
	items := []city{{"a", 1}, {"b", "x"}, {"c", 3}}
	acc := accessor.Coerce(func(c city) any { return c.Pop })

	_, _, err := accessor.Extract(items, acc, false)
	assert.ErrorIs(t, err, accessor.ErrNonNumeric)
	assert.Contains(t, err.Error(), "item 1")
}

func TestExtract_DiscardsBadRecords(t *testing.T) {
	items := []city{{"a", 1}, {"b", "x"}, {"c", "3"}, {"d", nil}}
	acc := accessor.Coerce(func(c city) any { return c.Pop })

	kept, values, err := accessor.Extract(items, acc, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, values)
	require.Len(t, kept, 2)
	assert.Equal(t, "a", kept[0].Name)
	assert.Equal(t, "c", kept[1].Name)
}

func TestSorted_StableAndNonMutating(t *testing.T) {
	items := []city{{"x", 2.0}, {"y", 1.0}, {"z", 2.0}, {"w", 0.5}}
	acc := accessor.Field(func(c city) float64 { return c.Pop.(float64) })

	kept, values, err := accessor.Sorted(items, acc, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 2, 2}, values)

	names := make([]string, len(kept))
	for i, c := range kept {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"w", "y", "x", "z"}, names, "ties keep input order")
	assert.Equal(t, "x", items[0].Name, "input slice untouched")
}

func TestConstructors_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { accessor.Field[int](nil) })
	assert.Panics(t, func() { accessor.Coerce[int](nil) })
}

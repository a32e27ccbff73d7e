// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/katalvlaran/choropleth/config"
	"github.com/katalvlaran/choropleth/interp"
)

const doc = `
log_level: debug
input:
  column: 1
  header: true
classifications:
  - name: fill
    algorithm: jenks
    classes: 3
    stops: [[255, 255, 255], [0, 0, 255]]
  - name: size
    breaks: [0, 10, 100]
    stops: [2, 12]
    out_of_range: drop
`

func TestParse(t *testing.T) {
	f, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "debug", f.LogLevel)
	assert.Equal(t, 1, f.Input.Column)
	assert.True(t, f.Input.Header)
	require.Len(t, f.Classifications, 2)

	fill := f.Classifications[0]
	assert.Equal(t, []config.Stop{{255, 255, 255}, {0, 0, 255}}, fill.Stops)
	spec, err := fill.Spec()
	require.NoError(t, err)
	assert.Equal(t, "natural", spec.String())

	size := f.Classifications[1]
	assert.Equal(t, []config.Stop{{2}, {12}}, size.Stops)
	spec, err = size.Spec()
	require.NoError(t, err)
	assert.Equal(t, "custom", spec.String())
	assert.Len(t, size.Options(), 1)
	assert.Equal(t, []interp.Value{interp.Scalar(2), interp.Scalar(12)}, size.ValueStops())
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":          ``,
		"no stops":       "classifications:\n  - name: a\n    algorithm: equal\n",
		"no source":      "classifications:\n  - name: a\n    stops: [1]\n",
		"both sources":   "classifications:\n  - name: a\n    algorithm: equal\n    breaks: [0, 1]\n    stops: [1]\n",
		"bad algorithm":  "classifications:\n  - name: a\n    algorithm: fisher\n    stops: [1]\n",
		"short breaks":   "classifications:\n  - name: a\n    breaks: [0]\n    stops: [1]\n",
		"bad ratio":      "classifications:\n  - name: a\n    algorithm: headtail\n    head_tail_ratio: 2\n    stops: [1]\n",
		"bad policy":     "classifications:\n  - name: a\n    algorithm: equal\n    out_of_range: clamp\n    stops: [1]\n",
		"bad level":      "log_level: loud\nclassifications:\n  - name: a\n    algorithm: equal\n    stops: [1]\n",
		"unknown key":    "classifications:\n  - name: a\n    algorithm: equal\n    stops: [1]\n    colour: red\n",
		"ragged stops":   "classifications:\n  - name: a\n    algorithm: equal\n    stops: [[1, 2], [3]]\n",
		"empty stop":     "classifications:\n  - name: a\n    algorithm: equal\n    stops: [[]]\n",
		"mapping stop":   "classifications:\n  - name: a\n    algorithm: equal\n    stops: [{r: 1}]\n",
		"duplicate name": "classifications:\n  - name: a\n    algorithm: equal\n    stops: [1]\n  - name: a\n    algorithm: pretty\n    stops: [1]\n",
		"long delimiter": "input:\n  delimiter: ';;'\nclassifications:\n  - name: a\n    algorithm: equal\n    stops: [1]\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(src))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Classifications, 2)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	f, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	items := []float64{1, 2, 3, 50, 60, 500}
	m, err := config.Build(f, items, accessor.Identity[float64]())
	require.NoError(t, err)
	assert.Equal(t, []string{"fill", "size"}, m.Names())

	pairs, err := m.Pairs()
	require.NoError(t, err)
	var dropped int
	for item, row := range pairs {
		assert.Contains(t, row, "fill")
		if _, ok := row["size"]; !ok {
			assert.Equal(t, 500.0, item)
			dropped++
		}
	}
	assert.Equal(t, 1, dropped)
}

// SPDX-License-Identifier: MIT

package config_test

import (
	"fmt"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/katalvlaran/choropleth/config"
)

func ExampleParse() {
	f, err := config.Parse([]byte(`
classifications:
  - name: fill
    algorithm: equal
    classes: 2
    stops: [[255, 255, 255], [0, 0, 255]]
`))
	if err != nil {
		panic(err)
	}

	m, err := config.Build(f, []float64{0, 2, 7, 10}, accessor.Identity[float64]())
	if err != nil {
		panic(err)
	}
	c, _ := m.Get("fill")
	fmt.Println(c.Algorithm(), c.Breaks(), c.ClassValues())
	// Output: equal [0 5 10] [(255,255,255) (0,0,255)]
}

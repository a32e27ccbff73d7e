// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/katalvlaran/choropleth/classify"
)

// Build registers every classification of f on a classify.Multi over items.
// extra options (a logger, typically) are appended to each classification.
func Build[T any](f *File, items []T, acc accessor.Func[T], extra ...classify.Option) (*classify.Multi[T], error) {
	m := classify.NewMulti(items)
	for _, c := range f.Classifications {
		spec, err := c.Spec()
		if err != nil {
			return nil, fmt.Errorf("config: %q: %w", c.Name, err)
		}
		opts := append(c.Options(), extra...)
		if err = m.Add(c.Name, spec, c.ValueStops(), acc, opts...); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SPDX-License-Identifier: MIT

package classify

import (
	"fmt"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/katalvlaran/choropleth/interp"
)

// Multi runs several named classifications over one slice of items, e.g. a
// fill color by population and a symbol size by area.
type Multi[T any] struct {
	items  []T
	names  []string
	byName map[string]*Classifier[T]
}

// NewMulti returns an empty Multi over items.
func NewMulti[T any](items []T) *Multi[T] {
	return &Multi[T]{items: items, byName: make(map[string]*Classifier[T])}
}

// Add registers a classification under name. Errors are those of New, plus
// ErrDuplicateName.
func (m *Multi[T]) Add(name string, spec BreaksSpec, stops []interp.Value, acc accessor.Func[T], opts ...Option) error {
	if _, ok := m.byName[name]; ok {
		return classifyErrorf(opAdd, fmt.Errorf("%w: %q", ErrDuplicateName, name))
	}
	c, err := New(m.items, spec, stops, acc, opts...)
	if err != nil {
		return classifyErrorf(opAdd, fmt.Errorf("%q: %w", name, err))
	}
	m.names = append(m.names, name)
	m.byName[name] = c

	return nil
}

// Names lists the classification names in insertion order.
func (m *Multi[T]) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Get returns the classification registered under name.
func (m *Multi[T]) Get(name string) (*Classifier[T], bool) {
	c, ok := m.byName[name]
	return c, ok
}

// Update refreshes every classification concurrently. Each one commits on
// its own success; the first error is returned.
func (m *Multi[T]) Update() error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, name := range m.names {
		c := m.byName[name]
		g.Go(func() error {
			if err := c.Update(); err != nil {
				return fmt.Errorf("%q: %w", name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// Pairs yields every item in input order with the value each classification
// assigned to it. A classification that left the item out has no entry.
func (m *Multi[T]) Pairs() (iter.Seq2[T, map[string]interp.Value], error) {
	assigned := make(map[string][]interp.Value, len(m.names))
	for _, name := range m.names {
		vals, err := m.byName[name].Assign()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		assigned[name] = vals
	}
	items := m.items

	return func(yield func(T, map[string]interp.Value) bool) {
		for i, item := range items {
			row := make(map[string]interp.Value, len(assigned))
			for name, vals := range assigned {
				if vals[i] != nil {
					row[name] = vals[i]
				}
			}
			if !yield(item, row) {
				return
			}
		}
	}, nil
}

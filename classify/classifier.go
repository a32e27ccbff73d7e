// SPDX-License-Identifier: MIT

package classify

import (
	"iter"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/katalvlaran/choropleth/breaks"
	"github.com/katalvlaran/choropleth/interp"
	"github.com/katalvlaran/choropleth/split"
)

// Classifier classifies a slice of items. It keeps a reference to the slice;
// call Update after changing the items to refresh the cached breaks and
// class values.
type Classifier[T any] struct {
	items []T
	acc   accessor.Func[T]
	spec  BreaksSpec
	stops []interp.Value
	opts  Options

	brks   []float64
	values []interp.Value
}

// Class is one resolved class: its position, range, output value and members.
type Class[T any] struct {
	Index   int
	Range   split.Range
	Value   interp.Value
	Members []T
}

// New builds a Classifier and runs Update once.
//
// Errors: ErrNilAccessor, plus everything Update may return.
func New[T any](items []T, spec BreaksSpec, stops []interp.Value, acc accessor.Func[T], opts ...Option) (*Classifier[T], error) {
	if acc == nil {
		return nil, classifyErrorf(opNew, ErrNilAccessor)
	}
	own := make([]interp.Value, len(stops))
	for i, s := range stops {
		own[i] = interp.Tuple(s...)
	}

	c := &Classifier[T]{
		items: items,
		acc:   acc,
		spec:  spec,
		stops: own,
		opts:  gatherOptions(opts),
	}
	if err := c.Update(); err != nil {
		return nil, err
	}

	return c, nil
}

// Update resolves the break sequence and the per-class values.
//
// Implementation:
//   - Stage 1 (Breaks): algorithm → breaks.Compute over the current item
//     values; explicit → validated copy; unique → none.
//   - Stage 2 (Values): unique → stops as given; one class → the first stop;
//     otherwise interp.ClassValues(len(breaks)-1, stops).
//   - Stage 3 (Commit): cached state changes only when both stages succeed.
//
// Calling Update twice on unchanged items yields identical results.
//
// Errors: breaks.ErrInvalidInput (no usable values, bad custom breaks),
// accessor.ErrNonNumeric, ErrNoStops and the interp sentinels.
func (c *Classifier[T]) Update() error {
	var (
		brks   []float64
		values []interp.Value
		err    error
	)

	// Stage 1 (Breaks).
	switch c.spec.kind {
	case kindAlgorithm:
		var vals []float64
		if _, vals, err = accessor.Extract(c.items, c.acc, c.opts.DiscardInvalid); err != nil {
			return classifyErrorf(opUpdate, err)
		}
		if brks, err = breaks.Compute(vals, c.spec.algo, c.spec.opts...); err != nil {
			return classifyErrorf(opUpdate, err)
		}
	case kindBreaks:
		if err = breaks.Validate(c.spec.brks); err != nil {
			return classifyErrorf(opUpdate, err)
		}
		brks = c.spec.brks
	}

	// Stage 2 (Values).
	switch {
	case c.spec.kind == kindUnique:
		if len(c.stops) == 0 {
			return classifyErrorf(opUpdate, ErrNoStops)
		}
		if _, err = interp.Shape(c.stops); err != nil {
			return classifyErrorf(opUpdate, err)
		}
		values = c.stops
	case len(brks) == 2:
		if _, err = interp.Shape(c.stops); err != nil {
			return classifyErrorf(opUpdate, err)
		}
		values = []interp.Value{c.stops[0]}
	default:
		if values, err = interp.ClassValues(len(brks)-1, c.stops); err != nil {
			return classifyErrorf(opUpdate, err)
		}
	}

	// Stage 3 (Commit).
	c.brks, c.values = brks, values
	c.opts.Logger.Debug("classification resolved",
		"algorithm", c.spec.String(),
		"items", len(c.items),
		"classes", len(values),
		"breaks", brks,
	)

	return nil
}

// Algorithm returns the name of the break specification.
func (c *Classifier[T]) Algorithm() string { return c.spec.String() }

// Breaks returns a copy of the resolved break sequence (nil in unique mode).
func (c *Classifier[T]) Breaks() []float64 {
	if c.brks == nil {
		return nil
	}
	out := make([]float64, len(c.brks))
	copy(out, c.brks)
	return out
}

// ClassValues returns a copy of the per-class values. In unique mode these
// are the stops, reused cyclically over the distinct values.
func (c *Classifier[T]) ClassValues() []interp.Value {
	out := make([]interp.Value, len(c.values))
	for i, v := range c.values {
		out[i] = interp.Tuple(v...)
	}
	return out
}

// Unique reports whether the classifier runs in unique mode.
func (c *Classifier[T]) Unique() bool { return c.spec.kind == kindUnique }

// Pairs returns a sequence of (item, class value) in class order; within a
// class items are in ascending value order. Grouping work happens lazily as
// the sequence is consumed. Items are not modified.
//
// Errors are those of split.Split / split.Unique and surface here, before
// anything is yielded.
func (c *Classifier[T]) Pairs() (iter.Seq2[T, interp.Value], error) {
	groups, err := groupsFor(c, c.items, c.acc)
	if err != nil {
		return nil, classifyErrorf(opPairs, err)
	}
	values := c.values
	unique := c.Unique()

	return func(yield func(T, interp.Value) bool) {
		class := 0
		for groups.Next() {
			v := classValue(values, class, unique)
			for _, item := range groups.Group().Members {
				if !yield(item, v) {
					return
				}
			}
			class++
		}
	}, nil
}

// Classes materializes every class with its members: a legend with data.
func (c *Classifier[T]) Classes() ([]Class[T], error) {
	groups, err := groupsFor(c, c.items, c.acc)
	if err != nil {
		return nil, classifyErrorf(opClasses, err)
	}
	unique := c.Unique()

	var out []Class[T]
	for i := 0; groups.Next(); i++ {
		g := groups.Group()
		out = append(out, Class[T]{
			Index:   i,
			Range:   g.Range,
			Value:   classValue(c.values, i, unique),
			Members: g.Members,
		})
	}

	return out, nil
}

// Assign returns the class value of every item in input order. Items left
// out of every class (discarded or dropped) get nil.
func (c *Classifier[T]) Assign() ([]interp.Value, error) {
	ids := make([]int, len(c.items))
	for i := range ids {
		ids[i] = i
	}
	byIndex := func(i int) (float64, error) { return c.acc(c.items[i]) }

	groups, err := groupsFor(c, ids, byIndex)
	if err != nil {
		return nil, classifyErrorf(opAssign, err)
	}
	out := make([]interp.Value, len(c.items))
	unique := c.Unique()
	for class := 0; groups.Next(); class++ {
		v := classValue(c.values, class, unique)
		for _, id := range groups.Group().Members {
			out[id] = v
		}
	}

	return out, nil
}

// groupsFor builds a group producer over any item type using c's resolved
// state, so Assign can walk indices instead of items.
func groupsFor[T, U any](c *Classifier[T], items []U, acc accessor.Func[U]) (split.Groups[U], error) {
	if c.Unique() {
		return split.Unique(items, acc, c.opts.splitOptions()...)
	}
	return split.Split(items, c.brks, acc, c.opts.splitOptions()...)
}

// classValue picks the value of class i: cyclic in unique mode, direct otherwise.
func classValue(values []interp.Value, i int, unique bool) interp.Value {
	if unique {
		return interp.Cycle(values, i)
	}
	return values[i]
}

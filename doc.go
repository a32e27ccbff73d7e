// Package choropleth classifies numeric data into ranges and maps every class
// to an output value: a fill color, a symbol size, an opacity.
//
// 🚀 What is choropleth?
//
//	A small, generic library for thematic maps and legends:
//		• Accessors: pull a float64 out of any item, with explicit coercion
//		• Breaks: equal, quantile, stdev, pretty, natural (Jenks), head/tail
//		• Splitting: partition, distinct values, overlapping ranges
//		• Interpolation: scalar or tuple stops spread over the classes
//		• Classifiers: cached breaks and values, refreshed with Update
//
// ✨ Why choose choropleth?
//
//   - Generic: items of any type, values through a typed accessor
//   - Lazy: groups and (item, value) pairs are produced on demand
//   - Strict: bad input fails with a sentinel error before any output
//
// Packages:
//
//	accessor/  value extraction and numeric coercion
//	breaks/    break algorithms and goodness of variance fit
//	split/     Split, Unique and Membership group iterators
//	interp/    class value interpolation
//	classify/  Classifier and Multi
//	config/    YAML classification documents
//	cmd/       the classify command
//
// Quick example:
//
//	c, err := classify.New(counties,
//		classify.ByAlgorithm(breaks.Natural, breaks.WithClasses(5)),
//		[]interp.Value{interp.Tuple(255, 255, 204), interp.Tuple(37, 52, 148)},
//		accessor.Field(func(c County) float64 { return c.Density }),
//	)
//	pairs, err := c.Pairs()
//	for county, color := range pairs { ... }
//
//	go get github.com/katalvlaran/choropleth
package choropleth

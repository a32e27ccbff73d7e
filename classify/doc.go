// SPDX-License-Identifier: MIT

// Package classify ties the pieces together: it resolves a break sequence,
// derives one output value per class and walks the items class by class.
//
// Lifecycle:
//
//	New ──► Update (breaks + class values resolved and cached) ──► Pairs / Classes / Assign
//	          ▲                                                            │
//	          └──────────── Update again after mutating items ─────────────┘
//
// Three break specifications are supported:
//
//	ByAlgorithm(breaks.Natural, breaks.WithClasses(5)):  computed from the items
//	ByBreaks([]float64{0, 10, 100}):                     used as given
//	ByUnique():                                          one class per distinct value
//
// In break mode class i gets the i-th value interpolated across the stops
// (package interp). In unique mode the stops are reused round-robin.
//
// Multi runs several named classifications over the same items and yields,
// per item, the value assigned by each of them.
//
// A Classifier is not safe for concurrent Update; concurrent reads of an
// updated Classifier are fine.
package classify

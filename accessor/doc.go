// SPDX-License-Identifier: MIT

// Package accessor turns arbitrary records into the float64 values that the
// classification packages operate on.
//
// An accessor is a plain function value:
//
//	type Func[T any] func(item T) (float64, error)
//
// Three constructors cover the usual cases:
//
//   - Identity:  numeric items are their own value.
//   - Field:     an infallible getter (e.g. a struct field).
//   - Coerce:    an explicit, fallible coercion from `any`. Strings are parsed
//     as decimal floats and nothing is ever evaluated; everything that is not a
//     number fails with ErrNonNumeric.
//
// Every accessor rejects NaN and ±Inf: classification requires a total order.
//
// Extract and Sorted evaluate an accessor once per item and either fail on the
// first bad record or, with discard=true, drop bad records silently.
package accessor

// SPDX-License-Identifier: MIT

// Package interp derives one output value per class from a handful of value
// stops: a size ramp, an opacity ramp or a multi-stop color gradient.
//
// A Value is a fixed-length tuple of float64; a scalar is a 1-tuple. Class c
// of k is mapped onto position p = c·(len(stops)-1)/(k-1) along the stops and
// interpolated linearly, coordinate by coordinate, between stops[floor(p)] and
// stops[ceil(p)]. The first class always takes the first stop and the last
// class the last stop.
//
//	ramp, _ := interp.ClassValues(5, []interp.Value{
//	  interp.Tuple(255, 255, 204), // light yellow
//	  interp.Tuple(65, 182, 196),  // teal
//	  interp.Tuple(37, 52, 148),   // dark blue
//	})
//
// Cycle serves unique-value classification: stops are reused round-robin.
package interp

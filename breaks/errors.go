// SPDX-License-Identifier: MIT
// Package breaks: sentinel errors.
//
// Callers branch with errors.Is; implementations wrap with context using %w.

package breaks

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates an empty value set, a class count below 1,
	// a non-finite value, or an option outside its domain.
	ErrInvalidInput = errors.New("breaks: invalid input")

	// ErrUnknownAlgorithm indicates a name or enum value that matches no Algorithm.
	ErrUnknownAlgorithm = errors.New("breaks: unknown algorithm")

	// ErrUniqueMode indicates that Unique was passed where a break sequence is
	// required. Unique classification groups by value instead (split.Unique).
	ErrUniqueMode = errors.New("breaks: unique mode has no break sequence")
)

// breaksErrorf prefixes err with the operation name, keeping err matchable.
func breaksErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

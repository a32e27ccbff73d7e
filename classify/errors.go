// SPDX-License-Identifier: MIT

package classify

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStops indicates a unique-mode classifier without value stops.
	ErrNoStops = errors.New("classify: no value stops")

	// ErrNilAccessor indicates a nil accessor.
	ErrNilAccessor = errors.New("classify: nil accessor")

	// ErrDuplicateName indicates a Multi classification name already in use.
	ErrDuplicateName = errors.New("classify: duplicate classification name")
)

// Operation names used for error context.
const (
	opNew     = "New"
	opUpdate  = "Update"
	opPairs   = "Pairs"
	opClasses = "Classes"
	opAssign  = "Assign"
	opAdd     = "Add"
)

func classifyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

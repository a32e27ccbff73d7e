// SPDX-License-Identifier: MIT

package split

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/choropleth/breaks"
)

var (
	// ErrValueOutOfRange indicates an item whose value lies outside the break
	// sequence under the Reject policy.
	ErrValueOutOfRange = errors.New("split: value outside break range")

	// ErrInvalidBreaks indicates a break sequence with fewer than two
	// elements, a decreasing step or a non-finite element. It also matches
	// breaks.ErrInvalidInput.
	ErrInvalidBreaks = fmt.Errorf("split: invalid break sequence: %w", breaks.ErrInvalidInput)

	// ErrInvalidRange indicates a membership range with Lower > Upper or a
	// non-finite bound.
	ErrInvalidRange = errors.New("split: invalid range")
)

// Operation names used for error context.
const (
	opSplit      = "Split"
	opSplitBy    = "SplitBy"
	opUnique     = "Unique"
	opMembership = "Membership"
)

func splitErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

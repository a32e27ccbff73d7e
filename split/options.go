// SPDX-License-Identifier: MIT

package split

import "github.com/katalvlaran/choropleth/breaks"

// OutOfRange is the policy for values outside the break sequence.
type OutOfRange int

const (
	// Reject fails the whole split with ErrValueOutOfRange.
	Reject OutOfRange = iota
	// Drop leaves out-of-range items out of every group.
	Drop
)

// String returns "reject" or "drop".
func (p OutOfRange) String() string {
	switch p {
	case Reject:
		return "reject"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration of the producers.
type Options struct {
	// OutOfRange applies to Split and SplitBy.
	OutOfRange OutOfRange
	// DiscardInvalid drops items whose accessor fails instead of failing.
	DiscardInvalid bool
	// Breaks is forwarded to breaks.Compute by SplitBy.
	Breaks []breaks.Option
}

// WithOutOfRange sets the out-of-range policy. Panics on an unknown policy.
func WithOutOfRange(p OutOfRange) Option {
	if p != Reject && p != Drop {
		panic("split: WithOutOfRange(unknown policy)")
	}
	return func(o *Options) {
		o.OutOfRange = p
	}
}

// WithDiscardInvalid drops items the accessor cannot convert.
func WithDiscardInvalid() Option {
	return func(o *Options) {
		o.DiscardInvalid = true
	}
}

// WithBreakOptions forwards options to breaks.Compute (SplitBy only).
func WithBreakOptions(opts ...breaks.Option) Option {
	return func(o *Options) {
		o.Breaks = append(o.Breaks, opts...)
	}
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

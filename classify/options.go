// SPDX-License-Identifier: MIT

package classify

import (
	"log/slog"

	"github.com/katalvlaran/choropleth/split"
)

// Option mutates Options.
type Option func(*Options)

// Options configures a Classifier.
type Options struct {
	// OutOfRange applies to explicit break sequences; computed ones always
	// cover every value.
	OutOfRange split.OutOfRange
	// DiscardInvalid drops items whose accessor fails.
	DiscardInvalid bool
	// Logger receives debug records on Update. Defaults to a discarding logger.
	Logger *slog.Logger
}

// WithOutOfRange sets the policy for items outside custom breaks.
// Panics on an unknown policy.
func WithOutOfRange(p split.OutOfRange) Option {
	if p != split.Reject && p != split.Drop {
		panic("classify: WithOutOfRange(unknown policy)")
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

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("classify: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{Logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// splitOptions translates Options for package split.
func (o Options) splitOptions() []split.Option {
	out := []split.Option{split.WithOutOfRange(o.OutOfRange)}
	if o.DiscardInvalid {
		out = append(out, split.WithDiscardInvalid())
	}
	return out
}

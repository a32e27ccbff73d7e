// SPDX-License-Identifier: MIT
// Package breaks: functional options.
//
// Option constructors panic on nonsensical values (programmer error).
// Compute itself never panics; Options built by hand are validated and fail
// with ErrInvalidInput.

package breaks

// Defaults.
const (
	// DefaultClasses is the class count used when WithClasses is not given.
	DefaultClasses = 5

	// DefaultHeadTailRatio is the largest head fraction for which HeadTail
	// keeps recursing. 0.4 is the customary heavy-tail threshold.
	DefaultHeadTailRatio = 0.4
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration of Compute.
type Options struct {
	// Classes is the target class count k (≥ 1).
	Classes int
	// Presorted skips copying and sorting the input.
	Presorted bool
	// HeadTailRatio bounds the head fraction for HeadTail, in (0,1].
	HeadTailRatio float64
	// SampleStdDev selects the n-1 denominator for StdDev.
	SampleStdDev bool
}

// DefaultOptions returns the defaults documented above.
func DefaultOptions() Options {
	return Options{
		Classes:       DefaultClasses,
		HeadTailRatio: DefaultHeadTailRatio,
	}
}

// WithClasses sets the target class count. Panics if k < 1.
func WithClasses(k int) Option {
	if k < 1 {
		panic("breaks: WithClasses(k<1)")
	}
	return func(o *Options) {
		o.Classes = k
	}
}

// WithPresorted declares that values are already sorted ascending.
// Unsorted input under this option yields meaningless breaks.
func WithPresorted() Option {
	return func(o *Options) {
		o.Presorted = true
	}
}

// WithHeadTailRatio sets the HeadTail stop fraction. Panics unless 0 < r ≤ 1.
func WithHeadTailRatio(r float64) Option {
	if !(r > 0 && r <= 1) {
		panic("breaks: WithHeadTailRatio(r∉(0,1])")
	}
	return func(o *Options) {
		o.HeadTailRatio = r
	}
}

// WithSampleStdDev makes StdDev use the sample (n-1) standard deviation.
func WithSampleStdDev() Option {
	return func(o *Options) {
		o.SampleStdDev = true
	}
}

// Apply resolves opts on top of DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// validate checks fields that may have been set without constructors.
func (o Options) validate() error {
	if o.Classes < 1 {
		return ErrInvalidInput
	}
	if !(o.HeadTailRatio > 0 && o.HeadTailRatio <= 1) {
		return ErrInvalidInput
	}

	return nil
}

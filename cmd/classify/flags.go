// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/choropleth/breaks"
	"github.com/katalvlaran/choropleth/split"
)

// algoFlags select and parameterize a breaks algorithm.
type algoFlags struct {
	name    string
	classes int
	ratio   float64
	sample  bool
}

func (f *algoFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.name, "algorithm", "a", breaks.Natural.String(), "equal, quantile, stdev, pretty, natural or headtail")
	fs.IntVarP(&f.classes, "classes", "k", breaks.DefaultClasses, "target number of classes")
	fs.Float64Var(&f.ratio, "ratio", breaks.DefaultHeadTailRatio, "head/tail stop ratio in (0, 1]")
	fs.BoolVar(&f.sample, "sample", false, "use the sample standard deviation (n-1)")
}

func (f algoFlags) algorithm() (breaks.Algorithm, error) {
	algo, err := breaks.ParseAlgorithm(f.name)
	if err != nil {
		return 0, err
	}
	if algo == breaks.Unique {
		return 0, fmt.Errorf("%w: use the unique command", breaks.ErrUniqueMode)
	}
	return algo, nil
}

// options checks the numeric flags before they reach the option
// constructors, which panic on nonsense.
func (f algoFlags) options() ([]breaks.Option, error) {
	if f.classes < 1 {
		return nil, fmt.Errorf("--classes %d: %w", f.classes, breaks.ErrInvalidInput)
	}
	if f.ratio <= 0 || f.ratio > 1 {
		return nil, fmt.Errorf("--ratio %g: %w", f.ratio, breaks.ErrInvalidInput)
	}

	opts := []breaks.Option{
		breaks.WithClasses(f.classes),
		breaks.WithHeadTailRatio(f.ratio),
	}
	if f.sample {
		opts = append(opts, breaks.WithSampleStdDev())
	}

	return opts, nil
}

// splitOptions maps the shared flags onto split options.
func (a *app) splitOptions(drop bool) []split.Option {
	var opts []split.Option
	if drop {
		opts = append(opts, split.WithOutOfRange(split.Drop))
	}
	if a.opts.discardInvalid {
		opts = append(opts, split.WithDiscardInvalid())
	}
	return opts
}

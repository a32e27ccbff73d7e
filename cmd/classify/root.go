// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/katalvlaran/choropleth/internal/logging"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	input          inputOptions
	json           bool
	logLevel       string
	discardInvalid bool
}

// app carries the state resolved once per invocation.
type app struct {
	opts globalOptions
	log  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "classify",
		Short:        "Classify numeric data into ranges for choropleth maps",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(a.opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&a.opts.input.column, "column", "c", 0, "zero-based CSV column holding the value")
	pf.BoolVar(&a.opts.input.header, "header", false, "skip the first input record")
	pf.StringVar(&a.opts.input.delimiter, "delimiter", "", "single-character field separator (default \",\")")
	pf.BoolVar(&a.opts.json, "json", false, "write JSON lines instead of text")
	pf.StringVar(&a.opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	pf.BoolVar(&a.opts.discardInvalid, "discard-invalid", false, "skip records whose value is not numeric")

	root.AddCommand(
		newBreaksCmd(a),
		newSplitCmd(a),
		newUniqueCmd(a),
		newMembershipCmd(a),
		newRunCmd(a),
	)

	return root
}

// records reads the input named by args (a path, "-" or nothing for stdin).
func (a *app) records(cmd *cobra.Command, args []string, in inputOptions) ([][]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	recs, err := readRecords(r, in)
	if err != nil {
		return nil, err
	}
	a.log.Debug("input read", "records", len(recs), "column", in.column)

	return recs, nil
}

// values reads the records and extracts the value column.
func (a *app) values(cmd *cobra.Command, args []string) ([][]string, []float64, error) {
	recs, err := a.records(cmd, args, a.opts.input)
	if err != nil {
		return nil, nil, err
	}
	kept, vals, err := accessor.Extract(recs, columnAccessor(a.opts.input.column), a.opts.discardInvalid)
	if err != nil {
		return nil, nil, fmt.Errorf("column %d: %w", a.opts.input.column, err)
	}
	if dropped := len(recs) - len(kept); dropped > 0 {
		a.log.Info("discarded non-numeric records", "count", dropped)
	}

	return kept, vals, nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/choropleth/classify"
	"github.com/katalvlaran/choropleth/config"
	"github.com/katalvlaran/choropleth/internal/logging"
	"github.com/katalvlaran/choropleth/interp"
)

type runOutput struct {
	Record  []string                `json:"record"`
	Classes map[string]interp.Value `json:"classes"`
}

func newRunCmd(a *app) *cobra.Command {
	var (
		path       string
		showLegend bool
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Apply every classification of a YAML config to the input records",
		Long: `Apply every classification of a YAML config to the input records.

Each record is written back with one extra column per classification holding
its class value (empty when the record fell outside the classification).
With --legend the class legends are printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err = a.applyConfig(cmd, cfg); err != nil {
				return err
			}

			in := a.opts.input
			in.header = false
			recs, err := a.records(cmd, args, in)
			if err != nil {
				return err
			}
			var header []string
			if a.opts.input.header && len(recs) > 0 {
				header, recs = recs[0], recs[1:]
			}

			extra := []classify.Option{classify.WithLogger(a.log)}
			if a.opts.discardInvalid {
				extra = append(extra, classify.WithDiscardInvalid())
			}
			m, err := config.Build(cfg, recs, columnAccessor(a.opts.input.column), extra...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if showLegend {
				return writeLegends(w, m)
			}
			return a.writeRecords(w, m, header)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "f", "classify.yaml", "classification config file")
	cmd.Flags().BoolVar(&showLegend, "legend", false, "print the class legends instead of the records")

	return cmd
}

// applyConfig lets the config fill in input and logging settings the user
// did not set on the command line.
func (a *app) applyConfig(cmd *cobra.Command, cfg *config.File) error {
	flags := cmd.Flags()
	if !flags.Changed("column") {
		a.opts.input.column = cfg.Input.Column
	}
	if !flags.Changed("header") {
		a.opts.input.header = cfg.Input.Header
	}
	if !flags.Changed("delimiter") {
		a.opts.input.delimiter = cfg.Input.Delimiter
	}
	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.log = log
	}
	a.log.Debug("config loaded", "classifications", len(cfg.Classifications))

	return nil
}

func writeLegends(w io.Writer, m *classify.Multi[[]string]) error {
	l := newLegend(w)
	for _, name := range m.Names() {
		c, _ := m.Get(name)
		classes, err := c.Classes()
		if err != nil {
			return err
		}
		if err = l.render(w, name, c.Algorithm(), classes); err != nil {
			return err
		}
	}

	return nil
}

// writeRecords writes every record with its class values appended, as CSV
// or JSON lines.
func (a *app) writeRecords(w io.Writer, m *classify.Multi[[]string], header []string) error {
	pairs, err := m.Pairs()
	if err != nil {
		return err
	}
	names := m.Names()

	if a.opts.json {
		for rec, row := range pairs {
			if err = writeJSON(w, runOutput{Record: rec, Classes: row}); err != nil {
				return err
			}
		}
		return nil
	}

	cw := csv.NewWriter(w)
	if header != nil {
		if err = cw.Write(append(append([]string(nil), header...), names...)); err != nil {
			return err
		}
	}
	for rec, row := range pairs {
		line := append([]string(nil), rec...)
		for _, name := range names {
			var cell string
			if v, ok := row[name]; ok {
				cell = v.String()
			}
			line = append(line, cell)
		}
		if err = cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/choropleth/breaks"
	"github.com/katalvlaran/choropleth/split"
)

func newBreaksCmd(a *app) *cobra.Command {
	var af algoFlags

	cmd := &cobra.Command{
		Use:   "breaks [file]",
		Short: "Compute a break sequence and its goodness of variance fit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := af.algorithm()
			if err != nil {
				return err
			}
			opts, err := af.options()
			if err != nil {
				return err
			}
			_, vals, err := a.values(cmd, args)
			if err != nil {
				return err
			}

			brks, err := breaks.Compute(vals, algo, opts...)
			if err != nil {
				return err
			}
			gvf, err := breaks.GVF(vals, brks)
			if err != nil {
				return err
			}
			a.log.Debug("breaks computed", "algorithm", algo, "classes", breaks.ClassCount(brks), "gvf", gvf)

			out := breaksOutput{Algorithm: algo.String(), Breaks: brks, Classes: breaks.ClassCount(brks), GVF: gvf}
			if a.opts.json {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return out.writeText(cmd.OutOrStdout())
		},
	}
	af.register(cmd)

	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	var (
		af     algoFlags
		custom string
		drop   bool
	)

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Group values into classes by an algorithm or explicit breaks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.records(cmd, args, a.opts.input)
			if err != nil {
				return err
			}
			acc := columnAccessor(a.opts.input.column)
			opts := a.splitOptions(drop)

			var groups split.Groups[[]string]
			if custom != "" {
				brks, err := parseFloats(custom)
				if err != nil {
					return fmt.Errorf("--breaks: %w", err)
				}
				if groups, err = split.Split(recs, brks, acc, opts...); err != nil {
					return err
				}
			} else {
				algo, err := af.algorithm()
				if err != nil {
					return err
				}
				bopts, err := af.options()
				if err != nil {
					return err
				}
				it, brks, err := split.SplitBy(recs, algo, acc, append(opts, split.WithBreakOptions(bopts...))...)
				if err != nil {
					return err
				}
				a.log.Debug("breaks computed", "algorithm", algo, "breaks", brks)
				groups = it
			}

			return a.writeGroups(cmd.OutOrStdout(), groups)
		},
	}
	af.register(cmd)
	cmd.Flags().StringVarP(&custom, "breaks", "b", "", "explicit comma-separated breaks, e.g. 0,10,100")
	cmd.Flags().BoolVar(&drop, "drop", false, "leave out values outside the breaks instead of failing")

	return cmd
}

func newUniqueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unique [file]",
		Short: "Group equal values together",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.records(cmd, args, a.opts.input)
			if err != nil {
				return err
			}
			it, err := split.Unique(recs, columnAccessor(a.opts.input.column), a.splitOptions(false)...)
			if err != nil {
				return err
			}
			return a.writeGroups(cmd.OutOrStdout(), it)
		},
	}
}

func newMembershipCmd(a *app) *cobra.Command {
	var specs []string

	cmd := &cobra.Command{
		Use:   "membership [file]",
		Short: "List the values inside each of a set of possibly overlapping ranges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(specs) == 0 {
				return fmt.Errorf("at least one --range is required")
			}
			ranges := make([]split.Range, 0, len(specs))
			for _, s := range specs {
				r, err := parseRange(s)
				if err != nil {
					return err
				}
				ranges = append(ranges, r)
			}

			recs, err := a.records(cmd, args, a.opts.input)
			if err != nil {
				return err
			}
			it, err := split.Membership(recs, ranges, columnAccessor(a.opts.input.column), a.splitOptions(false)...)
			if err != nil {
				return err
			}
			return a.writeGroups(cmd.OutOrStdout(), it)
		},
	}
	cmd.Flags().StringArrayVarP(&specs, "range", "r", nil, "inclusive range lower:upper (repeatable)")

	return cmd
}

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/refi64/zdata/pkg/zdata/output"
	"github.com/refi64/zdata/pkg/zdata/usage"
	"github.com/refi64/zdata/pkg/zdata/walker"
	"github.com/spf13/cobra"
)

func newUsageCmd(a *app) *cobra.Command {
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "usage <path>",
		Short: "Print running disk usage totals for a tree",
		Long: `Walk path and print "<apparent_KB> <actual_KB>" after every file and
directory. Apparent size is the logical byte count; actual size is the
allocated 512-byte blocks. Both are cumulative whole kilobytes.

Symbolic links are not followed and other filesystems are not entered.

Formats:
  plain    the two totals per line (default)
  json     one JSON object per line, then a summary object
  yaml     a sequence of snapshots, then a summary document
  human    human-readable sizes and the path
  pretty   styled sizes and a summary box`,
		Args: exactPath,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUsage(cmd, args[0], summaryOnly)
		},
	}

	cmd.Flags().StringP("format", "o", "", "output format: "+joinFormats())
	cmd.Flags().IntP("workers", "w", 0, "walker workers (results are still produced sequentially)")
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "print only the summary")
	_ = a.v.BindPFlag("usage.format", cmd.Flags().Lookup("format"))
	_ = a.v.BindPFlag("usage.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

// runUsage streams snapshots for root through the configured formatter.
func (a *app) runUsage(cmd *cobra.Command, root string, summaryOnly bool) error {
	formatter, err := output.Get(a.cfg.Usage.Format)
	if err != nil {
		return err
	}
	if plain, ok := formatter.(*output.PlainFormatter); ok {
		plain.Totals = summaryOnly
	}

	out := bufio.NewWriter(a.stdout)

	opts := usage.Options{Walker: walker.Options{Workers: a.cfg.Usage.Workers}}

	var emit usage.EmitFunc
	if !summaryOnly {
		emit = func(s usage.Snapshot) error {
			return formatter.WriteSnapshot(out, s)
		}
	}

	summary, err := usage.Compute(cmd.Context(), root, opts, emit)
	if err != nil {
		// Snapshots written before the failure are still reported.
		_ = out.Flush()
		return err
	}

	if err := formatter.WriteSummary(out, summary); err != nil {
		return err
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// joinFormats lists the registered formatter names for flag help.
func joinFormats() string {
	return strings.Join(output.Available(), "|")
}

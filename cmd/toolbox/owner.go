package main

import (
	"fmt"

	"github.com/refi64/zdata/pkg/zdata/output"
	"github.com/refi64/zdata/pkg/zdata/owner"
	"github.com/spf13/cobra"
)

func newOwnerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner <path>",
		Short: "Print the owning uid:gid of a path",
		Long: `Print the numeric user and group ids that own path, as uid:gid.

Symbolic links are followed. Use --names to print user:group names
instead; ids without a name are printed numerically.`,
		Args: exactPath,
		RunE: a.runOwner,
	}

	cmd.Flags().Bool("names", false, "print user:group names instead of ids")
	_ = a.v.BindPFlag("owner.names", cmd.Flags().Lookup("names"))

	return cmd
}

// runOwner prints the owner of args[0].
func (a *app) runOwner(_ *cobra.Command, args []string) error {
	o, err := owner.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("stat failed: %w", err)
	}

	_, err = fmt.Fprintln(a.stdout, output.FormatOwner(o, a.cfg.Owner.Names))
	return err
}

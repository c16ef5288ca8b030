// Package main provides getowner, which prints the uid:gid owning a file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/refi64/zdata/pkg/zdata/output"
	"github.com/refi64/zdata/pkg/zdata/owner"
	"github.com/spf13/cobra"
)

// ErrUsage is returned for a wrong argument count.
var ErrUsage = errors.New("usage: getowner <file>")

func newRootCmd(stdout io.Writer) *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "getowner <file>",
		Short: "Print the uid:gid owning a file",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			o, err := owner.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("stat failed: %w", err)
			}
			_, err = fmt.Fprintln(stdout, output.FormatOwner(o, names))
			return err
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	cmd.SetOut(stdout)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w\n%w", err, ErrUsage)
	})
	cmd.Flags().BoolVar(&names, "names", false, "print user:group names instead of ids")

	return cmd
}

// run executes getowner and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

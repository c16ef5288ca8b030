package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build-time variables set by go build -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.stdout, "toolbox %s\n", version)
			fmt.Fprintf(a.stdout, "  commit:  %s\n", commit)
			fmt.Fprintf(a.stdout, "  built:   %s\n", date)
			fmt.Fprintf(a.stdout, "  go:      %s\n", runtime.Version())
			fmt.Fprintf(a.stdout, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

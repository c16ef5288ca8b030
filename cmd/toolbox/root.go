package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/refi64/zdata/pkg/zdata/config"
	"github.com/refi64/zdata/pkg/zdata/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrUsage is returned for a wrong argument count.
var ErrUsage = errors.New("usage: toolbox [owner|usage] <path>")

// ErrInvalidAction is returned when the first argument is not a known action.
var ErrInvalidAction = errors.New("invalid action")

// app holds the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
	verbose bool

	stdout io.Writer
	stderr io.Writer
}

// newRootCmd builds the command tree writing data to stdout and
// diagnostics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      config.New(""),
		stdout: stdout,
		stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "toolbox [owner|usage] <path>",
		Short: "Report file ownership and disk usage",
		Long: `Toolbox inspects filesystem metadata.

  toolbox owner <path>   print the owning uid:gid of path
  toolbox usage <path>   print running apparent and on-disk totals in
                         kilobytes after every file and directory

The usage walk never follows symbolic links and never crosses onto
another filesystem.`,
		Args:              cobra.ArbitraryArgs,
		RunE:              runRoot,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	// "help" is an invalid action like any other; --help still works.
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w\n%w", err, ErrUsage)
	})

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ~/.config/zdata/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug output on stderr")

	rootCmd.AddCommand(
		newOwnerCmd(a),
		newUsageCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// runRoot only runs for an unknown action or a bad argument count, since
// known actions dispatch to their subcommands.
func runRoot(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return fmt.Errorf("%w: %s", ErrInvalidAction, args[0])
}

// exactPath accepts exactly one path argument.
func exactPath(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return nil
}

// setup loads configuration and starts logging before a subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd == cmd.Root() {
		return nil
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	}

	cfg, err := config.Read(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	consoleLevel := ""
	if a.verbose {
		consoleLevel = "debug"
	}

	logCfg, err := cfg.LoggingConfig(consoleLevel)
	if err != nil {
		return err
	}
	logCfg.Console = a.stderr

	// Logging is best effort; a read-only state directory must not stop
	// the tools from reporting.
	if err := logging.Init(logCfg); err != nil && a.verbose {
		fmt.Fprintf(a.stderr, "warning: logging disabled: %v\n", err)
	}

	return nil
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer func() { _ = logging.Close() }()

	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

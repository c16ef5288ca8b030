package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/refi64/zdata/pkg/zdata/config"
	"github.com/refi64/zdata/pkg/zdata/logging"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage zdata configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/zdata/config.yaml (if set)
  2. ~/.config/zdata/config.yaml

Environment variables can override config file settings using the ZDATA_ prefix:
  ZDATA_USAGE_FORMAT=json
  ZDATA_USAGE_WORKERS=4
  ZDATA_OWNER_NAMES=true`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current configuration",
			Args:  cobra.NoArgs,
			RunE:  a.runConfigShow,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show configuration file path",
			Args:  cobra.NoArgs,
			RunE:  a.runConfigPath,
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create default configuration file",
			Args:  cobra.NoArgs,
			RunE:  a.runConfigInit,
		},
	)

	return cmd
}

// runConfigShow displays the merged configuration.
func (a *app) runConfigShow(_ *cobra.Command, _ []string) error {
	w := a.stdout
	cfg := a.cfg

	configFile := a.v.ConfigFileUsed()
	if _, err := os.Stat(configFile); configFile != "" && err == nil {
		fmt.Fprintf(w, "Config file: %s\n\n", configFile)
	} else {
		fmt.Fprintf(w, "Config file: (using defaults, no file found)\n\n")
	}

	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = "(disabled; e.g. " + logging.DefaultLogPath() + ")"
	}

	fmt.Fprintln(w, "Current Configuration:")
	fmt.Fprintln(w, "----------------------")
	fmt.Fprintf(w, "usage.format:                 %s\n", cfg.Usage.Format)
	fmt.Fprintf(w, "usage.workers:                %d\n", cfg.Usage.Workers)
	fmt.Fprintf(w, "owner.names:                  %t\n", cfg.Owner.Names)
	fmt.Fprintf(w, "logging.level:                %s\n", cfg.Logging.Level)
	fmt.Fprintf(w, "logging.path:                 %s\n", logPath)
	fmt.Fprintf(w, "logging.rotation.max_size:    %s\n", cfg.Logging.Rotation.MaxSize)
	fmt.Fprintf(w, "logging.rotation.max_age:     %d days\n", cfg.Logging.Rotation.MaxAge)
	fmt.Fprintf(w, "logging.rotation.max_backups: %d\n", cfg.Logging.Rotation.MaxBackups)
	fmt.Fprintf(w, "logging.rotation.daily:       %t\n", cfg.Logging.Rotation.Daily)

	components := make([]string, 0, len(cfg.Logging.Components))
	for name := range cfg.Logging.Components {
		components = append(components, name)
	}
	sort.Strings(components)
	for _, name := range components {
		fmt.Fprintf(w, "logging.components.%-10s %s\n", name+":", cfg.Logging.Components[name])
	}

	fmt.Fprintln(w, "\nEnvironment Overrides:")
	fmt.Fprintln(w, "----------------------")
	envVars := []string{
		"ZDATA_USAGE_FORMAT",
		"ZDATA_USAGE_WORKERS",
		"ZDATA_OWNER_NAMES",
		"ZDATA_LOGGING_LEVEL",
		"ZDATA_LOGGING_PATH",
	}

	anyOverrides := false
	for _, name := range envVars {
		if val := os.Getenv(name); val != "" {
			fmt.Fprintf(w, "%s=%s\n", name, val)
			anyOverrides = true
		}
	}
	if !anyOverrides {
		fmt.Fprintln(w, "(none)")
	}

	return nil
}

// runConfigPath prints the config file path.
func (a *app) runConfigPath(_ *cobra.Command, _ []string) error {
	path := a.cfgFile
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(a.stdout, path)
	return nil
}

// runConfigInit writes a default config file unless one exists.
func (a *app) runConfigInit(_ *cobra.Command, _ []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	created, err := config.WriteDefault()
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if created {
		fmt.Fprintf(a.stdout, "Created default config file: %s\n", path)
	} else {
		fmt.Fprintf(a.stdout, "Config file already exists: %s\n", path)
	}
	return nil
}

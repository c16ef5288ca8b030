package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/refi64/zdata/pkg/zdata/logging"
	"github.com/spf13/viper"
)

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSize    string `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Daily      bool   `mapstructure:"daily"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Rotation   RotationConfig    `mapstructure:"rotation"`
	Components map[string]string `mapstructure:"components"`
}

// UsageConfig configures the usage command.
type UsageConfig struct {
	Format  string `mapstructure:"format"`
	Workers int    `mapstructure:"workers"`
}

// OwnerConfig configures the owner command.
type OwnerConfig struct {
	Names bool `mapstructure:"names"`
}

// Config represents the application configuration.
type Config struct {
	Usage   UsageConfig   `mapstructure:"usage"`
	Owner   OwnerConfig   `mapstructure:"owner"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// New returns a viper instance with config paths, environment binding and
// defaults set up. If cfgFile is non-empty it is used instead of searching
// the config directories.
//
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/zdata/config.yaml
//   - $HOME/.config/zdata/config.yaml
//
// Environment variables are prefixed with ZDATA_ (e.g., ZDATA_USAGE_FORMAT).
func New(cfgFile string) *viper.Viper {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			v.AddConfigPath(filepath.Join(xdgConfigHome, appName))
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", appName))
		}
	}

	v.SetEnvPrefix("ZDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("usage.format", DefaultFormat)
	v.SetDefault("usage.workers", DefaultWorkers)
	v.SetDefault("owner.names", DefaultOwnerNames)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "") // Empty disables the log file
	v.SetDefault("logging.rotation.max_size", DefaultMaxSize)
	v.SetDefault("logging.rotation.max_age", DefaultMaxAge)
	v.SetDefault("logging.rotation.max_backups", DefaultMaxBackups)
	v.SetDefault("logging.rotation.daily", true)
	v.SetDefault("logging.components", DefaultComponents)

	return v
}

// Read reads the config file into v and unmarshals the merged result.
// A missing file in the search path is not an error; an explicitly
// configured file that cannot be read is.
func Read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	path, err := ExpandPath(cfg.Logging.Path)
	if err != nil {
		return nil, err
	}
	cfg.Logging.Path = path

	return &cfg, nil
}

// Load loads configuration from the default locations and environment.
func Load() (*Config, error) {
	return Read(New(""))
}

// LoggingConfig converts the file settings into a logging.Config.
// consoleLevel is passed through unchanged; empty disables console output.
func (c *Config) LoggingConfig(consoleLevel string) (logging.Config, error) {
	rotation := logging.RotationConfig{
		MaxAge:     c.Logging.Rotation.MaxAge,
		MaxBackups: c.Logging.Rotation.MaxBackups,
		Daily:      c.Logging.Rotation.Daily,
	}
	if c.Logging.Rotation.MaxSize != "" {
		size, err := humanize.ParseBytes(c.Logging.Rotation.MaxSize)
		if err != nil {
			return logging.Config{}, fmt.Errorf("invalid logging.rotation.max_size %q: %w", c.Logging.Rotation.MaxSize, err)
		}
		rotation.MaxSize = int64(size)
	}

	return logging.Config{
		Level:        c.Logging.Level,
		Path:         c.Logging.Path,
		Rotation:     rotation,
		Components:   c.Logging.Components,
		ConsoleLevel: consoleLevel,
	}, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

// ConfigPath returns the path of the default config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// WriteDefault writes a default config file if none exists and reports
// whether it created one.
func WriteDefault() (bool, error) {
	if err := EnsureConfigDir(); err != nil {
		return false, err
	}

	configPath, err := ConfigPath()
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# zdata configuration

usage:
  # Output format: plain, json, yaml, human, pretty
  format: %s
  # Walker workers; callbacks are always serialized
  workers: %d

owner:
  # Print user:group names instead of numeric ids
  names: %t

logging:
  # Log level: debug, info, warn, error
  level: %s
  # Log file path; empty disables file logging
  # (suggested: %s)
  path: ""
  rotation:
    max_size: %s
    max_age: %d       # days
    max_backups: %d
    daily: true
  components:
    walker: info
    usage: info
    owner: info
`, DefaultFormat, DefaultWorkers, DefaultOwnerNames, DefaultLogLevel, logging.DefaultLogPath(), DefaultMaxSize, DefaultMaxAge, DefaultMaxBackups)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write default config: %w", err)
	}

	return true, nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

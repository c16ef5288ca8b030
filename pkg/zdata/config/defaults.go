// Package config provides configuration management for the zdata tools.
package config

// Default configuration values for zdata. With no config file and no
// environment overrides the tools print numeric owners and plain totals.
const (
	// DefaultFormat is the usage output format.
	DefaultFormat = "plain"

	// DefaultWorkers is the number of walker workers.
	DefaultWorkers = 1

	// DefaultOwnerNames controls whether owner prints user:group names.
	DefaultOwnerNames = false

	// DefaultLogLevel is the log file level.
	DefaultLogLevel = "info"

	// DefaultMaxSize is the log size that triggers rotation.
	DefaultMaxSize = "10MiB"

	// DefaultMaxAge is the number of days rotated logs are kept.
	DefaultMaxAge = 30

	// DefaultMaxBackups is the number of rotated logs kept.
	DefaultMaxBackups = 5

	// appName names the config and state directories.
	appName = "zdata"
)

// DefaultComponents holds the per-component log levels.
var DefaultComponents = map[string]string{
	"walker": "info",
	"usage":  "info",
	"owner":  "info",
}

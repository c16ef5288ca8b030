// Package logging provides component loggers for the zdata tools.
// Diagnostics go to a rotating log file; stdout is never written so the
// tools' data output stays machine readable.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info"}); err != nil {
//	    return err
//	}
//	defer logging.Close()
//
//	logger := logging.Get("usage")
//	logger.Info("walk started", "path", "/data")
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) toCharmLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the default log level (debug, info, warn, error).
	Level string

	// Path is the log file path. Empty disables file output.
	Path string

	// Rotation configures log file rotation.
	Rotation RotationConfig

	// Components maps component names to their log levels.
	Components map[string]string

	// ConsoleLevel enables stderr output at the given level.
	// Empty disables console output.
	ConsoleLevel string

	// Console overrides the console writer. Defaults to os.Stderr.
	Console io.Writer
}

// Logger wraps charmbracelet/log with a component prefix.
type Logger struct {
	file    *log.Logger
	console *log.Logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

func (l *Logger) log(level Level, msg string, args ...interface{}) {
	h := globalState.handle(l)
	logTo(h.file, level, msg, args...)
	if h.console != nil {
		logTo(h.console, level, msg, args...)
	}
}

func logTo(logger *log.Logger, level Level, msg string, args ...interface{}) {
	switch level {
	case LevelDebug:
		logger.Debug(msg, args...)
	case LevelInfo:
		logger.Info(msg, args...)
	case LevelWarn:
		logger.Warn(msg, args...)
	case LevelError:
		logger.Error(msg, args...)
	}
}

// state holds the global logging state.
//
// Loggers are handed out as stable pointers so packages can keep them in
// package-level vars; Init swaps the underlying charm loggers in place.
type state struct {
	mu          sync.RWMutex
	initialized bool
	writer      *RotatingWriter
	level       Level
	components  map[string]Level
	loggers     map[string]*Logger

	consoleEnabled bool
	consoleLevel   Level
	console        io.Writer
}

var globalState = &state{
	loggers:    make(map[string]*Logger),
	components: make(map[string]Level),
}

// handle returns a consistent snapshot of l's underlying loggers.
func (s *state) handle(l *Logger) Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *l
}

// Init initializes the logging system with the given configuration.
// Before Init is called, all loggers discard their output. An empty
// cfg.Path disables the log file; nothing is created on disk and only the
// console sink, if enabled, receives records.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if globalState.initialized {
		if globalState.writer != nil {
			if err := globalState.writer.Close(); err != nil {
				return fmt.Errorf("closing existing writer: %w", err)
			}
			globalState.writer = nil
		}
		globalState.initialized = false
		for component, logger := range globalState.loggers {
			*logger = globalState.build(component)
		}
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	components := make(map[string]Level, len(cfg.Components))
	for comp, lvl := range cfg.Components {
		parsed, err := ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("parsing level for component %s: %w", comp, err)
		}
		components[comp] = parsed
	}

	consoleEnabled := false
	var consoleLevel Level
	if cfg.ConsoleLevel != "" {
		consoleLevel, err = ParseLevel(cfg.ConsoleLevel)
		if err != nil {
			return fmt.Errorf("parsing console level: %w", err)
		}
		consoleEnabled = true
	}

	var writer *RotatingWriter
	if cfg.Path != "" {
		writer, err = NewRotatingWriter(cfg.Path, cfg.Rotation)
		if err != nil {
			return fmt.Errorf("creating log writer: %w", err)
		}
	}

	globalState.writer = writer
	globalState.level = level
	globalState.components = components
	globalState.consoleEnabled = consoleEnabled
	globalState.consoleLevel = consoleLevel
	globalState.console = cfg.Console
	if globalState.console == nil {
		globalState.console = os.Stderr
	}
	globalState.initialized = true

	for component, logger := range globalState.loggers {
		*logger = globalState.build(component)
	}

	return nil
}

// Get returns the logger for the given component, creating it on first use.
// A component level override takes precedence over the default level.
func Get(component string) *Logger {
	globalState.mu.RLock()
	if logger, ok := globalState.loggers[component]; ok {
		globalState.mu.RUnlock()
		return logger
	}
	globalState.mu.RUnlock()

	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if logger, ok := globalState.loggers[component]; ok {
		return logger
	}

	logger := new(Logger)
	*logger = globalState.build(component)
	globalState.loggers[component] = logger
	return logger
}

// build creates the charm loggers for a component.
// Must be called with globalState.mu held.
func (s *state) build(component string) Logger {
	level := s.level
	if compLevel, ok := s.components[component]; ok {
		level = compLevel
	}

	if !s.initialized || s.writer == nil {
		l := Logger{
			file: log.NewWithOptions(io.Discard, log.Options{
				Level:  level.toCharmLevel(),
				Prefix: component,
			}),
		}
		if s.initialized && s.consoleEnabled {
			l.console = s.consoleLogger(component)
		}
		return l
	}

	l := Logger{
		file: log.NewWithOptions(s.writer, log.Options{
			Level:           level.toCharmLevel(),
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          component,
		}),
	}

	if s.consoleEnabled {
		l.console = s.consoleLogger(component)
	}

	return l
}

func (s *state) consoleLogger(component string) *log.Logger {
	return log.NewWithOptions(s.console, log.Options{
		Level:           s.consoleLevel.toCharmLevel(),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          component,
	})
}

// Close flushes and closes the log file. Loggers go back to discarding.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if !globalState.initialized {
		return nil
	}

	var closeErr error
	if globalState.writer != nil {
		if err := globalState.writer.Close(); err != nil {
			closeErr = fmt.Errorf("closing log writer: %w", err)
		}
		globalState.writer = nil
	}

	globalState.initialized = false
	globalState.consoleEnabled = false
	globalState.components = make(map[string]Level)
	for component, logger := range globalState.loggers {
		*logger = globalState.build(component)
	}

	return closeErr
}

// DefaultLogPath returns $XDG_STATE_HOME/zdata/zdata.log, the suggested
// value for Config.Path. Init never falls back to it.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "zdata", "zdata.log")
}

// DefaultConfig returns a configuration with sensible defaults. File
// logging is off until Path is set.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		Rotation: DefaultRotationConfig(),
	}
}

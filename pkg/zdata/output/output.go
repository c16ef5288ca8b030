// Package output provides formatters for the running totals produced by
// the usage command, and for owner lookups.
//
// Formatters stream: WriteSnapshot is called once per qualifying node as
// the walk progresses and WriteSummary once at the end, so nothing is
// buffered between nodes.
//
// Basic usage:
//
//	formatter, err := output.Get("plain")
//	if err != nil {
//	    return err
//	}
//	summary, err := usage.Compute(ctx, root, opts, func(s usage.Snapshot) error {
//	    return formatter.WriteSnapshot(os.Stdout, s)
//	})
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/refi64/zdata/pkg/zdata/owner"
	"github.com/refi64/zdata/pkg/zdata/types"
	"github.com/refi64/zdata/pkg/zdata/usage"
)

// Formatter is the interface that all usage formatters must implement.
type Formatter interface {
	// WriteSnapshot writes one running total.
	WriteSnapshot(w io.Writer, s usage.Snapshot) error

	// WriteSummary writes the final summary. Formatters that only stream
	// snapshots write nothing.
	WriteSummary(w io.Writer, s usage.Summary) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s (available: %s)", name, strings.Join(r.names(), ", "))
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}

// FormatOwner renders an owner as "uid:gid", or as "user:group" when
// names is set. Ids without a name are printed numerically.
func FormatOwner(o types.Owner, names bool) string {
	if !names {
		return o.String()
	}
	user, group := owner.Names(o)
	return user + ":" + group
}

// formatDuration formats a duration in a human-friendly way.
func formatDuration(d time.Duration) string {
	sec := d.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

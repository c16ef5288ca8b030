package usage

import (
	"context"
	"time"

	"github.com/refi64/zdata/pkg/zdata/logging"
	"github.com/refi64/zdata/pkg/zdata/types"
	"github.com/refi64/zdata/pkg/zdata/walker"
)

// logger is the package-level logger for usage computation.
var logger = logging.Get("usage")

// Snapshot is the running total observed right after a qualifying node.
type Snapshot struct {
	// Path is the node that produced this snapshot.
	Path string `json:"path"`

	// ApparentKiB is the cumulative apparent size in whole kilobytes.
	ApparentKiB int64 `json:"apparent_kib"`

	// ActualKiB is the cumulative disk usage in whole kilobytes.
	ActualKiB int64 `json:"actual_kib"`
}

// Summary describes a completed computation.
type Summary struct {
	// Root is the path the walk started from.
	Root string `json:"root"`

	// Totals is the final state of the accumulator.
	Totals Totals `json:"-"`

	// Counted is the number of qualifying nodes (files and directories).
	Counted int64 `json:"counted"`

	// Skipped is the number of visited nodes that did not qualify.
	Skipped int64 `json:"skipped"`

	// Elapsed is the wall time of the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// Accumulator folds traversal nodes into running totals.
// It is not safe for concurrent use.
type Accumulator struct {
	totals  Totals
	counted int64
	skipped int64
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{totals: NewTotals()}
}

// Observe adds a node to the totals. It returns the new snapshot and true
// for files and directories; other node types are skipped and return false.
func (a *Accumulator) Observe(n types.Node) (Snapshot, bool) {
	if !n.Qualifies() {
		a.skipped++
		return Snapshot{}, false
	}

	a.totals.Add(n)
	a.counted++

	return Snapshot{
		Path:        n.Path,
		ApparentKiB: a.totals.ApparentKiB(),
		ActualKiB:   a.totals.ActualKiB(),
	}, true
}

// Totals returns the current totals.
func (a *Accumulator) Totals() Totals {
	return a.totals
}

// Counted returns the number of qualifying nodes observed.
func (a *Accumulator) Counted() int64 {
	return a.counted
}

// Skipped returns the number of non-qualifying nodes observed.
func (a *Accumulator) Skipped() int64 {
	return a.skipped
}

// EmitFunc receives every snapshot in traversal order.
type EmitFunc func(Snapshot) error

// Options configures Compute.
type Options struct {
	// Walker configures the underlying traversal.
	Walker walker.Options
}

// Compute walks root and calls emit after every qualifying node.
// Any walk error or emit error aborts the computation; snapshots already
// emitted stay emitted. emit may be nil when only the summary is wanted.
func Compute(ctx context.Context, root string, opts Options, emit EmitFunc) (Summary, error) {
	start := time.Now()
	acc := NewAccumulator()

	logger.Debug("computing usage", "path", root)

	err := walker.Walk(ctx, root, opts.Walker, func(n types.Node) error {
		snap, ok := acc.Observe(n)
		if !ok || emit == nil {
			return nil
		}
		return emit(snap)
	})

	summary := Summary{
		Root:    root,
		Totals:  acc.Totals(),
		Counted: acc.Counted(),
		Skipped: acc.Skipped(),
		Elapsed: time.Since(start),
	}

	if err != nil {
		logger.Error("usage computation failed", "path", root, "err", err, "counted", summary.Counted)
		return summary, err
	}

	logger.Info("usage computed",
		"path", root,
		"apparent_kib", summary.Totals.ApparentKiB(),
		"actual_kib", summary.Totals.ActualKiB(),
		"counted", summary.Counted,
		"skipped", summary.Skipped,
		"elapsed", summary.Elapsed,
	)
	return summary, nil
}

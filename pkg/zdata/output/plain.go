package output

import (
	"fmt"
	"io"

	"github.com/refi64/zdata/pkg/zdata/usage"
)

// PlainFormatter writes "<apparent_KB> <actual_KB>" per snapshot, the
// traditional toolbox output. The summary is omitted since the last line
// already carries the final totals, unless Totals is set.
type PlainFormatter struct {
	// Totals makes WriteSummary print the final totals as one more line.
	// Used when per-node lines are suppressed.
	Totals bool
}

// WriteSnapshot writes one line of running totals.
func (f *PlainFormatter) WriteSnapshot(w io.Writer, s usage.Snapshot) error {
	_, err := fmt.Fprintf(w, "%d %d\n", s.ApparentKiB, s.ActualKiB)
	return err
}

// WriteSummary writes the final totals if Totals is set, otherwise nothing.
func (f *PlainFormatter) WriteSummary(w io.Writer, s usage.Summary) error {
	if !f.Totals {
		return nil
	}
	_, err := fmt.Fprintf(w, "%d %d\n", s.Totals.ApparentKiB(), s.Totals.ActualKiB())
	return err
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)

package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/refi64/zdata/pkg/zdata/types"
	"github.com/refi64/zdata/pkg/zdata/usage"
)

// sizeWidth is the minimum column width for human sizes ("1023 KiB").
const sizeWidth = 10

// HumanFormatter writes human-readable running totals followed by the
// path that produced them. No colors or styling are applied.
type HumanFormatter struct{}

// WriteSnapshot writes "<apparent>\t<actual>\t<path>".
func (f *HumanFormatter) WriteSnapshot(w io.Writer, s usage.Snapshot) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
		padLeft(types.FormatKiB(s.ApparentKiB), sizeWidth),
		padLeft(types.FormatKiB(s.ActualKiB), sizeWidth),
		s.Path)
	return err
}

// WriteSummary writes a single total line.
func (f *HumanFormatter) WriteSummary(w io.Writer, s usage.Summary) error {
	_, err := fmt.Fprintf(w, "total: %s apparent, %s on disk, %s nodes in %s\n",
		types.FormatKiB(s.Totals.ApparentKiB()),
		types.FormatKiB(s.Totals.ActualKiB()),
		humanize.Comma(s.Counted),
		formatDuration(s.Elapsed))
	return err
}

// padLeft pads a string with spaces on the left to achieve the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return fmt.Sprintf("%*s", width, s)
}

func init() {
	Register("human", func() Formatter {
		return &HumanFormatter{}
	})
}

// Ensure HumanFormatter implements Formatter.
var _ Formatter = (*HumanFormatter)(nil)

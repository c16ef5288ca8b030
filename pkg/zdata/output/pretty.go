package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/refi64/zdata/pkg/zdata/types"
	"github.com/refi64/zdata/pkg/zdata/usage"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// Styling is dropped automatically when stdout is not a terminal.
type PrettyFormatter struct{}

// WriteSnapshot writes one styled line of running totals.
func (f *PrettyFormatter) WriteSnapshot(w io.Writer, s usage.Snapshot) error {
	apparent := ApparentStyle.Render(padLeft(types.FormatKiB(s.ApparentKiB), sizeWidth))
	actual := ActualStyle.Render(padLeft(types.FormatKiB(s.ActualKiB), sizeWidth))
	_, err := fmt.Fprintf(w, "  %s  %s  %s\n", apparent, actual, PathStyle.Render(s.Path))
	return err
}

// WriteSummary writes the footer box.
func (f *PrettyFormatter) WriteSummary(w io.Writer, s usage.Summary) error {
	_, err := io.WriteString(w, f.formatFooter(s)+"\n")
	return err
}

// formatFooter builds the footer box with summary information.
func (f *PrettyFormatter) formatFooter(s usage.Summary) string {
	lines := []string{
		field("Root:", ValueStyle.Render(s.Root)),
		strings.Join([]string{
			field("Apparent:", ApparentStyle.Render(types.FormatKiB(s.Totals.ApparentKiB()))),
			field("On disk:", ActualStyle.Render(types.FormatKiB(s.Totals.ActualKiB()))),
		}, "  "),
		strings.Join([]string{
			field("Nodes:", ValueStyle.Render(humanize.Comma(s.Counted))),
			field("Skipped:", ValueStyle.Render(humanize.Comma(s.Skipped))),
			field("Took:", ValueStyle.Render(formatDuration(s.Elapsed))),
		}, "  "),
	}
	return FooterBox.Render(strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return LabelStyle.Render(label) + " " + value
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)

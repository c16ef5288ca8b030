package output

import (
	"encoding/json"
	"io"

	"github.com/refi64/zdata/pkg/zdata/usage"
)

// jsonSummary is the final JSON line.
type jsonSummary struct {
	Root          string `json:"root"`
	ApparentKiB   int64  `json:"apparent_kib"`
	ActualKiB     int64  `json:"actual_kib"`
	ApparentBytes int64  `json:"apparent_bytes"`
	ActualBlocks  int64  `json:"actual_blocks"`
	Counted       int64  `json:"counted"`
	Skipped       int64  `json:"skipped"`
	Elapsed       string `json:"elapsed"`
}

// JSONFormatter writes one compact JSON object per line (JSON Lines).
type JSONFormatter struct{}

// WriteSnapshot writes the snapshot as a single JSON line.
func (f *JSONFormatter) WriteSnapshot(w io.Writer, s usage.Snapshot) error {
	return json.NewEncoder(w).Encode(s)
}

// WriteSummary writes the final totals and counts as a single JSON line.
func (f *JSONFormatter) WriteSummary(w io.Writer, s usage.Summary) error {
	return json.NewEncoder(w).Encode(buildJSONSummary(s))
}

func buildJSONSummary(s usage.Summary) jsonSummary {
	return jsonSummary{
		Root:          s.Root,
		ApparentKiB:   s.Totals.ApparentKiB(),
		ActualKiB:     s.Totals.ActualKiB(),
		ApparentBytes: s.Totals.Apparent.Total(),
		ActualBlocks:  s.Totals.Actual.Total(),
		Counted:       s.Counted,
		Skipped:       s.Skipped,
		Elapsed:       s.Elapsed.String(),
	}
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)

package output

import (
	"io"

	"github.com/refi64/zdata/pkg/zdata/usage"
	"gopkg.in/yaml.v3"
)

// yamlSnapshot is one sequence item in YAML output.
type yamlSnapshot struct {
	Path        string `yaml:"path"`
	ApparentKiB int64  `yaml:"apparent_kib"`
	ActualKiB   int64  `yaml:"actual_kib"`
}

// yamlSummary is the trailing summary document.
type yamlSummary struct {
	Root          string `yaml:"root"`
	ApparentKiB   int64  `yaml:"apparent_kib"`
	ActualKiB     int64  `yaml:"actual_kib"`
	ApparentBytes int64  `yaml:"apparent_bytes"`
	ActualBlocks  int64  `yaml:"actual_blocks"`
	Counted       int64  `yaml:"counted"`
	Skipped       int64  `yaml:"skipped"`
	Elapsed       string `yaml:"elapsed"`
}

// YAMLFormatter writes snapshots as items of a top-level sequence and the
// summary as a second document, so the stream stays valid YAML while it
// is being written.
type YAMLFormatter struct {
	wrote bool
}

// WriteSnapshot appends one sequence item.
func (f *YAMLFormatter) WriteSnapshot(w io.Writer, s usage.Snapshot) error {
	data, err := yaml.Marshal([]yamlSnapshot{{
		Path:        s.Path,
		ApparentKiB: s.ApparentKiB,
		ActualKiB:   s.ActualKiB,
	}})
	if err != nil {
		return err
	}
	f.wrote = true
	_, err = w.Write(data)
	return err
}

// WriteSummary writes the summary document.
func (f *YAMLFormatter) WriteSummary(w io.Writer, s usage.Summary) error {
	data, err := yaml.Marshal(yamlSummary{
		Root:          s.Root,
		ApparentKiB:   s.Totals.ApparentKiB(),
		ActualKiB:     s.Totals.ActualKiB(),
		ApparentBytes: s.Totals.Apparent.Total(),
		ActualBlocks:  s.Totals.Actual.Total(),
		Counted:       s.Counted,
		Skipped:       s.Skipped,
		Elapsed:       s.Elapsed.String(),
	})
	if err != nil {
		return err
	}

	if f.wrote {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
	}
	_, err = w.Write(data)
	return err
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)

package output

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/refi64/zdata/pkg/zdata/types"
	"github.com/refi64/zdata/pkg/zdata/usage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testSnapshots() []usage.Snapshot {
	return []usage.Snapshot{
		{Path: "/data", ApparentKiB: 4, ActualKiB: 4},
		{Path: "/data/a.bin", ApparentKiB: 5, ActualKiB: 8},
		{Path: "/data/b.bin", ApparentKiB: 2053, ActualKiB: 2056},
	}
}

func testSummary() usage.Summary {
	totals := usage.NewTotals()
	totals.AddBytes(2053*1024 + 100)
	totals.AddBlocks(2056 * 2)
	return usage.Summary{
		Root:    "/data",
		Totals:  totals,
		Counted: 3,
		Skipped: 1,
		Elapsed: 1500 * time.Millisecond,
	}
}

func writeAll(t *testing.T, f Formatter) string {
	t.Helper()
	var buf bytes.Buffer
	for _, s := range testSnapshots() {
		require.NoError(t, f.WriteSnapshot(&buf, s))
	}
	require.NoError(t, f.WriteSummary(&buf, testSummary()))
	return buf.String()
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register("b", func() Formatter { return &PlainFormatter{} })
	r.Register("a", func() Formatter { return &JSONFormatter{} })

	assert.Equal(t, []string{"a", "b"}, r.Available())

	f, err := r.Get("a")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, f)

	_, err = r.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formatter: missing")
	assert.Contains(t, err.Error(), "a, b")
}

func TestDefaultRegistry(t *testing.T) {
	assert.Equal(t, []string{"human", "json", "plain", "pretty", "yaml"}, Available())

	for _, name := range Available() {
		f, err := Get(name)
		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}
}

func TestGetReturnsFreshInstances(t *testing.T) {
	a, err := Get("yaml")
	require.NoError(t, err)
	b, err := Get("yaml")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestPlainFormatter(t *testing.T) {
	got := writeAll(t, &PlainFormatter{})
	assert.Equal(t, "4 4\n5 8\n2053 2056\n", got)
}

func TestPlainFormatter_Totals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PlainFormatter{Totals: true}).WriteSummary(&buf, testSummary()))
	assert.Equal(t, "2053 2056\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	got := writeAll(t, &JSONFormatter{})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 4)

	var first usage.Snapshot
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, testSnapshots()[0], first)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &summary))
	assert.Equal(t, "/data", summary["root"])
	assert.EqualValues(t, 2053, summary["apparent_kib"])
	assert.EqualValues(t, 2056, summary["actual_kib"])
	assert.EqualValues(t, 2053*1024+100, summary["apparent_bytes"])
	assert.EqualValues(t, 2056*2, summary["actual_blocks"])
	assert.EqualValues(t, 3, summary["counted"])
	assert.EqualValues(t, 1, summary["skipped"])
	assert.Equal(t, "1.5s", summary["elapsed"])
}

func TestYAMLFormatter(t *testing.T) {
	got := writeAll(t, &YAMLFormatter{})

	dec := yaml.NewDecoder(strings.NewReader(got))

	var items []map[string]interface{}
	require.NoError(t, dec.Decode(&items))
	require.Len(t, items, 3)
	assert.Equal(t, "/data/a.bin", items[1]["path"])
	assert.Equal(t, 8, items[1]["actual_kib"])

	var summary map[string]interface{}
	require.NoError(t, dec.Decode(&summary))
	assert.Equal(t, 2053, summary["apparent_kib"])
	assert.Equal(t, 3, summary["counted"])

	assert.ErrorIs(t, dec.Decode(&summary), io.EOF)
}

func TestYAMLFormatter_SummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLFormatter{}).WriteSummary(&buf, testSummary()))

	assert.False(t, strings.HasPrefix(buf.String(), "---"))
	assert.Contains(t, buf.String(), "root: /data")
}

func TestHumanFormatter(t *testing.T) {
	got := writeAll(t, &HumanFormatter{})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 4)

	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "5.0 KiB", strings.TrimSpace(fields[0]))
	assert.Equal(t, "8.0 KiB", strings.TrimSpace(fields[1]))
	assert.Equal(t, "/data/a.bin", fields[2])

	assert.Equal(t, "total: 2.0 MiB apparent, 2.0 MiB on disk, 3 nodes in 1.5s", lines[3])
}

func TestPrettyFormatter(t *testing.T) {
	got := writeAll(t, &PrettyFormatter{})

	assert.Contains(t, got, "/data/b.bin")
	assert.Contains(t, got, "5.0 KiB")
	assert.Contains(t, got, "Root:")
	assert.Contains(t, got, "Apparent:")
	assert.Contains(t, got, "On disk:")
	assert.Contains(t, got, "Nodes:")
	assert.Contains(t, got, "1.5s")
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "   abc", padLeft("abc", 6))
	assert.Equal(t, "abcdef", padLeft("abcdef", 3))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m 30s"},
		{2*time.Hour + 5*time.Minute, "2h 5m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}

func TestFormatOwner(t *testing.T) {
	o := types.Owner{UID: 1000, GID: 1000}
	assert.Equal(t, "1000:1000", FormatOwner(o, false))

	// Ids missing from the user database fall back to numbers.
	missing := types.Owner{UID: 3999999999, GID: 3999999998}
	assert.Equal(t, "3999999999:3999999998", FormatOwner(missing, true))
}

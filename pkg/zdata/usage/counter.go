// Package usage computes the apparent size and actual disk usage of a
// directory tree. Totals are kept in whole kilobytes plus a sub-kilobyte
// remainder so no floating point or wide division is ever needed.
package usage

import "github.com/refi64/zdata/pkg/zdata/types"

// Counter is a fixed-point accumulator made of a whole-unit counter and a
// remainder counter measured in sub-units.
//
// Normalize folds the remainder into Whole only while it is strictly greater
// than Threshold, so after normalization Remainder may equal Threshold.
type Counter struct {
	Whole     int64
	Remainder int64
	Threshold int64
}

// Add splits n sub-units into whole units and a remainder, then normalizes.
func (c *Counter) Add(n int64) {
	c.Whole += n / c.Threshold
	c.Remainder += n % c.Threshold
	c.Normalize()
}

// Normalize moves overflow from Remainder into Whole.
func (c *Counter) Normalize() {
	for c.Remainder > c.Threshold {
		c.Remainder -= c.Threshold
		c.Whole++
	}
}

// Total reconstructs the accumulated value in sub-units.
func (c Counter) Total() int64 {
	return c.Whole*c.Threshold + c.Remainder
}

// Totals holds the running apparent and actual usage.
type Totals struct {
	// Apparent counts bytes, folded into kilobytes.
	Apparent Counter

	// Actual counts 512-byte blocks, folded into kilobytes.
	Actual Counter
}

// NewTotals returns zeroed totals with kilobyte thresholds.
func NewTotals() Totals {
	return Totals{
		Apparent: Counter{Threshold: types.KiB},
		Actual:   Counter{Threshold: types.BlocksPerKiB},
	}
}

// AddBytes adds an apparent size in bytes.
func (t *Totals) AddBytes(size int64) {
	t.Apparent.Add(size)
}

// AddBlocks adds an allocation in 512-byte blocks.
func (t *Totals) AddBlocks(blocks int64) {
	t.Actual.Add(blocks)
}

// Add adds both the size and the allocation of a node.
func (t *Totals) Add(n types.Node) {
	t.AddBytes(n.Size)
	t.AddBlocks(n.Blocks)
}

// ApparentKiB returns the whole kilobytes of apparent size.
func (t Totals) ApparentKiB() int64 {
	return t.Apparent.Whole
}

// ActualKiB returns the whole kilobytes of actual usage.
func (t Totals) ActualKiB() int64 {
	return t.Actual.Whole
}

package usage

import (
	"testing"

	"github.com/refi64/zdata/pkg/zdata/types"
	"github.com/stretchr/testify/assert"
)

func TestCounterSplit(t *testing.T) {
	sizes := []int64{0, 1, 511, 512, 1023, 1024, 1025, 2048, 4097, 123456789}

	for _, s := range sizes {
		// Before normalization the split is exact.
		whole, rem := s/types.KiB, s%types.KiB
		assert.Equal(t, s, whole*types.KiB+rem, "size %d", s)

		c := Counter{Threshold: types.KiB}
		c.Add(s)
		assert.Equal(t, s, c.Total(), "size %d", s)
		assert.Equal(t, whole, c.Whole, "size %d", s)
		assert.Equal(t, rem, c.Remainder, "size %d", s)
	}
}

func TestCounterNormalizeIsStrict(t *testing.T) {
	c := Counter{Threshold: types.KiB}

	c.Add(512)
	assert.Equal(t, int64(0), c.Whole)
	assert.Equal(t, int64(512), c.Remainder)

	// A remainder equal to the threshold is not folded.
	c.Add(512)
	assert.Equal(t, int64(0), c.Whole)
	assert.Equal(t, int64(1024), c.Remainder)

	c.Add(512)
	assert.Equal(t, int64(1), c.Whole)
	assert.Equal(t, int64(512), c.Remainder)
	assert.Equal(t, int64(1536), c.Total())
}

func TestCounterNormalizeFoldsAccumulatedRemainders(t *testing.T) {
	c := Counter{Threshold: types.KiB}

	c.Add(1000)
	c.Add(1000)

	assert.Equal(t, int64(1), c.Whole)
	assert.Equal(t, int64(976), c.Remainder)
	assert.Equal(t, int64(2000), c.Total())
}

func TestCounterBlocks(t *testing.T) {
	c := Counter{Threshold: types.BlocksPerKiB}

	c.Add(1)
	c.Add(1)
	assert.Equal(t, int64(0), c.Whole)
	assert.Equal(t, int64(2), c.Remainder)

	c.Add(1)
	assert.Equal(t, int64(1), c.Whole)
	assert.Equal(t, int64(1), c.Remainder)

	c.Add(7)
	assert.Equal(t, int64(4), c.Whole)
	assert.Equal(t, int64(2), c.Remainder)
	assert.Equal(t, int64(10), c.Total())
}

func TestCounterRemainderNeverExceedsThreshold(t *testing.T) {
	apparent := Counter{Threshold: types.KiB}
	actual := Counter{Threshold: types.BlocksPerKiB}

	var sumBytes, sumBlocks int64
	for i := int64(0); i < 5000; i++ {
		size := (i * 7919) % 5000
		blocks := (i * 31) % 9

		apparent.Add(size)
		actual.Add(blocks)
		sumBytes += size
		sumBlocks += blocks

		if apparent.Remainder > types.KiB || apparent.Remainder < 0 {
			t.Fatalf("apparent remainder %d out of range after step %d", apparent.Remainder, i)
		}
		if actual.Remainder > types.BlocksPerKiB || actual.Remainder < 0 {
			t.Fatalf("actual remainder %d out of range after step %d", actual.Remainder, i)
		}
	}

	assert.Equal(t, sumBytes, apparent.Total())
	assert.Equal(t, sumBlocks, actual.Total())
}

func TestNewTotals(t *testing.T) {
	totals := NewTotals()

	assert.Equal(t, int64(1024), totals.Apparent.Threshold)
	assert.Equal(t, int64(2), totals.Actual.Threshold)
	assert.Zero(t, totals.ApparentKiB())
	assert.Zero(t, totals.ActualKiB())
}

func TestTotalsExactKilobytes(t *testing.T) {
	totals := NewTotals()

	totals.Add(types.Node{Type: types.TypeFile, Size: 1024, Blocks: 2})
	totals.Add(types.Node{Type: types.TypeFile, Size: 2048, Blocks: 4})

	assert.Equal(t, int64(3), totals.ApparentKiB())
	assert.Equal(t, int64(0), totals.Apparent.Remainder)
	assert.Equal(t, int64(3072), totals.Apparent.Total())

	assert.Equal(t, int64(3), totals.ActualKiB())
	assert.Equal(t, int64(0), totals.Actual.Remainder)
}

func TestTotalsAddBytesAndBlocksAreIndependent(t *testing.T) {
	totals := NewTotals()

	totals.AddBytes(4096)
	assert.Equal(t, int64(4), totals.ApparentKiB())
	assert.Equal(t, int64(0), totals.ActualKiB())

	totals.AddBlocks(9)
	assert.Equal(t, int64(4), totals.ApparentKiB())
	assert.Equal(t, int64(4), totals.ActualKiB())
	assert.Equal(t, int64(1), totals.Actual.Remainder)
}

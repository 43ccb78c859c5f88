package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/vmath"
)

func TestResetSingleUnfilledRegion(t *testing.T) {
	b := New(400, 300)
	regions := b.Regions()
	require.Len(t, regions, 1)
	assert.Equal(t, core.NewRect(0, 0, 400, 300), regions[0].Rect)
	assert.False(t, regions[0].Filled)
	assert.Empty(t, b.Lines())
	assert.Equal(t, 0, b.PercentFilled())
	require.NoError(t, b.Validate())
}

func TestApplySplitVertical(t *testing.T) {
	b := New(400, 400)
	pieces := b.ApplySplit(200, core.Vertical)

	require.Len(t, pieces, 2)
	assert.Equal(t, core.NewRect(0, 0, 200, 400), pieces[0].Rect)
	assert.Equal(t, core.NewRect(200, 0, 200, 400), pieces[1].Rect)

	regions := b.Regions()
	require.Len(t, regions, 2)
	for _, r := range regions {
		assert.False(t, r.Filled, "split never fills directly")
	}

	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, SplitLine{Dir: core.Vertical, Coord: 200, From: 0, To: 400}, lines[0])
	require.NoError(t, b.Validate())
}

func TestApplySplitSkipsFilledAndUncrossed(t *testing.T) {
	b := New(400, 400)
	pieces := b.ApplySplit(100, core.Vertical)
	require.True(t, b.MarkFilled(pieces[0].Rect))

	// Horizontal cut crosses both columns but only the open one is split
	pieces = b.ApplySplit(250, core.Horizontal)
	require.Len(t, pieces, 2)
	assert.Equal(t, core.NewRect(100, 0, 300, 250), pieces[0].Rect)
	assert.Equal(t, core.NewRect(100, 250, 300, 150), pieces[1].Rect)
	assert.Len(t, b.Regions(), 3)

	// A cut on an existing edge changes nothing
	pieces = b.ApplySplit(100, core.Vertical)
	assert.Empty(t, pieces)
	assert.Len(t, b.Regions(), 3)
	require.NoError(t, b.Validate())
}

func TestMarkFilledAndPercent(t *testing.T) {
	b := New(400, 400)
	pieces := b.ApplySplit(100, core.Vertical)

	require.True(t, b.MarkFilled(pieces[0].Rect))
	assert.False(t, b.MarkFilled(pieces[0].Rect), "already filled")
	assert.False(t, b.MarkFilled(core.NewRect(1, 2, 3, 4)), "unknown rect")
	assert.Equal(t, 25, b.PercentFilled())

	pieces = b.ApplySplit(133, core.Vertical)
	require.True(t, b.MarkFilled(pieces[0].Rect))
	// (100 + 33) * 400 / 160000 = 33.25 -> floored
	assert.Equal(t, 33, b.PercentFilled())
}

func TestRegionAtPrefersOpenRegion(t *testing.T) {
	b := New(400, 400)
	pieces := b.ApplySplit(200, core.Vertical)
	require.True(t, b.MarkFilled(pieces[0].Rect))

	r, ok := b.RegionAt(core.Point{X: 200, Y: 10})
	require.True(t, ok)
	assert.False(t, r.Filled)

	r, ok = b.RegionAt(core.Point{X: 50, Y: 10})
	require.True(t, ok)
	assert.True(t, r.Filled)

	_, ok = b.RegionAt(core.Point{X: -1, Y: 10})
	assert.False(t, ok)
}

func TestRandomSplitsKeepTiling(t *testing.T) {
	rng := vmath.NewFastRand(99)
	for round := 0; round < 20; round++ {
		b := New(640, 480)
		lastPct := 0
		for i := 0; i < 40; i++ {
			dir := core.Direction(rng.Intn(2))
			lo, hi := b.Bounds().Across(dir)
			pieces := b.ApplySplit(lo+rng.Float64()*(hi-lo), dir)
			for _, p := range pieces {
				if rng.Intn(3) == 0 {
					b.MarkFilled(p.Rect)
				}
			}

			require.NoError(t, b.Validate(), "round %d split %d", round, i)
			pct := b.PercentFilled()
			assert.GreaterOrEqual(t, pct, lastPct, "fill never decreases within a level")
			assert.LessOrEqual(t, pct, 100)
			lastPct = pct
		}

		b.Reset()
		assert.Equal(t, 0, b.PercentFilled())
		assert.Len(t, b.Regions(), 1)
		assert.Empty(t, b.Lines())
	}
}

func TestValidateDetectsOverlap(t *testing.T) {
	b := New(100, 100)
	b.regions = append(b.regions, Region{Rect: core.NewRect(10, 10, 5, 5)})
	assert.ErrorIs(t, b.Validate(), ErrTiling)
}

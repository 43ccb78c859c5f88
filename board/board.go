// Package board owns the rectangular partition of the play area into filled
// (claimed) and unfilled (open) regions.
package board

import (
	"errors"
	"fmt"
	"math"

	"github.com/MansourDch/jezzball-clone/core"
)

const (
	// areaEpsilon absorbs float rounding when comparing summed areas
	areaEpsilon = 1e-6
	// edgeEpsilon absorbs rounding in X+Width after cuts at fractional positions
	edgeEpsilon = 1e-7
)

// ErrTiling reports a broken region tiling
var ErrTiling = errors.New("board tiling invariant violated")

// Region is one tile of the play area
type Region struct {
	Rect   core.Rect
	Filled bool
}

// SplitLine is a completed partition boundary. It persists for the rest of the level
type SplitLine = core.Segment

// Piece is one half of a region produced by ApplySplit
type Piece struct {
	Rect core.Rect
}

// Board holds the region tiling of a fixed-size play area
type Board struct {
	bounds  core.Rect
	regions []Region
	lines   []SplitLine
}

// New creates a board of the given size with a single unfilled region
func New(width, height float64) *Board {
	b := &Board{bounds: core.NewRect(0, 0, width, height)}
	b.Reset()
	return b
}

// Reset replaces all regions with one unfilled full-area region and drops all lines
func (b *Board) Reset() {
	b.regions = []Region{{Rect: b.bounds}}
	b.lines = b.lines[:0]
}

// Bounds returns the full play area
func (b *Board) Bounds() core.Rect {
	return b.bounds
}

// Regions returns a copy of the current tiling
func (b *Board) Regions() []Region {
	out := make([]Region, len(b.regions))
	copy(out, b.regions)
	return out
}

// Lines returns a copy of the completed split lines
func (b *Board) Lines() []SplitLine {
	out := make([]SplitLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// RegionAt returns the region containing p. Points on a shared edge resolve to
// an unfilled region when one touches p
func (b *Board) RegionAt(p core.Point) (Region, bool) {
	found := -1
	for i, r := range b.regions {
		if !r.Rect.Contains(p) {
			continue
		}
		if !r.Filled {
			return r, true
		}
		if found < 0 {
			found = i
		}
	}
	if found < 0 {
		return Region{}, false
	}
	return b.regions[found], true
}

// ApplySplit cuts every unfilled region strictly crossed by pos along dir's
// perpendicular axis into two unfilled regions divided at pos. Filled regions
// and regions not crossed are untouched. Returns the produced pieces; whether
// each becomes filled is decided by the caller via MarkFilled
func (b *Board) ApplySplit(pos float64, dir core.Direction) []Piece {
	var pieces []Piece
	next := make([]Region, 0, len(b.regions)+2)

	for _, r := range b.regions {
		lo, hi := r.Rect.Across(dir)
		if r.Filled || pos <= lo || pos >= hi {
			next = append(next, r)
			continue
		}

		first, second := cut(r.Rect, pos, dir)
		next = append(next, Region{Rect: first}, Region{Rect: second})
		pieces = append(pieces, Piece{Rect: first}, Piece{Rect: second})
	}

	b.regions = next

	from, to := b.bounds.Span(dir)
	b.lines = append(b.lines, SplitLine{Dir: dir, Coord: pos, From: from, To: to})

	return pieces
}

// cut divides r at pos; vertical lines split left/right, horizontal top/bottom
func cut(r core.Rect, pos float64, dir core.Direction) (core.Rect, core.Rect) {
	if dir == core.Vertical {
		left := core.NewRect(r.X, r.Y, pos-r.X, r.Height)
		right := core.NewRect(pos, r.Y, r.Right()-pos, r.Height)
		return left, right
	}
	top := core.NewRect(r.X, r.Y, r.Width, pos-r.Y)
	bottom := core.NewRect(r.X, pos, r.Width, r.Bottom()-pos)
	return top, bottom
}

// MarkFilled claims the unfilled region exactly matching rect
// Returns false when no such region exists
func (b *Board) MarkFilled(rect core.Rect) bool {
	for i := range b.regions {
		if b.regions[i].Rect == rect && !b.regions[i].Filled {
			b.regions[i].Filled = true
			return true
		}
	}
	return false
}

// FilledArea returns the summed area of filled regions
func (b *Board) FilledArea() float64 {
	var sum float64
	for _, r := range b.regions {
		if r.Filled {
			sum += r.Rect.Area()
		}
	}
	return sum
}

// PercentFilled returns floor(100 * filled area / board area)
// Correct only while regions never overlap, which Validate checks
func (b *Board) PercentFilled() int {
	total := b.bounds.Area()
	if total <= 0 {
		return 0
	}
	pct := int(math.Floor(100*b.FilledArea()/total + areaEpsilon))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Validate checks the tiling: every region inside the bounds, no overlaps,
// areas summing to the board area
func (b *Board) Validate() error {
	var sum float64
	for i, r := range b.regions {
		if r.Rect.Width <= 0 || r.Rect.Height <= 0 {
			return fmt.Errorf("%w: region %d has empty extent %+v", ErrTiling, i, r.Rect)
		}
		if r.Rect.X < b.bounds.X-edgeEpsilon || r.Rect.Y < b.bounds.Y-edgeEpsilon ||
			r.Rect.Right() > b.bounds.Right()+edgeEpsilon || r.Rect.Bottom() > b.bounds.Bottom()+edgeEpsilon {
			return fmt.Errorf("%w: region %d outside bounds %+v", ErrTiling, i, r.Rect)
		}
		for j := i + 1; j < len(b.regions); j++ {
			if overlaps(r.Rect, b.regions[j].Rect) {
				return fmt.Errorf("%w: regions %d and %d overlap", ErrTiling, i, j)
			}
		}
		sum += r.Rect.Area()
	}
	if math.Abs(sum-b.bounds.Area()) > areaEpsilon*b.bounds.Area() {
		return fmt.Errorf("%w: area sum %.3f != board area %.3f", ErrTiling, sum, b.bounds.Area())
	}
	return nil
}

// overlaps is Rect.Overlaps with edges shrunk by edgeEpsilon
func overlaps(a, o core.Rect) bool {
	if a.X+edgeEpsilon >= o.Right() || o.X+edgeEpsilon >= a.Right() {
		return false
	}
	if a.Y+edgeEpsilon >= o.Bottom() || o.Y+edgeEpsilon >= a.Bottom() {
		return false
	}
	return true
}

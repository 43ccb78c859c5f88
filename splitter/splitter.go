// Package splitter manages the lifecycle of one player-initiated split:
// Idle -> Growing -> {Completed | Failed} -> Idle.
package splitter

import (
	"github.com/MansourDch/jezzball-clone/ball"
	"github.com/MansourDch/jezzball-clone/board"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/vmath"
)

// State of the splitter state machine
type State uint8

const (
	StateIdle State = iota
	StateGrowing
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGrowing:
		return "growing"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Operation is the in-progress split. Neg and Pos are the growth extents on
// each side of the anchor along the line's axis
type Operation struct {
	Anchor core.Point
	Dir    core.Direction
	Neg    float64
	Pos    float64
	Speed  float64
}

// Segment returns the currently drawn line, clamped to lo/hi
func (o Operation) Segment(lo, hi float64) core.Segment {
	along := o.Dir.Along(o.Anchor)
	return core.Segment{
		Dir:   o.Dir,
		Coord: o.Dir.Coord(o.Anchor),
		From:  vmath.Clamp(along-o.Neg, lo, hi),
		To:    vmath.Clamp(along+o.Pos, lo, hi),
	}
}

// Result reports what a Tick did
type Result struct {
	State  State           // StateGrowing, StateCompleted or StateFailed; StateIdle when nothing was active
	Ball   int             // Colliding ball index when Failed, -1 otherwise
	Line   board.SplitLine // Completed line
	Pieces []board.Piece   // Regions produced by the completed split
	Filled []core.Rect     // Pieces claimed because no ball was inside
}

// Splitter grows at most one split line at a time
type Splitter struct {
	state     State
	op        Operation
	speed     float64
	thickness float64
}

// New creates an idle splitter growing speed units per tick on each side.
// thickness is the drawn line width used for ball collision
func New(speed, thickness float64) *Splitter {
	return &Splitter{speed: speed, thickness: thickness}
}

// SetSpeed changes the growth speed for splits started afterwards
func (s *Splitter) SetSpeed(speed float64) {
	s.speed = speed
}

// State returns the current state
func (s *Splitter) State() State {
	return s.state
}

// Operation returns the active operation
func (s *Splitter) Operation() (Operation, bool) {
	return s.op, s.state == StateGrowing
}

// Begin starts a split at anchor. Only valid from Idle; rejected when a split
// is already growing, the anchor lies outside the board or in a claimed region,
// or the line would run along an edge of the anchor's region and cut nothing
func (s *Splitter) Begin(b *board.Board, anchor core.Point, dir core.Direction) bool {
	if s.state != StateIdle {
		return false
	}
	region, ok := b.RegionAt(anchor)
	if !ok || region.Filled {
		return false
	}
	lo, hi := region.Rect.Across(dir)
	if c := dir.Coord(anchor); c <= lo || c >= hi {
		return false
	}

	s.op = Operation{Anchor: anchor, Dir: dir, Speed: s.speed}
	s.state = StateGrowing
	return true
}

// Active returns the partial line while Growing
func (s *Splitter) Active(b *board.Board) (core.Segment, bool) {
	if s.state != StateGrowing {
		return core.Segment{}, false
	}
	lo, hi := b.Bounds().Span(s.op.Dir)
	return s.op.Segment(lo, hi), true
}

// Tick grows both extents by the operation speed, then tests each ball
// against the drawn line. A touching ball fails the whole split with no board
// change. When both ends reach the board edges the split completes: the board
// is cut at the anchor and every produced piece without a ball is claimed.
// Either outcome returns the splitter to Idle
func (s *Splitter) Tick(b *board.Board, balls []ball.Ball) Result {
	if s.state != StateGrowing {
		return Result{State: StateIdle, Ball: -1}
	}

	lo, hi := b.Bounds().Span(s.op.Dir)
	along := s.op.Dir.Along(s.op.Anchor)
	s.op.Neg = min(s.op.Neg+s.op.Speed, along-lo)
	s.op.Pos = min(s.op.Pos+s.op.Speed, hi-along)

	seg := s.op.Segment(lo, hi)
	for i, bl := range balls {
		if vmath.CircleIntersectsSegment(bl.Pos, bl.Radius, seg, s.thickness) {
			s.reset()
			return Result{State: StateFailed, Ball: i}
		}
	}

	if s.op.Neg < along-lo || s.op.Pos < hi-along {
		return Result{State: StateGrowing, Ball: -1}
	}

	s.reset()
	seg.From, seg.To = lo, hi
	pieces := b.ApplySplit(seg.Coord, seg.Dir)
	res := Result{
		State:  StateCompleted,
		Ball:   -1,
		Line:   seg,
		Pieces: pieces,
	}
	for _, p := range pieces {
		if occupied(p.Rect, balls) {
			continue
		}
		if b.MarkFilled(p.Rect) {
			res.Filled = append(res.Filled, p.Rect)
		}
	}
	return res
}

// reset clears the operation and returns to Idle
func (s *Splitter) reset() {
	s.op = Operation{}
	s.state = StateIdle
}

// Cancel drops any active split without touching the board. Used on level
// and game resets, never by the player
func (s *Splitter) Cancel() {
	s.reset()
}

func occupied(r core.Rect, balls []ball.Ball) bool {
	for _, bl := range balls {
		if r.Contains(bl.Pos) {
			return true
		}
	}
	return false
}

// AutoDirection picks the axis whose board edge is nearer to the anchor: when
// the anchor is at least as close to the left or right edge as to the top or
// bottom, the line runs horizontally toward that nearer side
func AutoDirection(anchor core.Point, bounds core.Rect) core.Direction {
	dx := min(anchor.X-bounds.X, bounds.Right()-anchor.X)
	dy := min(anchor.Y-bounds.Y, bounds.Bottom()-anchor.Y)
	if dx <= dy {
		return core.Horizontal
	}
	return core.Vertical
}

package core

// Direction is the orientation of a split line
type Direction uint8

const (
	// Horizontal lines hold y fixed and grow along x
	Horizontal Direction = iota
	// Vertical lines hold x fixed and grow along y
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Perpendicular returns the other direction
func (d Direction) Perpendicular() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Coord returns the coordinate of p that a line of direction d holds fixed
func (d Direction) Coord(p Point) float64 {
	if d == Horizontal {
		return p.Y
	}
	return p.X
}

// Along returns the coordinate of p on the axis a line of direction d grows on
func (d Direction) Along(p Point) float64 {
	if d == Horizontal {
		return p.X
	}
	return p.Y
}

// Segment is an axis-aligned line at Coord spanning [From, To]
// Horizontal: y = Coord, x in [From, To]. Vertical: x = Coord, y in [From, To]
type Segment struct {
	Dir      Direction
	Coord    float64
	From, To float64
}

// Length returns To - From
func (s Segment) Length() float64 {
	return s.To - s.From
}

// Endpoints returns both ends as points
func (s Segment) Endpoints() (Point, Point) {
	if s.Dir == Horizontal {
		return Point{X: s.From, Y: s.Coord}, Point{X: s.To, Y: s.Coord}
	}
	return Point{X: s.Coord, Y: s.From}, Point{X: s.Coord, Y: s.To}
}

package store

// Position is an absolute cell coordinate in the universe's address space.
type Position struct {
	X, Y int64
}

// Offset returns the position shifted by (dx, dy).
func (p Position) Offset(dx, dy int64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Quadrant identifies one of the four quadrants a position falls into
// relative to the origin.
type Quadrant uint8

const (
	NW Quadrant = iota
	NE
	SWQ
	SEQ
)

// Quadrant reports which quadrant p falls in: negative x is west, negative
// y is north, and the origin itself belongs to the south/east half (a
// quadrant boundary must resolve to exactly one quadrant).
func (p Position) Quadrant() Quadrant {
	switch {
	case p.X < 0 && p.Y < 0:
		return NW
	case p.X >= 0 && p.Y < 0:
		return NE
	case p.X < 0 && p.Y >= 0:
		return SWQ
	default:
		return SEQ
	}
}

// BoundingBox is the smallest axis-aligned box containing every alive
// cell, with UpperLeft.X <= LowerRight.X and UpperLeft.Y <= LowerRight.Y.
type BoundingBox struct {
	UpperLeft, LowerRight Position
}

// NewBoundingBox constructs a BoundingBox, asserting corner ordering.
func NewBoundingBox(upperLeft, lowerRight Position) BoundingBox {
	if upperLeft.X > lowerRight.X || upperLeft.Y > lowerRight.Y {
		panic("store: bounding box corners out of order")
	}
	return BoundingBox{UpperLeft: upperLeft, LowerRight: lowerRight}
}

// Combine returns the smallest box containing both b and other.
func (b BoundingBox) Combine(other BoundingBox) BoundingBox {
	return BoundingBox{
		UpperLeft: Position{
			X: min64(b.UpperLeft.X, other.UpperLeft.X),
			Y: min64(b.UpperLeft.Y, other.UpperLeft.Y),
		},
		LowerRight: Position{
			X: max64(b.LowerRight.X, other.LowerRight.X),
			Y: max64(b.LowerRight.Y, other.LowerRight.Y),
		},
	}
}

// Offset returns b shifted by (dx, dy).
func (b BoundingBox) Offset(dx, dy int64) BoundingBox {
	return BoundingBox{UpperLeft: b.UpperLeft.Offset(dx, dy), LowerRight: b.LowerRight.Offset(dx, dy)}
}

// Pad grows b by amount in every direction.
func (b BoundingBox) Pad(amount int64) BoundingBox {
	return BoundingBox{
		UpperLeft:  Position{X: b.UpperLeft.X - amount, Y: b.UpperLeft.Y - amount},
		LowerRight: Position{X: b.LowerRight.X + amount, Y: b.LowerRight.Y + amount},
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

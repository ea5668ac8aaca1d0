package store

import (
	"math"

	"github.com/flier/hashlife/bitboard"
)

// MinCoord returns the smallest coordinate a node of level can represent
// along either axis.
func MinCoord(level Level) int64 {
	if level == MaxLevel {
		return math.MinInt64
	}
	return -(int64(1) << (level - 1))
}

// MaxCoord returns the largest coordinate a node of level can represent
// along either axis.
func MaxCoord(level Level) int64 {
	if level == MaxLevel {
		return math.MaxInt64
	}
	return int64(1)<<(level-1) - 1
}

// GetCell reports whether the cell at pos is alive within the region
// covered by id.
func (s *Store) GetCell(id NodeId, pos Position) bool {
	n := s.Get(id)

	switch n.Base.Kind {
	case KindLeaf3:
		return leaf3Get(n.Base.Leaf3, int(pos.X), int(pos.Y))
	case KindLeaf4:
		return bitboard.GetCell(n.Base.Leaf4, int(pos.X), int(pos.Y))
	default:
		offset := int64(1) << (n.Level - 2)
		switch pos.Quadrant() {
		case NW:
			return s.GetCell(n.Base.NW, pos.Offset(offset, offset))
		case NE:
			return s.GetCell(n.Base.NE, pos.Offset(-offset, offset))
		case SWQ:
			return s.GetCell(n.Base.SW, pos.Offset(offset, -offset))
		default:
			return s.GetCell(n.Base.SE, pos.Offset(-offset, -offset))
		}
	}
}

// SetCellAlive returns the id of a node identical to id except the cell at
// pos is alive.
func (s *Store) SetCellAlive(id NodeId, pos Position) NodeId {
	n := s.Get(id)

	switch n.Base.Kind {
	case KindLeaf3:
		return s.CreateLeaf3(leaf3SetAlive(n.Base.Leaf3, int(pos.X), int(pos.Y)))
	case KindLeaf4:
		return s.CreateLeaf4(bitboard.SetCellAlive(n.Base.Leaf4, int(pos.X), int(pos.Y)))
	default:
		offset := int64(1) << (n.Level - 2)
		nw, ne, sw, se := n.Base.NW, n.Base.NE, n.Base.SW, n.Base.SE
		switch pos.Quadrant() {
		case NW:
			nw = s.SetCellAlive(nw, pos.Offset(offset, offset))
		case NE:
			ne = s.SetCellAlive(ne, pos.Offset(-offset, offset))
		case SWQ:
			sw = s.SetCellAlive(sw, pos.Offset(offset, -offset))
		default:
			se = s.SetCellAlive(se, pos.Offset(-offset, -offset))
		}
		return s.CreateInterior(nw, ne, sw, se)
	}
}

// SetCellsAlive returns the id of a node identical to id except every cell
// in coords is alive. coords is partitioned in place (its order is not
// preserved) rather than copied per recursive call.
func (s *Store) SetCellsAlive(id NodeId, coords []Position) NodeId {
	return s.setCellsAliveAt(id, coords, 0, 0)
}

func (s *Store) setCellsAliveAt(id NodeId, coords []Position, offsetX, offsetY int64) NodeId {
	if len(coords) == 0 {
		return id
	}

	n := s.Get(id)

	switch n.Base.Kind {
	case KindLeaf3:
		grid := n.Base.Leaf3
		for _, p := range coords {
			grid = leaf3SetAlive(grid, int(p.X-offsetX), int(p.Y-offsetY))
		}
		return s.CreateLeaf3(grid)
	case KindLeaf4:
		grid := n.Base.Leaf4
		for _, p := range coords {
			grid = bitboard.SetCellAlive(grid, int(p.X-offsetX), int(p.Y-offsetY))
		}
		return s.CreateLeaf4(grid)
	default:
		north, south := partitionVert(coords, offsetY)
		nwCoords, neCoords := partitionHoriz(north, offsetX)
		swCoords, seCoords := partitionHoriz(south, offsetX)

		offset := int64(1) << (n.Level - 2)

		nw := s.setCellsAliveAt(n.Base.NW, nwCoords, offsetX-offset, offsetY-offset)
		ne := s.setCellsAliveAt(n.Base.NE, neCoords, offsetX+offset, offsetY-offset)
		sw := s.setCellsAliveAt(n.Base.SW, swCoords, offsetX-offset, offsetY+offset)
		se := s.setCellsAliveAt(n.Base.SE, seCoords, offsetX+offset, offsetY+offset)

		return s.CreateInterior(nw, ne, sw, se)
	}
}

// partitionHoriz partitions coords in place by x < pivot, returning the two
// resulting slices (both views into coords's backing array). The swaps keep
// the order of the left side but not of the right side.
func partitionHoriz(coords []Position, pivot int64) (left, right []Position) {
	next := 0
	for i := range coords {
		if coords[i].X-pivot < 0 {
			coords[i], coords[next] = coords[next], coords[i]
			next++
		}
	}
	return coords[:next], coords[next:]
}

// partitionVert partitions coords in place by y < pivot, in the same way as
// partitionHoriz.
func partitionVert(coords []Position, pivot int64) (top, bottom []Position) {
	next := 0
	for i := range coords {
		if coords[i].Y-pivot < 0 {
			coords[i], coords[next] = coords[next], coords[i]
			next++
		}
	}
	return coords[:next], coords[next:]
}

// GetAliveCells returns every alive cell under id, in absolute coordinates.
func (s *Store) GetAliveCells(id NodeId) []Position {
	var out []Position
	s.collectAliveCells(id, 0, 0, &out)
	return out
}

func (s *Store) collectAliveCells(id NodeId, offsetX, offsetY int64, out *[]Position) {
	n := s.Get(id)
	if n.Population.IsZero() {
		return
	}

	switch n.Base.Kind {
	case KindLeaf3:
		for y := -4; y < 4; y++ {
			for x := -4; x < 4; x++ {
				if leaf3Get(n.Base.Leaf3, x, y) {
					*out = append(*out, Position{X: offsetX + int64(x), Y: offsetY + int64(y)})
				}
			}
		}
	case KindLeaf4:
		for y := -8; y < 8; y++ {
			for x := -8; x < 8; x++ {
				if bitboard.GetCell(n.Base.Leaf4, x, y) {
					*out = append(*out, Position{X: offsetX + int64(x), Y: offsetY + int64(y)})
				}
			}
		}
	default:
		offset := int64(1) << (n.Level - 2)
		s.collectAliveCells(n.Base.NW, offsetX-offset, offsetY-offset, out)
		s.collectAliveCells(n.Base.NE, offsetX+offset, offsetY-offset, out)
		s.collectAliveCells(n.Base.SW, offsetX-offset, offsetY+offset, out)
		s.collectAliveCells(n.Base.SE, offsetX+offset, offsetY+offset, out)
	}
}

// BoundingBox returns the smallest box containing every alive cell under
// id, or false if id's population is zero.
func (s *Store) BoundingBox(id NodeId) (BoundingBox, bool) {
	return s.boundingBoxAt(id, 0, 0)
}

func (s *Store) boundingBoxAt(id NodeId, offsetX, offsetY int64) (BoundingBox, bool) {
	n := s.Get(id)
	if n.Population.IsZero() {
		return BoundingBox{}, false
	}

	switch n.Base.Kind {
	case KindLeaf3:
		return leafBoundingBox(8, offsetX, offsetY, func(x, y int) bool {
			return leaf3Get(n.Base.Leaf3, x, y)
		}), true
	case KindLeaf4:
		return leafBoundingBox(16, offsetX, offsetY, func(x, y int) bool {
			return bitboard.GetCell(n.Base.Leaf4, x, y)
		}), true
	default:
		offset := int64(1) << (n.Level - 2)
		var box BoundingBox
		first := true
		for _, quadrant := range []struct {
			id     NodeId
			dx, dy int64
		}{
			{n.Base.NW, -offset, -offset},
			{n.Base.NE, offset, -offset},
			{n.Base.SW, -offset, offset},
			{n.Base.SE, offset, offset},
		} {
			b, ok := s.boundingBoxAt(quadrant.id, offsetX+quadrant.dx, offsetY+quadrant.dy)
			if !ok {
				continue
			}
			if first {
				box, first = b, false
			} else {
				box = box.Combine(b)
			}
		}
		return box, !first
	}
}

func leafBoundingBox(side int, offsetX, offsetY int64, alive func(x, y int) bool) BoundingBox {
	half := side / 2
	minX, maxX := half, -half
	minY, maxY := half, -half
	for y := -half; y < half; y++ {
		for x := -half; x < half; x++ {
			if alive(x, y) {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	return BoundingBox{
		UpperLeft:  Position{X: offsetX + int64(minX), Y: offsetY + int64(minY)},
		LowerRight: Position{X: offsetX + int64(maxX), Y: offsetY + int64(maxY)},
	}
}

// ContainsAliveCells reports whether any cell within box is alive under id.
func (s *Store) ContainsAliveCells(id NodeId, box BoundingBox) bool {
	return s.containsAliveCellsAt(id, box)
}

func (s *Store) containsAliveCellsAt(id NodeId, box BoundingBox) bool {
	n := s.Get(id)
	if n.Population.IsZero() {
		return false
	}

	switch n.Base.Kind {
	case KindLeaf3:
		return leafContainsAlive(box, func(x, y int) bool { return leaf3Get(n.Base.Leaf3, x, y) })
	case KindLeaf4:
		return leafContainsAlive(box, func(x, y int) bool { return bitboard.GetCell(n.Base.Leaf4, x, y) })
	default:
		offset := int64(1) << (n.Level - 2)
		ulq, lrq := box.UpperLeft.Quadrant(), box.LowerRight.Quadrant()

		switch {
		case ulq == lrq:
			dx, dy := quadrantOffset(ulq, offset)
			return s.containsAliveCellsAt(s.childFor(n, ulq), box.Offset(dx, dy))

		case ulq == NW && lrq == NE:
			nwBox := NewBoundingBox(box.UpperLeft, Position{X: -1, Y: box.LowerRight.Y})
			neBox := NewBoundingBox(Position{X: 0, Y: box.UpperLeft.Y}, box.LowerRight)
			return s.containsAliveCellsAt(n.Base.NW, nwBox.Offset(offset, offset)) ||
				s.containsAliveCellsAt(n.Base.NE, neBox.Offset(-offset, offset))

		case ulq == SWQ && lrq == SEQ:
			swBox := NewBoundingBox(box.UpperLeft, Position{X: -1, Y: box.LowerRight.Y})
			seBox := NewBoundingBox(Position{X: 0, Y: box.UpperLeft.Y}, box.LowerRight)
			return s.containsAliveCellsAt(n.Base.SW, swBox.Offset(offset, -offset)) ||
				s.containsAliveCellsAt(n.Base.SE, seBox.Offset(-offset, -offset))

		case ulq == NW && lrq == SWQ:
			nwBox := NewBoundingBox(box.UpperLeft, Position{X: box.LowerRight.X, Y: -1})
			swBox := NewBoundingBox(Position{X: box.UpperLeft.X, Y: 0}, box.LowerRight)
			return s.containsAliveCellsAt(n.Base.NW, nwBox.Offset(offset, offset)) ||
				s.containsAliveCellsAt(n.Base.SW, swBox.Offset(offset, -offset))

		case ulq == NE && lrq == SEQ:
			neBox := NewBoundingBox(box.UpperLeft, Position{X: box.LowerRight.X, Y: -1})
			seBox := NewBoundingBox(Position{X: box.UpperLeft.X, Y: 0}, box.LowerRight)
			return s.containsAliveCellsAt(n.Base.NE, neBox.Offset(-offset, offset)) ||
				s.containsAliveCellsAt(n.Base.SE, seBox.Offset(-offset, -offset))

		default: // ulq == NW && lrq == SEQ: spans all four quadrants
			nwBox := NewBoundingBox(box.UpperLeft, Position{X: -1, Y: -1})
			neBox := NewBoundingBox(Position{X: 0, Y: box.UpperLeft.Y}, Position{X: box.LowerRight.X, Y: -1})
			swBox := NewBoundingBox(Position{X: box.UpperLeft.X, Y: 0}, Position{X: -1, Y: box.LowerRight.Y})
			seBox := NewBoundingBox(Position{X: 0, Y: 0}, box.LowerRight)
			return s.containsAliveCellsAt(n.Base.NW, nwBox.Offset(offset, offset)) ||
				s.containsAliveCellsAt(n.Base.NE, neBox.Offset(-offset, offset)) ||
				s.containsAliveCellsAt(n.Base.SW, swBox.Offset(offset, -offset)) ||
				s.containsAliveCellsAt(n.Base.SE, seBox.Offset(-offset, -offset))
		}
	}
}

func (s *Store) childFor(n Node, q Quadrant) NodeId {
	switch q {
	case NW:
		return n.Base.NW
	case NE:
		return n.Base.NE
	case SWQ:
		return n.Base.SW
	default:
		return n.Base.SE
	}
}

func quadrantOffset(q Quadrant, offset int64) (dx, dy int64) {
	switch q {
	case NW:
		return offset, offset
	case NE:
		return -offset, offset
	case SWQ:
		return offset, -offset
	default:
		return -offset, -offset
	}
}

func leafContainsAlive(box BoundingBox, alive func(x, y int) bool) bool {
	for y := box.UpperLeft.Y; y <= box.LowerRight.Y; y++ {
		for x := box.UpperLeft.X; x <= box.LowerRight.X; x++ {
			if alive(int(x), int(y)) {
				return true
			}
		}
	}
	return false
}

func leaf3Get(grid [8]uint8, x, y int) bool {
	row := grid[y+4]
	bit := uint(3 - x)
	return row&(1<<bit) != 0
}

func leaf3SetAlive(grid [8]uint8, x, y int) [8]uint8 {
	bit := uint(3 - x)
	grid[y+4] |= 1 << bit
	return grid
}

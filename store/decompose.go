package store

import "github.com/flier/hashlife/bitboard"

// NW returns the level-(L-1) node occupying id's northwest corner. For an
// Interior node this is the stored child; for a LevelFour leaf it is
// assembled from the corresponding quarter of the 16-row board.
func (s *Store) NW(id NodeId) NodeId { return s.quadrant(id, 0) }

// NE returns the northeast quadrant of id.
func (s *Store) NE(id NodeId) NodeId { return s.quadrant(id, 1) }

// SW returns the southwest quadrant of id.
func (s *Store) SW(id NodeId) NodeId { return s.quadrant(id, 2) }

// SE returns the southeast quadrant of id.
func (s *Store) SE(id NodeId) NodeId { return s.quadrant(id, 3) }

func (s *Store) quadrant(id NodeId, which int) NodeId {
	n := s.Get(id)

	if n.Base.Kind == KindLeaf4 {
		return s.CreateLeaf3(leaf4Quarter(n.Base.Leaf4, which))
	}
	if n.Base.Kind == KindLeaf3 {
		panic("store: quadrant accessor called on a LevelThree leaf")
	}

	switch which {
	case 0:
		return n.Base.NW
	case 1:
		return n.Base.NE
	case 2:
		return n.Base.SW
	default:
		return n.Base.SE
	}
}

// leaf4Quarter extracts one quarter of a 16x16 board as an 8x8 board:
// which 0=NW, 1=NE, 2=SW, 3=SE.
func leaf4Quarter(grid bitboard.Board16, which int) (out [8]uint8) {
	rowOffset := 0
	if which == 2 || which == 3 {
		rowOffset = 8
	}
	east := which == 1 || which == 3

	for r := 0; r < 8; r++ {
		row := grid[rowOffset+r]
		if east {
			out[r] = uint8(row & 0xFF)
		} else {
			out[r] = uint8(row >> 8)
		}
	}
	return
}

// CenterSubnode returns the node one level below id, covering the region
// centered on id: the innermost corner of each of id's four quadrants.
func (s *Store) CenterSubnode(id NodeId) NodeId {
	n := s.Get(id)
	nw, ne, sw, se := s.NW(id), s.NE(id), s.SW(id), s.SE(id)

	if n.Level == LevelFour+1 {
		grid := bitboard.Center(s.Get(nw).Grid4(), s.Get(ne).Grid4(), s.Get(sw).Grid4(), s.Get(se).Grid4())
		return s.CreateLeaf4(grid)
	}

	return s.CreateInterior(s.SE(nw), s.SW(ne), s.NE(sw), s.NW(se))
}

// NorthSubsubnode returns the node two levels below id, covering the
// strip centered on id's north edge.
func (s *Store) NorthSubsubnode(id NodeId) NodeId {
	return s.centeredHoriz(s.NW(id), s.NE(id))
}

// SouthSubsubnode returns the node two levels below id, covering the
// strip centered on id's south edge.
func (s *Store) SouthSubsubnode(id NodeId) NodeId {
	return s.centeredHoriz(s.SW(id), s.SE(id))
}

// WestSubsubnode returns the node two levels below id, covering the strip
// centered on id's west edge.
func (s *Store) WestSubsubnode(id NodeId) NodeId {
	return s.centeredVert(s.NW(id), s.SW(id))
}

// EastSubsubnode returns the node two levels below id, covering the strip
// centered on id's east edge.
func (s *Store) EastSubsubnode(id NodeId) NodeId {
	return s.centeredVert(s.NE(id), s.SE(id))
}

// centeredHoriz splices the shared vertical boundary of a west/east pair
// of same-level siblings, one level below their own.
func (s *Store) centeredHoriz(w, e NodeId) NodeId {
	wn, en := s.Get(w), s.Get(e)

	if wn.Level == LevelFour {
		grid := bitboard.Horiz(wn.Grid4(), en.Grid4())
		var center [8]uint8
		for r := range center {
			center[r] = uint8(grid[4+r] >> 4)
		}
		return s.CreateLeaf3(center)
	}

	wNE, wSE := s.NE(w), s.SE(w)
	eNW, eSW := s.NW(e), s.SW(e)
	return s.CreateInterior(s.SE(wNE), s.SW(eNW), s.NE(wSE), s.NW(eSW))
}

// centeredVert splices the shared horizontal boundary of a north/south
// pair of same-level siblings, one level below their own.
func (s *Store) centeredVert(n, so NodeId) NodeId {
	nn, sn := s.Get(n), s.Get(so)

	if nn.Level == LevelFour {
		grid := bitboard.Vert(nn.Grid4(), sn.Grid4())
		var center [8]uint8
		for r := range center {
			center[r] = uint8(grid[4+r] >> 4)
		}
		return s.CreateLeaf3(center)
	}

	nSW, nSE := s.SW(n), s.SE(n)
	sNW, sNE := s.NW(so), s.NE(so)
	return s.CreateInterior(s.SE(nSW), s.SW(nSE), s.NE(sNW), s.NW(sNE))
}

// Expand returns a node one level larger than id, covering the same
// region but now centered deep within the new, larger node — its old
// content becomes the innermost corner of each of the new node's four
// quadrants, surrounded by empty space.
func (s *Store) Expand(id NodeId) NodeId {
	n := s.Get(id)
	empty := s.CreateEmpty(n.Level - 1)

	nw := s.CreateInterior(empty, empty, empty, s.NW(id))
	ne := s.CreateInterior(empty, empty, s.NE(id), empty)
	sw := s.CreateInterior(empty, s.SW(id), empty, empty)
	se := s.CreateInterior(s.SE(id), empty, empty, empty)

	return s.CreateInterior(nw, ne, sw, se)
}

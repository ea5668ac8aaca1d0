// Package evolve implements the two recursive Hashlife operators: Jump
// (always advances by the maximum 2^(level-2) generations a node supports)
// and Step (advances by 2^k generations for a caller-chosen k). Both are
// memoized on the store they operate over, so repeated calls on the same
// node id are free after the first.
package evolve

import (
	"github.com/flier/hashlife/bitboard"
	"github.com/flier/hashlife/store"
)

// Jump advances id by 2^(level-2) generations, the most a node of its
// level can advance without looking beyond its own four quadrants, and
// returns the id of the resulting node one level smaller.
func Jump(s *store.Store, id store.NodeId) store.NodeId {
	if cached, ok := s.GetJump(id); ok {
		return cached
	}

	n := s.Get(id)

	var result store.NodeId
	switch {
	case n.Population.IsZero():
		result = s.CreateEmpty(n.Level - 1)

	case n.Level == store.LevelFour+1:
		grid := bitboard.JumpLevel5(
			s.Get(n.Base.NW).Grid4(), s.Get(n.Base.NE).Grid4(),
			s.Get(n.Base.SW).Grid4(), s.Get(n.Base.SE).Grid4(),
		)
		result = s.CreateLeaf4(grid)

	default:
		nw, ne, sw, se := n.Base.NW, n.Base.NE, n.Base.SW, n.Base.SE

		a := Jump(s, nw)
		b := horizJump(s, nw, ne)
		c := Jump(s, ne)
		d := vertJump(s, nw, sw)
		e := Jump(s, s.CenterSubnode(id))
		f := vertJump(s, ne, se)
		g := Jump(s, sw)
		h := horizJump(s, sw, se)
		i := Jump(s, se)

		w := Jump(s, s.CreateInterior(a, b, d, e))
		x := Jump(s, s.CreateInterior(b, c, e, f))
		y := Jump(s, s.CreateInterior(d, e, g, h))
		z := Jump(s, s.CreateInterior(e, f, h, i))

		result = s.CreateInterior(w, x, y, z)
	}

	s.AddJump(id, result)
	return result
}

// horizJump jumps the overlap region straddling the shared vertical
// boundary of a west/east sibling pair, one level below their own.
func horizJump(s *store.Store, w, e store.NodeId) store.NodeId {
	return Jump(s, s.CreateInterior(s.NE(w), s.NW(e), s.SE(w), s.SW(e)))
}

// vertJump jumps the overlap region straddling the shared horizontal
// boundary of a north/south sibling pair, one level below their own.
func vertJump(s *store.Store, n, so store.NodeId) store.NodeId {
	return Jump(s, s.CreateInterior(s.SW(n), s.SE(n), s.NW(so), s.NE(so)))
}

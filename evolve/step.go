package evolve

import (
	"github.com/flier/hashlife/bitboard"
	"github.com/flier/hashlife/store"
)

// Step advances id by 2^(store's current step exponent) generations and
// returns the id of the resulting node one level smaller. When the step
// exponent equals the maximum a node of id's level supports (level-2),
// Step degenerates to Jump: computing the nine-cell decomposition with the
// pre-advanced quadrant jumps Jump uses would over-advance the result at
// any smaller exponent, so that variant is reserved for the maximal case.
func Step(s *store.Store, id store.NodeId) store.NodeId {
	if cached, ok := s.GetStep(id); ok {
		return cached
	}

	n := s.Get(id)

	if s.StepLog2() == uint8(n.Level)-2 {
		result := Jump(s, id)
		s.AddStep(id, result)
		return result
	}

	var result store.NodeId
	switch {
	case n.Population.IsZero():
		result = s.CreateEmpty(n.Level - 1)

	case n.Level == store.LevelFour+1:
		grid := bitboard.StepLevel5(
			s.Get(n.Base.NW).Grid4(), s.Get(n.Base.NE).Grid4(),
			s.Get(n.Base.SW).Grid4(), s.Get(n.Base.SE).Grid4(),
			s.StepLog2(),
		)
		result = s.CreateLeaf4(grid)

	default:
		nw, ne, sw, se := n.Base.NW, n.Base.NE, n.Base.SW, n.Base.SE

		a := s.CenterSubnode(nw)
		b := s.NorthSubsubnode(id)
		c := s.CenterSubnode(ne)
		d := s.WestSubsubnode(id)
		e := s.CenterSubnode(s.CenterSubnode(id))
		f := s.EastSubsubnode(id)
		g := s.CenterSubnode(sw)
		h := s.SouthSubsubnode(id)
		i := s.CenterSubnode(se)

		w := Step(s, s.CreateInterior(a, b, d, e))
		x := Step(s, s.CreateInterior(b, c, e, f))
		y := Step(s, s.CreateInterior(d, e, g, h))
		z := Step(s, s.CreateInterior(e, f, h, i))

		result = s.CreateInterior(w, x, y, z)
	}

	s.AddStep(id, result)
	return result
}

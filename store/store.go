package store

import (
	"github.com/flier/hashlife/bitboard"
	"github.com/flier/hashlife/internal/debug"
	"github.com/flier/hashlife/pkg/opt"
	"github.com/flier/hashlife/pkg/xerrors"
)

// Store owns every canonical node ever created during a universe's
// lifetime, plus the per-node memo tables the evolution engine uses to
// avoid recomputing a step or jump it has already taken. Nodes are never
// removed: the store only grows, append-only, for as long as the universe
// that owns it is alive.
type Store struct {
	nodes []Node
	ids   *canonTable

	// steps[id-1] and jumps[id-1] memoize evolve.Step/evolve.Jump results
	// for node id. steps is invalidated (reset to empty) whenever
	// stepLog2 changes; jumps never is, since a jump's meaning (advance by
	// 2^(level-2)) does not depend on stepLog2.
	steps []opt.Option[NodeId]
	jumps []opt.Option[NodeId]

	stepLog2 uint8

	// empties[level] memoizes the canonical empty node at that level.
	empties map[Level]NodeId
}

// New constructs an empty Store with no nodes interned yet.
func New() *Store {
	return &Store{
		ids:     newCanonTable(),
		empties: make(map[Level]NodeId),
	}
}

// Get returns the node that id refers to. Panics if id is not a node this
// store has interned, since that is always a programming error.
func (s *Store) Get(id NodeId) Node {
	if id == 0 || int(id) > len(s.nodes) {
		panic("store: invalid NodeId")
	}
	return s.nodes[id-1]
}

// StepLog2 returns the current step exponent: Step advances a universe by
// 2^StepLog2 generations.
func (s *Store) StepLog2() uint8 { return s.stepLog2 }

// SetStepLog2 changes the step exponent. Since a change invalidates every
// memoized step result (but not jumps, which are exponent-independent),
// the step memo table is cleared.
func (s *Store) SetStepLog2(k uint8) {
	s.stepLog2 = k
	for i := range s.steps {
		s.steps[i] = opt.None[NodeId]()
	}
}

// GetStep returns the memoized step result for id, if this store has
// already computed one under the current step exponent.
func (s *Store) GetStep(id NodeId) (NodeId, bool) {
	if int(id) > len(s.steps) {
		return 0, false
	}
	o := s.steps[id-1]
	if o.IsNone() {
		return 0, false
	}
	return o.Unwrap(), true
}

// AddStep records the step result for id.
func (s *Store) AddStep(id, result NodeId) {
	s.steps[id-1] = opt.Some(result)
}

// GetJump returns the memoized jump result for id, if any.
func (s *Store) GetJump(id NodeId) (NodeId, bool) {
	if int(id) > len(s.jumps) {
		return 0, false
	}
	o := s.jumps[id-1]
	if o.IsNone() {
		return 0, false
	}
	return o.Unwrap(), true
}

// AddJump records the jump result for id.
func (s *Store) AddJump(id, result NodeId) {
	s.jumps[id-1] = opt.Some(result)
}

// intern is the hash-consing primitive: it returns the existing id for
// base if one was already created, otherwise allocates a new node and
// returns its freshly assigned id.
func (s *Store) intern(base NodeBase, level Level, population Population) NodeId {
	if id, ok := s.ids.Get(base); ok {
		debug.Log(nil, "intern", "canonical hit for level %d", level)
		return id
	}

	s.nodes = append(s.nodes, Node{Base: base, Level: level, Population: population})
	id := NodeId(len(s.nodes))
	s.ids.Put(base, id)
	s.steps = append(s.steps, opt.None[NodeId]())
	s.jumps = append(s.jumps, opt.None[NodeId]())

	return id
}

// CreateLeaf3 interns an 8x8 leaf.
func (s *Store) CreateLeaf3(grid [8]uint8) NodeId {
	var pop uint64
	for _, row := range grid {
		pop += uint64(popcount8(row))
	}
	return s.intern(leaf3Base(grid), LevelThree, PopulationOf(pop))
}

// CreateLeaf4 interns a 16x16 leaf.
func (s *Store) CreateLeaf4(grid bitboard.Board16) NodeId {
	return s.intern(leaf4Base(grid), LevelFour, PopulationOf(bitboard.PopCount(grid)))
}

// CreateInterior interns an interior node whose four children must already
// be canonical nodes of the same level. If all four children are
// LevelThree leaves, the result is promoted directly to a LevelFour leaf
// (the smallest level the evolution engine's kernels operate on), rather
// than an Interior node one level above LevelThree.
func (s *Store) CreateInterior(nw, ne, sw, se NodeId) NodeId {
	a, b, c, d := s.Get(nw), s.Get(ne), s.Get(sw), s.Get(se)

	if a.Level != b.Level || a.Level != c.Level || a.Level != d.Level {
		panic(xerrors.ChildLevelMismatch{
			NW: int(a.Level), NE: int(b.Level), SW: int(c.Level), SE: int(d.Level),
		})
	}

	if a.Level == LevelThree {
		grid := assembleLeaf4(a.Grid3(), b.Grid3(), c.Grid3(), d.Grid3())
		return s.CreateLeaf4(grid)
	}

	population := a.Population.Add(b.Population).Add(c.Population).Add(d.Population)
	return s.intern(interiorBase(nw, ne, sw, se), a.Level+1, population)
}

// CreateEmpty returns the canonical all-dead node at level, building it (by
// recursive doubling from the empty leaf) the first time it is requested.
func (s *Store) CreateEmpty(level Level) NodeId {
	if id, ok := s.empties[level]; ok {
		return id
	}

	var id NodeId
	if level == LevelFour {
		id = s.CreateLeaf4(bitboard.Board16{})
	} else if level == LevelThree {
		id = s.CreateLeaf3([8]uint8{})
	} else {
		child := s.CreateEmpty(level - 1)
		id = s.CreateInterior(child, child, child, child)
	}

	s.empties[level] = id
	return id
}

func popcount8(v uint8) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// assembleLeaf4 packs four 8x8 leaf grids into one 16x16 board, nw/ne/sw/se
// each occupying the correspondingly named quadrant.
func assembleLeaf4(nw, ne, sw, se [8]uint8) (out bitboard.Board16) {
	for r := 0; r < 8; r++ {
		out[r] = uint16(nw[r])<<8 | uint16(ne[r])
		out[8+r] = uint16(sw[r])<<8 | uint16(se[r])
	}
	return
}

// Package hashlife is the root-level facade over the store and evolve
// packages: a Universe owns a Store and a root NodeId, and exposes the
// operations a host (renderer, CLI, test) actually calls — construction,
// stepping, and cell queries — without exposing node internals.
package hashlife

import (
	"github.com/flier/hashlife/evolve"
	"github.com/flier/hashlife/internal/debug"
	"github.com/flier/hashlife/pkg/opt"
	"github.com/flier/hashlife/pkg/xerrors"
	"github.com/flier/hashlife/store"
)

// newUniverseLevel is the root level a freshly constructed, empty universe
// starts at: the smallest level the facade ever holds as a root.
const newUniverseLevel store.Level = 5

// Universe is a Game of Life board evolved with the Hashlife algorithm: a
// canonical quadtree root backed by a Store, advanced in large jumps
// rather than one generation at a time.
type Universe struct {
	root       store.NodeId
	store      *store.Store
	generation store.Population
}

// New returns an empty universe.
func New() *Universe {
	s := store.New()
	return &Universe{
		root:  s.CreateEmpty(newUniverseLevel),
		store: s,
	}
}

// FromAliveCells returns a universe whose root is expanded until it fits
// every cell in cells, then bulk-sets them alive.
func FromAliveCells(cells []store.Position) (*Universe, error) {
	u := New()
	if len(cells) == 0 {
		return u, nil
	}

	minX, maxX := cells[0].X, cells[0].X
	minY, maxY := cells[0].Y, cells[0].Y
	for _, c := range cells[1:] {
		minX, maxX = min64(minX, c.X), max64(maxX, c.X)
		minY, maxY = min64(minY, c.Y), max64(maxY, c.Y)
	}

	for minX < store.MinCoord(u.rootLevel()) || maxX > store.MaxCoord(u.rootLevel()) ||
		minY < store.MinCoord(u.rootLevel()) || maxY > store.MaxCoord(u.rootLevel()) {
		if err := u.expandRoot(); err != nil {
			return nil, err
		}
	}

	u.root = u.store.SetCellsAlive(u.root, append([]store.Position(nil), cells...))

	return u, nil
}

func (u *Universe) rootLevel() store.Level { return u.store.Get(u.root).Level }

// expandRoot grows the root by one level, or reports ErrInvalidLevel if
// doing so would exceed the largest representable level.
func (u *Universe) expandRoot() error {
	if u.rootLevel() >= store.MaxLevel {
		return xerrors.ErrInvalidLevel{Level: int(u.rootLevel()) + 1}
	}
	u.root = u.store.Expand(u.root)
	return nil
}

// SetStepLog2 changes the step exponent: Step will advance by 2^k
// generations. This also invalidates the store's step memo cache.
func (u *Universe) SetStepLog2(k uint8) {
	u.store.SetStepLog2(k)
}

// StepLog2 returns the current step exponent.
func (u *Universe) StepLog2() uint8 { return u.store.StepLog2() }

// StepSize returns 2^StepLog2, the number of generations the next Step
// call will advance by.
func (u *Universe) StepSize() uint64 { return uint64(1) << u.store.StepLog2() }

// Generation returns the total number of generations elapsed.
func (u *Universe) Generation() store.Population { return u.generation }

// Population returns the number of alive cells.
func (u *Universe) Population() store.Population { return u.store.Get(u.root).Population }

// pad grows the root until it is large enough, and sparse enough at its
// edges, for a Step to proceed without losing cells to truncation: every
// quadrant's population must already match the population of that
// quadrant's own innermost corner-of-corner, meaning every live cell sits
// within the central square of the root whose side is a quarter of the
// root's.
func (u *Universe) pad() {
	for {
		n := u.store.Get(u.root)
		if n.Level < 6 || u.store.StepLog2() > uint8(n.Level)-2 || !u.quadrantsCentered(n) {
			u.root = u.store.Expand(u.root)
			continue
		}
		break
	}
}

func (u *Universe) quadrantsCentered(n store.Node) bool {
	nw, ne, sw, se := n.Base.NW, n.Base.NE, n.Base.SW, n.Base.SE

	nwPop := u.store.Get(nw).Population
	nwInner := u.store.Get(u.store.SE(u.store.SE(nw))).Population

	nePop := u.store.Get(ne).Population
	neInner := u.store.Get(u.store.SW(u.store.SW(ne))).Population

	sePop := u.store.Get(se).Population
	seInner := u.store.Get(u.store.NW(u.store.NW(se))).Population

	swPop := u.store.Get(sw).Population
	swInner := u.store.Get(u.store.NE(u.store.NE(sw))).Population

	return nwPop == nwInner && nePop == neInner && sePop == seInner && swPop == swInner
}

// Step advances the universe by 2^StepLog2 generations.
func (u *Universe) Step() {
	u.pad()
	u.root = evolve.Step(u.store, u.root)
	u.generation = u.generation.Add(store.PopulationOf(u.StepSize()))
	debug.Log(nil, "Step", "generation now %s", u.generation)
}

// SetCellAlive marks the cell at pos alive, expanding the root first if
// pos falls outside its current range.
func (u *Universe) SetCellAlive(pos store.Position) error {
	for pos.X < store.MinCoord(u.rootLevel()) || pos.X > store.MaxCoord(u.rootLevel()) ||
		pos.Y < store.MinCoord(u.rootLevel()) || pos.Y > store.MaxCoord(u.rootLevel()) {
		if u.rootLevel() >= store.MaxLevel {
			return xerrors.ErrCoordinateOutOfRange{X: pos.X, Y: pos.Y}
		}
		if err := u.expandRoot(); err != nil {
			return err
		}
	}
	u.root = u.store.SetCellAlive(u.root, pos)
	return nil
}

// GetCell reports whether the cell at pos is alive.
func (u *Universe) GetCell(pos store.Position) bool {
	if pos.X < store.MinCoord(u.rootLevel()) || pos.X > store.MaxCoord(u.rootLevel()) ||
		pos.Y < store.MinCoord(u.rootLevel()) || pos.Y > store.MaxCoord(u.rootLevel()) {
		return false
	}
	return u.store.GetCell(u.root, pos)
}

// GetAliveCells returns every alive cell, in absolute coordinates.
func (u *Universe) GetAliveCells() []store.Position {
	return u.store.GetAliveCells(u.root)
}

// ContainsAliveCells reports whether any cell within box is alive. Cells
// outside the root's range are dead, so box is first clipped to that range.
func (u *Universe) ContainsAliveCells(box store.BoundingBox) bool {
	lo, hi := store.MinCoord(u.rootLevel()), store.MaxCoord(u.rootLevel())
	if box.LowerRight.X < lo || box.UpperLeft.X > hi || box.LowerRight.Y < lo || box.UpperLeft.Y > hi {
		return false
	}
	box = store.NewBoundingBox(
		store.Position{X: max64(box.UpperLeft.X, lo), Y: max64(box.UpperLeft.Y, lo)},
		store.Position{X: min64(box.LowerRight.X, hi), Y: min64(box.LowerRight.Y, hi)},
	)
	return u.store.ContainsAliveCells(u.root, box)
}

// BoundingBox returns the smallest box containing every alive cell.
func (u *Universe) BoundingBox() opt.Option[store.BoundingBox] {
	box, ok := u.store.BoundingBox(u.root)
	if !ok {
		return opt.None[store.BoundingBox]()
	}
	return opt.Some(box)
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

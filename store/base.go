// Package store implements the node arena and canonicalization table that
// back the Hashlife engine: every distinct cell pattern is interned exactly
// once, and nodes refer to each other by small integer handles rather than
// pointers.
package store

import (
	"fmt"

	"github.com/flier/hashlife/bitboard"
)

// Level is the height of a node above the cell grid. A LevelThree node
// covers an 8x8 region, a LevelFour node covers 16x16, and each level above
// that doubles the side length of the region an Interior node covers.
type Level uint8

const (
	// LevelThree is the smallest primitive leaf, an 8x8 bit-board. It
	// exists only so a caller can build up a universe cell by cell without
	// first promoting to the 16x16 canonical leaf; the evolution engine
	// itself never evolves a LevelThree node directly.
	LevelThree Level = 3
	// LevelFour is the canonical leaf level: the evolution engine's base
	// case operates on 16x16 bit-boards.
	LevelFour Level = 4
	// MaxLevel bounds how large a universe can grow; at level 64 a root
	// node's coordinate range spans the full int64 domain.
	MaxLevel Level = 64
)

// Kind distinguishes the three node representations a NodeBase can hold.
type Kind uint8

const (
	// KindLeaf3 holds an 8x8 bit-board.
	KindLeaf3 Kind = iota
	// KindLeaf4 holds a 16x16 bit-board.
	KindLeaf4
	// KindInterior holds four child NodeIds.
	KindInterior
)

// NodeId is an opaque, stable handle to a canonical node. The zero value is
// never a valid id; ids are assigned starting at 1, so the zero value
// returned alongside false by the lookup methods never names a node.
type NodeId uint32

// NodeBase is the comparable payload a node is canonicalized on. Two nodes
// with equal NodeBase values are the same node: leaves compare by their bit
// pattern, interior nodes compare by their children's ids (not by the
// children's own structure, since those children are already canonical).
type NodeBase struct {
	Kind Kind
	Leaf3 [8]uint8
	Leaf4 bitboard.Board16
	NW, NE, SW, SE NodeId
}

func leaf3Base(grid [8]uint8) NodeBase  { return NodeBase{Kind: KindLeaf3, Leaf3: grid} }
func leaf4Base(grid bitboard.Board16) NodeBase { return NodeBase{Kind: KindLeaf4, Leaf4: grid} }

func interiorBase(nw, ne, sw, se NodeId) NodeBase {
	return NodeBase{Kind: KindInterior, NW: nw, NE: ne, SW: sw, SE: se}
}

// Population is a 128-bit unsigned population counter, split into hi/lo
// halves because Go lacks a native 128-bit integer type and the examples
// carry no big-integer dependency suited to a hot per-node counter.
type Population struct {
	Hi, Lo uint64
}

// PopulationOf constructs a Population from a small (<2^64) count.
func PopulationOf(n uint64) Population { return Population{Lo: n} }

// Add returns p+q with carry into Hi.
func (p Population) Add(q Population) Population {
	lo := p.Lo + q.Lo
	hi := p.Hi + q.Hi
	if lo < p.Lo { // carry
		hi++
	}
	return Population{Hi: hi, Lo: lo}
}

// IsZero reports whether the population is exactly zero.
func (p Population) IsZero() bool { return p.Hi == 0 && p.Lo == 0 }

// Uint64 returns the low 64 bits of the population, for callers that know
// the count fits (as it always does below level 32).
func (p Population) Uint64() uint64 { return p.Lo }

func (p Population) String() string {
	if p.Hi == 0 {
		return fmt.Sprintf("%d", p.Lo)
	}
	return fmt.Sprintf("0x%016x%016x", p.Hi, p.Lo)
}

// Node is a canonical, immutable node: either a leaf bit-board or an
// interior fork, tagged with its level and cached population.
type Node struct {
	Base       NodeBase
	Level      Level
	Population Population
}

// IsLeaf reports whether n is a LevelThree or LevelFour leaf.
func (n Node) IsLeaf() bool { return n.Base.Kind != KindInterior }

// Grid4 returns the 16x16 bit-board of a LevelFour leaf. Panics if n is not
// a LevelFour leaf.
func (n Node) Grid4() bitboard.Board16 {
	if n.Base.Kind != KindLeaf4 {
		panic("store: Grid4 called on a non-LevelFour node")
	}
	return n.Base.Leaf4
}

// Grid3 returns the 8x8 bit-board of a LevelThree leaf. Panics if n is not
// a LevelThree leaf.
func (n Node) Grid3() [8]uint8 {
	if n.Base.Kind != KindLeaf3 {
		panic("store: Grid3 called on a non-LevelThree node")
	}
	return n.Base.Leaf3
}

package bitboard_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/flier/hashlife/bitboard"
)

func glider() Board16 {
	var b Board16
	b = SetCellAlive(b, -1, -2)
	b = SetCellAlive(b, 0, -1)
	b = SetCellAlive(b, -2, 0)
	b = SetCellAlive(b, -1, 0)
	b = SetCellAlive(b, 0, 0)
	return b
}

func TestGetSetCell(t *testing.T) {
	Convey("Given an empty board", t, func() {
		var b Board16

		Convey("Every cell starts dead", func() {
			So(PopCount(b), ShouldEqual, uint64(0))
			So(GetCell(b, -8, -8), ShouldBeFalse)
			So(GetCell(b, 7, 7), ShouldBeFalse)
		})

		Convey("Setting a cell alive makes only that cell alive", func() {
			b = SetCellAlive(b, 3, -5)

			So(GetCell(b, 3, -5), ShouldBeTrue)
			So(PopCount(b), ShouldEqual, uint64(1))

			for y := -8; y < 8; y++ {
				for x := -8; x < 8; x++ {
					if x == 3 && y == -5 {
						continue
					}
					So(GetCell(b, x, y), ShouldBeFalse)
				}
			}
		})
	})
}

func TestPopCount(t *testing.T) {
	Convey("Given a glider pattern", t, func() {
		b := glider()

		Convey("It has exactly 5 live cells", func() {
			So(PopCount(b), ShouldEqual, uint64(5))
		})
	})
}

func TestStepLevel5(t *testing.T) {
	Convey("Given a level-5 interior with a centered glider in its NW child", t, func() {
		nw := glider()
		var ne, sw, se Board16

		Convey("Stepping by one generation keeps only the glider cell that lies inside the returned central board", func() {
			// The NW child's local origin is (-8, -8) in the level-5 node and
			// the result covers only the node's central 16x16, so of the
			// one-generation glider only the cell at (-8, -8) is inside it.
			result := StepLevel5(nw, ne, sw, se, 0)
			So(PopCount(result), ShouldEqual, uint64(1))
		})
	})

	Convey("Given all-empty children", t, func() {
		var nw, ne, sw, se Board16

		Convey("Stepping an empty board at any step size stays empty", func() {
			for k := uint8(0); k < 3; k++ {
				result := StepLevel5(nw, ne, sw, se, k)
				So(PopCount(result), ShouldEqual, uint64(0))
			}
		})
	})
}

func TestJumpLevel5(t *testing.T) {
	Convey("Given all-empty children", t, func() {
		var nw, ne, sw, se Board16

		Convey("Jumping an empty board stays empty", func() {
			result := JumpLevel5(nw, ne, sw, se)
			So(PopCount(result), ShouldEqual, uint64(0))
		})
	})

	Convey("Given a level-5 interior with a glider in the NW child", t, func() {
		nw := glider()
		var ne, sw, se Board16

		Convey("JumpLevel5 (8 generations) moves the glider by (+2, +2) into the returned central board", func() {
			viaJump := JumpLevel5(nw, ne, sw, se)

			// A glider cell at NW-local (x, y) sits at (x-8, y-8) in the
			// level-5 node and at (x-6, y-6) eight generations later.
			var want Board16
			for _, c := range [][2]int{{-1, -2}, {0, -1}, {-2, 0}, {-1, 0}, {0, 0}} {
				want = SetCellAlive(want, c[0]-6, c[1]-6)
			}
			So(viaJump, ShouldResemble, want)
		})
	})
}

func TestHorizVertCenter(t *testing.T) {
	Convey("Given two boards with cells near their shared boundary", t, func() {
		var w, e Board16
		w = SetCellAlive(w, 7, 0)
		e = SetCellAlive(e, -8, 0)

		Convey("Horiz splices them into one board with both cells adjacent", func() {
			spliced := Horiz(w, e)
			So(PopCount(spliced), ShouldEqual, uint64(2))
		})
	})

	Convey("Given four boards each with one cell in their innermost corner", t, func() {
		var nw, ne, sw, se Board16
		nw = SetCellAlive(nw, 7, 7)
		ne = SetCellAlive(ne, -8, 7)
		sw = SetCellAlive(sw, 7, -8)
		se = SetCellAlive(se, -8, -8)

		Convey("Center collects all four into one board", func() {
			spliced := Center(nw, ne, sw, se)
			So(PopCount(spliced), ShouldEqual, uint64(4))
		})
	})
}

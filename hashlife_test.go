package hashlife_test

import (
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/flier/hashlife"
	"github.com/flier/hashlife/store"
)

func sortedPositions(cells []store.Position) []store.Position {
	out := append([]store.Position(nil), cells...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func gliderCells() []store.Position {
	return []store.Position{
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
}

func blinkerHorizCells() []store.Position {
	return []store.Position{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}
}

func blinkerVertCells() []store.Position {
	return []store.Position{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}}
}

// pulsarCells returns the classic 48-cell, period-3 pulsar, centered on the
// origin: a horizontal bar of three cells at each of y in {-6,-1,1,6}
// (on both sides of the vertical axis), mirrored into a vertical bar of
// three cells at each of x in {-6,-1,1,6}.
func pulsarCells() []store.Position {
	var cells []store.Position
	arms := [][]int64{{-4, -3, -2}, {2, 3, 4}}
	for _, y := range []int64{-6, -1, 1, 6} {
		for _, arm := range arms {
			for _, x := range arm {
				cells = append(cells, store.Position{X: x, Y: y})
			}
		}
	}
	for _, x := range []int64{-6, -1, 1, 6} {
		for _, arm := range arms {
			for _, y := range arm {
				cells = append(cells, store.Position{X: x, Y: y})
			}
		}
	}
	return cells
}

func TestNewUniverseIsEmpty(t *testing.T) {
	Convey("Given a new universe", t, func() {
		u := New()

		Convey("It has zero population and generation", func() {
			So(u.Population().IsZero(), ShouldBeTrue)
			So(u.Generation().IsZero(), ShouldBeTrue)
		})

		Convey("Stepping it stays empty", func() {
			u.Step()
			So(u.Population().IsZero(), ShouldBeTrue)
		})
	})
}

func TestGliderTranslatesAfterFourGenerations(t *testing.T) {
	Convey("Given a universe containing a single glider", t, func() {
		u, err := FromAliveCells(gliderCells())
		So(err, ShouldBeNil)

		Convey("Stepping by one generation four times translates it by (+1, +1) and conserves population", func() {
			for i := 0; i < 4; i++ {
				u.Step()
			}

			So(u.Population().Uint64(), ShouldEqual, uint64(5))
			So(u.Generation().Uint64(), ShouldEqual, uint64(4))

			want := sortedPositions(gliderCells())
			for i := range want {
				want[i] = want[i].Offset(1, 1)
			}

			got := sortedPositions(u.GetAliveCells())
			So(got, ShouldResemble, want)
		})
	})
}

func TestGliderLargeJumpTranslatesProportionally(t *testing.T) {
	Convey("Given a universe containing a single glider with step exponent 10", t, func() {
		u, err := FromAliveCells(gliderCells())
		So(err, ShouldBeNil)

		u.SetStepLog2(10) // 1024 generations per Step call

		Convey("A single step advances 1024 generations and translates by (+256, +256)", func() {
			u.Step()

			So(u.Generation().Uint64(), ShouldEqual, uint64(1024))
			So(u.Population().Uint64(), ShouldEqual, uint64(5))

			want := sortedPositions(gliderCells())
			for i := range want {
				want[i] = want[i].Offset(256, 256)
			}

			got := sortedPositions(u.GetAliveCells())
			So(got, ShouldResemble, want)
		})
	})
}

func TestBlinkerOscillatesAndStepSizeChangesOrientation(t *testing.T) {
	Convey("Given a universe containing a horizontal blinker", t, func() {
		Convey("Stepping by one generation (k=0) turns it vertical", func() {
			u, err := FromAliveCells(blinkerHorizCells())
			So(err, ShouldBeNil)

			u.Step()

			got := sortedPositions(u.GetAliveCells())
			want := sortedPositions(blinkerVertCells())
			So(got, ShouldResemble, want)
			So(u.Generation().Uint64(), ShouldEqual, uint64(1))
		})

		Convey("Stepping by two generations (k=1) in one call leaves it horizontal, since the period is 2", func() {
			u, err := FromAliveCells(blinkerHorizCells())
			So(err, ShouldBeNil)

			u.SetStepLog2(1)
			u.Step()

			got := sortedPositions(u.GetAliveCells())
			want := sortedPositions(blinkerHorizCells())
			So(got, ShouldResemble, want)
			So(u.Generation().Uint64(), ShouldEqual, uint64(2))
		})
	})
}

func TestPulsarPeriodThree(t *testing.T) {
	Convey("Given a universe containing a pulsar", t, func() {
		u, err := FromAliveCells(pulsarCells())
		So(err, ShouldBeNil)

		So(u.Population().Uint64(), ShouldEqual, uint64(48))

		Convey("Stepping by one generation three times returns the same alive-cell set", func() {
			for i := 0; i < 3; i++ {
				u.Step()
			}

			got := sortedPositions(u.GetAliveCells())
			want := sortedPositions(pulsarCells())
			So(got, ShouldResemble, want)
		})
	})
}

func TestPulsarFastForward(t *testing.T) {
	Convey("Given a universe containing a pulsar with step exponent 10", t, func() {
		u, err := FromAliveCells(pulsarCells())
		So(err, ShouldBeNil)

		u.SetStepLog2(10)

		Convey("Stepping three times (3 * 2^10 generations, a multiple of the period) returns the same alive-cell set", func() {
			for i := 0; i < 3; i++ {
				u.Step()
			}

			So(u.Generation().Uint64(), ShouldEqual, uint64(3*1024))

			got := sortedPositions(u.GetAliveCells())
			want := sortedPositions(pulsarCells())
			So(got, ShouldResemble, want)
		})
	})
}

func TestSetAndGetCell(t *testing.T) {
	Convey("Given a new universe", t, func() {
		u := New()

		Convey("Setting a cell alive far from the origin expands the root and reports alive", func() {
			pos := store.Position{X: 100, Y: -100}
			err := u.SetCellAlive(pos)

			So(err, ShouldBeNil)
			So(u.GetCell(pos), ShouldBeTrue)
			So(u.Population().Uint64(), ShouldEqual, uint64(1))
		})

		Convey("A cell that was never set is not alive", func() {
			So(u.GetCell(store.Position{X: 5, Y: 5}), ShouldBeFalse)
		})
	})
}

func TestContainsAliveCellsAndBoundingBox(t *testing.T) {
	Convey("Given a universe with a blinker", t, func() {
		u, err := FromAliveCells(blinkerHorizCells())
		So(err, ShouldBeNil)

		Convey("ContainsAliveCells finds the pattern's own box and misses a disjoint one", func() {
			own := store.NewBoundingBox(store.Position{X: -2, Y: -2}, store.Position{X: 2, Y: 2})
			elsewhere := store.NewBoundingBox(store.Position{X: 50, Y: 50}, store.Position{X: 60, Y: 60})

			So(u.ContainsAliveCells(own), ShouldBeTrue)
			So(u.ContainsAliveCells(elsewhere), ShouldBeFalse)
		})

		Convey("BoundingBox returns the pattern's exact extent", func() {
			box := u.BoundingBox()
			So(box.IsSome(), ShouldBeTrue)

			b := box.Unwrap()
			So(b.UpperLeft.X, ShouldEqual, int64(-1))
			So(b.UpperLeft.Y, ShouldEqual, int64(0))
			So(b.LowerRight.X, ShouldEqual, int64(1))
			So(b.LowerRight.Y, ShouldEqual, int64(0))
		})
	})
}

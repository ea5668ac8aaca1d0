package xerrors

import "fmt"

// ErrInvalidLevel is returned when growing a universe's root would take it
// past the largest representable level. The store's constructors do not
// return it: they check neither for a level below the smallest primitive
// leaf nor for an interior above the largest level.
type ErrInvalidLevel struct {
	Level int
}

func (e ErrInvalidLevel) Error() string {
	return fmt.Sprintf("xerrors: invalid level %d", e.Level)
}

// ErrCoordinateOutOfRange is returned when a coordinate cannot be brought
// into a root's range even after padding, because doing so would require a
// level beyond the largest representable one.
type ErrCoordinateOutOfRange struct {
	X, Y int64
}

func (e ErrCoordinateOutOfRange) Error() string {
	return fmt.Sprintf("xerrors: coordinate (%d, %d) out of range", e.X, e.Y)
}

// ChildLevelMismatch is not an error value returned to a caller: it signals
// a broken internal invariant (an interior construction was given children
// of differing levels) and must always panic, never be silently coerced.
// It is exported as a panic value (rather than an exported Assert helper)
// so a recovering caller can still identify the cause with errors.As.
type ChildLevelMismatch struct {
	NW, NE, SW, SE int
}

func (e ChildLevelMismatch) Error() string {
	return fmt.Sprintf("xerrors: child level mismatch: nw=%d ne=%d sw=%d se=%d",
		e.NW, e.NE, e.SW, e.SE)
}

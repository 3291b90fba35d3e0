package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// MinBoardSize is the smallest board that fits the starting snake
const MinBoardSize = 3

var (
	ErrOutOfRange       = errors.New("cell out of range")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrBoardTooSmall    = errors.New("board too small")
)

// Cell is a grid coordinate, both axes counted from 1
type Cell struct {
	X, Y int
}

func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

func (c Cell) Equals(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// Step returns the cell one unit away in the given direction.
// The result is not bounds checked.
func (c Cell) Step(d Direction) (Cell, bool) {
	dx, dy, ok := d.Delta()
	if !ok {
		return c, false
	}
	return Cell{X: c.X + dx, Y: c.Y + dy}, true
}

// Adjacent reports whether two cells differ by exactly one unit on exactly one axis
func (c Cell) Adjacent(other Cell) bool {
	dx := abs(c.X - other.X)
	dy := abs(c.Y - other.Y)
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

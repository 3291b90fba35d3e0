package entity

import (
	"testing"

	"grid-snake/game/types"
)

func testSnake(dir types.Direction) *Snake {
	return NewSnake([]types.Cell{
		types.NewCell(3, 3),
		types.NewCell(2, 3),
		types.NewCell(1, 3),
	}, dir)
}

func TestSetDirectionRejectsReverse(t *testing.T) {
	for _, current := range types.Directions {
		s := testSnake(current)
		if s.SetDirection(current.Reverse()) {
			t.Errorf("reverse of %s accepted", current)
		}
		if s.Direction() != current {
			t.Errorf("direction changed to %s after rejected reverse", s.Direction())
		}
		// rejection is idempotent
		s.SetDirection(current.Reverse())
		if s.Direction() != current {
			t.Errorf("second reverse changed direction to %s", s.Direction())
		}
	}
}

func TestSetDirectionAcceptsOthers(t *testing.T) {
	for _, current := range types.Directions {
		for _, next := range types.Directions {
			if next == current.Reverse() {
				continue
			}
			s := testSnake(current)
			if !s.SetDirection(next) {
				t.Errorf("%s -> %s rejected", current, next)
			}
			if s.Direction() != next {
				t.Errorf("%s -> %s left direction %s", current, next, s.Direction())
			}
		}
	}
}

func TestSetDirectionRejectsUnknown(t *testing.T) {
	s := testSnake(types.Up)
	if s.SetDirection(types.None) || s.SetDirection(types.Direction(9)) {
		t.Error("unknown direction accepted")
	}
	if s.Direction() != types.Up {
		t.Errorf("direction = %s, want up", s.Direction())
	}
}

func TestMoveKeepsLength(t *testing.T) {
	s := testSnake(types.Right)
	s.Move(types.NewCell(4, 3))

	want := []types.Cell{types.NewCell(4, 3), types.NewCell(3, 3), types.NewCell(2, 3)}
	assertCells(t, s.Cells(), want)
	if s.GetTail() != types.NewCell(2, 3) {
		t.Errorf("tail = %v", s.GetTail())
	}
}

func TestGrowKeepsTail(t *testing.T) {
	s := testSnake(types.Right)
	s.Grow(types.NewCell(4, 3))

	want := []types.Cell{types.NewCell(4, 3), types.NewCell(3, 3), types.NewCell(2, 3), types.NewCell(1, 3)}
	assertCells(t, s.Cells(), want)
	if !s.Contains(types.NewCell(1, 3)) {
		t.Error("tail lost after growing")
	}
}

func TestCellsIsSnapshot(t *testing.T) {
	s := testSnake(types.Right)
	cells := s.Cells()
	cells[0] = types.NewCell(9, 9)
	if s.GetHead() != types.NewCell(3, 3) {
		t.Errorf("snapshot write leaked into snake: head = %v", s.GetHead())
	}
}

func TestFoodCell(t *testing.T) {
	f := NewFood(types.NewCell(4, 1))
	if f.Cell() != types.NewCell(4, 1) {
		t.Errorf("food cell = %v", f.Cell())
	}
}

func assertCells(t *testing.T, got, want []types.Cell) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

package entity

import (
	"grid-snake/game/types"
)

// Snake is the body, head at index 0, plus the current heading.
type Snake struct {
	cells     []types.Cell
	direction types.Direction
}

func NewSnake(cells []types.Cell, direction types.Direction) *Snake {
	body := make([]types.Cell, len(cells))
	copy(body, cells)
	return &Snake{
		cells:     body,
		direction: direction,
	}
}

// Cells returns a snapshot of the body
func (s *Snake) Cells() []types.Cell {
	body := make([]types.Cell, len(s.cells))
	copy(body, s.cells)
	return body
}

func (s *Snake) Len() int {
	return len(s.cells)
}

func (s *Snake) GetHead() types.Cell {
	return s.cells[0]
}

func (s *Snake) GetTail() types.Cell {
	return s.cells[len(s.cells)-1]
}

func (s *Snake) Contains(c types.Cell) bool {
	for _, part := range s.cells {
		if part.Equals(c) {
			return true
		}
	}
	return false
}

// Move prepends the new head and drops the tail, keeping the length
func (s *Snake) Move(newHead types.Cell) {
	s.Grow(newHead)
	s.RemoveTail()
}

// Grow prepends the new head and keeps the tail
func (s *Snake) Grow(newHead types.Cell) {
	s.cells = append(s.cells, types.Cell{})
	copy(s.cells[1:], s.cells)
	s.cells[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.cells) > 0 {
		s.cells = s.cells[:len(s.cells)-1]
	}
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// SetDirection changes the heading unless dir is unknown or the exact
// reverse of the current heading. Asking for the current heading is
// accepted and changes nothing. Reports whether the request was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() {
		return false
	}
	if dir == s.direction.Reverse() {
		return false
	}
	s.direction = dir
	return true
}

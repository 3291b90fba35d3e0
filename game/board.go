package game

import (
	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Outcome is the result of one Board tick
type Outcome int

const (
	OutcomeMoved    Outcome = iota // plain move, same length
	OutcomeAte                     // grew by one, new food placed
	OutcomeCollided                // no valid move, nothing changed
	OutcomeFilled                  // grew into the last free cell, no food left
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	case OutcomeFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// Events receives the signals a tick produces, synchronously inside Run.
type Events interface {
	Ate()
	GameOver()
}

// EventFuncs adapts plain functions to Events. Nil fields are skipped.
type EventFuncs struct {
	OnAte      func()
	OnGameOver func()
}

func (e EventFuncs) Ate() {
	if e.OnAte != nil {
		e.OnAte()
	}
}

func (e EventFuncs) GameOver() {
	if e.OnGameOver != nil {
		e.OnGameOver()
	}
}

// CellKind classifies a board cell for drawing
type CellKind int

const (
	CellEmpty CellKind = iota
	CellFood
	CellSnakeHead
	CellSnakeBody
)

// Board owns the square grid, the snake and the food.
// It is not safe for concurrent use.
type Board struct {
	size         int
	cells        []types.Cell
	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewBoard builds a size x size board with a centred snake heading right
// and food on a random free cell. rng may be nil.
func NewBoard(size int, rng *rand.Rand) (*Board, error) {
	if size < types.MinBoardSize {
		return nil, errors.Wrapf(types.ErrBoardTooSmall, "size %d, need at least %d", size, types.MinBoardSize)
	}
	b := &Board{
		size:         size,
		cells:        createCellList(size),
		collisionMgr: manager.NewCollisionManager(size),
		foodMgr:      manager.NewFoodManager(rng),
	}
	snake, err := b.CreateSnake()
	if err != nil {
		return nil, err
	}
	b.snake = snake
	// a fresh board always has free cells
	b.food, _ = b.CreateFood()
	return b, nil
}

// createCellList enumerates the universe row by row
func createCellList(size int) []types.Cell {
	list := make([]types.Cell, 0, size*size)
	for y := 1; y <= size; y++ {
		for x := 1; x <= size; x++ {
			list = append(list, types.NewCell(x, y))
		}
	}
	return list
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Total() int {
	return b.size * b.size
}

// Cells returns the whole cell universe in row-major order
func (b *Board) Cells() []types.Cell {
	list := make([]types.Cell, len(b.cells))
	copy(list, b.cells)
	return list
}

func (b *Board) Snake() *entity.Snake {
	return b.snake
}

// Food is nil once the board is full
func (b *Board) Food() *entity.Food {
	return b.food
}

// FindCell returns the cell at (x, y) from the universe
func (b *Board) FindCell(x, y int) (types.Cell, error) {
	if !b.collisionMgr.InBounds(x, y) {
		return types.Cell{}, errors.Wrapf(types.ErrOutOfRange, "x:%d y:%d size:%d", x, y, b.size)
	}
	return b.cells[(y-1)*b.size+x-1], nil
}

// UsedCells is the snake body followed by the food cell, if any
func (b *Board) UsedCells() []types.Cell {
	var used []types.Cell
	if b.snake != nil {
		used = b.snake.Cells()
	}
	if b.food != nil {
		used = append(used, b.food.Cell())
	}
	return used
}

// FreeCells is the universe minus UsedCells, in universe order
func (b *Board) FreeCells() []types.Cell {
	used := make(map[types.Cell]struct{}, b.size)
	for _, c := range b.UsedCells() {
		used[c] = struct{}{}
	}
	free := make([]types.Cell, 0, len(b.cells)-len(used))
	for _, c := range b.cells {
		if _, ok := used[c]; !ok {
			free = append(free, c)
		}
	}
	return free
}

// CreateFood samples a free cell uniformly. It returns false when the
// board is full; that is the winning condition, not an error.
func (b *Board) CreateFood() (*entity.Food, bool) {
	return b.foodMgr.GenerateFood(b.FreeCells())
}

// CreateSnake builds the three cell starting snake with its head at
// (size/2, size/2), body trailing to the left. On boards narrower than
// six cells the head is pushed right so the body stays on the grid.
func (b *Board) CreateSnake() (*entity.Snake, error) {
	mid := b.size / 2
	headX := max(mid, 3)
	cells := make([]types.Cell, 0, 3)
	for i := 0; i < 3; i++ {
		c, err := b.FindCell(headX-i, mid)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return entity.NewSnake(cells, types.Right), nil
}

// CheckSnakeMove reports whether the next step stays on the board and
// avoids the current body. It does not change any state.
func (b *Board) CheckSnakeMove() (bool, error) {
	return b.collisionMgr.CheckMove(b.snake)
}

// CheckSnakeEat reports whether the next step lands on the food
func (b *Board) CheckSnakeEat() (bool, error) {
	return b.collisionMgr.CheckEat(b.snake, b.food)
}

// Run advances the simulation by one tick and reports the outcome.
// Blocked moves signal GameOver and leave the board untouched; eating
// signals Ate once. events may be nil. An error means a broken invariant
// and the tick is aborted.
func (b *Board) Run(events Events) (Outcome, error) {
	if events == nil {
		events = EventFuncs{}
	}

	ok, err := b.CheckSnakeMove()
	if err != nil {
		return OutcomeCollided, err
	}
	if !ok {
		log.Debug().Str("head", b.snake.GetHead().String()).Str("direction", b.snake.Direction().String()).Msg("snake blocked")
		events.GameOver()
		return OutcomeCollided, nil
	}

	next, err := b.collisionMgr.NextCell(b.snake)
	if err != nil {
		return OutcomeCollided, err
	}
	newHead, err := b.FindCell(next.X, next.Y)
	if err != nil {
		return OutcomeCollided, err
	}

	ate, err := b.CheckSnakeEat()
	if err != nil {
		return OutcomeCollided, err
	}
	if !ate {
		b.snake.Move(newHead)
		return OutcomeMoved, nil
	}

	b.snake.Grow(newHead)
	food, placed := b.CreateFood()
	b.food = food
	events.Ate()
	if !placed {
		log.Debug().Int("length", b.snake.Len()).Msg("board full")
		return OutcomeFilled, nil
	}
	return OutcomeAte, nil
}

// CellKind classifies (x, y). Food wins over snake and the head over the body.
func (b *Board) CellKind(x, y int) (CellKind, error) {
	c, err := b.FindCell(x, y)
	if err != nil {
		return CellEmpty, err
	}
	if b.food != nil && b.food.Cell().Equals(c) {
		return CellFood, nil
	}
	if b.snake.GetHead().Equals(c) {
		return CellSnakeHead, nil
	}
	if b.snake.Contains(c) {
		return CellSnakeBody, nil
	}
	return CellEmpty, nil
}

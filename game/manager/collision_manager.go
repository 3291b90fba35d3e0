package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"

	"github.com/pkg/errors"
)

type CollisionManager struct {
	size int
}

func NewCollisionManager(size int) *CollisionManager {
	return &CollisionManager{
		size: size,
	}
}

// NextCell computes the cell the head would enter this tick.
// The result may lie outside the board.
func (cm *CollisionManager) NextCell(snake *entity.Snake) (types.Cell, error) {
	next, ok := snake.GetHead().Step(snake.Direction())
	if !ok {
		return types.Cell{}, errors.Wrapf(types.ErrUnknownDirection, "heading %d", int(snake.Direction()))
	}
	return next, nil
}

// InBounds reports whether (x, y) lies in [1, size] on both axes
func (cm *CollisionManager) InBounds(x, y int) bool {
	return x >= 1 && x <= cm.size && y >= 1 && y <= cm.size
}

// isWallCollision checks if a position is off the board
func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.InBounds(pos.X, pos.Y)
}

// isSelfCollision checks the position against the whole current body.
// The tail is included even though a plain move would vacate it.
func (cm *CollisionManager) isSelfCollision(pos types.Cell, snake *entity.Snake) bool {
	return snake.Contains(pos)
}

// CheckMove returns false when the next step hits a wall or the body
func (cm *CollisionManager) CheckMove(snake *entity.Snake) (bool, error) {
	next, err := cm.NextCell(snake)
	if err != nil {
		return false, err
	}
	if cm.isWallCollision(next) {
		return false, nil
	}
	if cm.isSelfCollision(next, snake) {
		return false, nil
	}
	return true, nil
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food *entity.Food) bool {
	return food != nil && food.Cell().Equals(pos)
}

// CheckEat returns true when the next step lands on the food
func (cm *CollisionManager) CheckEat(snake *entity.Snake, food *entity.Food) (bool, error) {
	next, err := cm.NextCell(snake)
	if err != nil {
		return false, err
	}
	return cm.IsFoodCollision(next, food), nil
}

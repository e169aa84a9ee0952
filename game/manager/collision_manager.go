package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if the snake's head sits on the apple
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, apple *entity.Apple) bool {
	return snake.Head() == apple.Position
}

// ValidateSpawnPosition checks if a position is valid for placing the apple
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsSelfCollision reports whether moving the snake one cell in dir would hit its body.
// Snake.Advance applies the same rule; this is the read-only form for planners.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake, dir types.Direction) bool {
	return snake.Occupies(cm.grid.Step(snake.Head(), dir))
}

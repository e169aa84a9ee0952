package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Respawn moves the apple to a cell the snake does not occupy. It returns false when
// the snake fills the whole board.
func (fm *FoodManager) Respawn(apple *entity.Apple, snake *entity.Snake) bool {
	return apple.RandomizePosition(fm.rng, fm.grid, func(p types.Point) bool {
		return !fm.collisionMgr.ValidateSpawnPosition(p, snake)
	})
}

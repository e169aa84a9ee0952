package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// Apple is the fruit the snake eats.
type Apple struct {
	Position types.Point
	Color    types.Color
}

func NewApple() *Apple {
	return &Apple{Color: types.AppleColor}
}

// RandomizePosition moves the apple to a uniformly random cell for which occupied
// returns false. Sampling is retried MaxPlacementAttempts times, then the free cells
// are enumerated. It returns false, leaving the apple in place, when no cell is free.
func (a *Apple) RandomizePosition(rng *rand.Rand, grid types.Grid, occupied func(types.Point) bool) bool {
	for i := 0; i < types.MaxPlacementAttempts; i++ {
		p := grid.RandomCell(rng)
		if !occupied(p) {
			a.Position = p
			return true
		}
	}

	free := make([]types.Point, 0, grid.Size())
	for _, p := range grid.Cells() {
		if !occupied(p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return false
	}
	a.Position = free[rng.Intn(len(free))]
	return true
}

func (a *Apple) Draw(surface Surface) {
	surface.DrawCell(a.Position, a.Color)
}

package ai

import (
	"sort"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/joonazan/vec2"
)

// Movement is a candidate step scored by its distance to the target
type Movement struct {
	Direction types.Direction
	Magnitude float64
	Target    types.Point
}

type Movements []*Movement

func (m Movements) Len() int           { return len(m) }
func (m Movements) Less(i, j int) bool { return m[i].Magnitude < m[j].Magnitude }
func (m Movements) Swap(i, j int)      { m[i], m[j] = m[j], m[i] }

// Autopilot steers the snake greedily toward the apple, never into its own body
// while a free neighbour exists.
type Autopilot struct {
	grid       types.Grid
	collisions *manager.CollisionManager
}

func NewAutopilot(grid types.Grid) *Autopilot {
	return &Autopilot{grid: grid, collisions: manager.NewCollisionManager(grid)}
}

// Moves ranks the legal steps from the snake's head, closest to target first.
// Steps into the body are left out.
func (a *Autopilot) Moves(snake *entity.Snake, target types.Point) Movements {
	moves := Movements{}
	current := snake.Direction()
	for _, dir := range types.Directions {
		if dir == current.Opposite() {
			continue
		}
		if a.collisions.IsSelfCollision(snake, dir) {
			continue
		}
		next := a.grid.Step(snake.Head(), dir)
		moves = append(moves, &Movement{
			Direction: dir,
			Target:    next,
			Magnitude: a.distance(next, target).Length(),
		})
	}
	sort.Stable(moves)
	return moves
}

// Steer makes the best move the snake's next direction and returns it. A turn
// buffered by someone else is discarded. With no free neighbour the current
// direction is kept.
func (a *Autopilot) Steer(snake *entity.Snake, target types.Point) types.Direction {
	moves := a.Moves(snake, target)
	if len(moves) == 0 {
		snake.ClearPending()
		return snake.Direction()
	}
	best := moves[0].Direction
	if best == snake.Direction() {
		snake.ClearPending()
	} else {
		snake.SetPendingDirection(best)
	}
	return best
}

// distance is the shortest offset from p to q on the torus, in cells.
func (a *Autopilot) distance(p, q types.Point) vec2.Vector {
	dx := wrapDelta(q.X-p.X, a.grid.Width) / a.grid.CellSize
	dy := wrapDelta(q.Y-p.Y, a.grid.Height) / a.grid.CellSize
	return vec2.Vector{X: float64(dx), Y: float64(dy)}
}

func wrapDelta(d, size int) int {
	d %= size
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

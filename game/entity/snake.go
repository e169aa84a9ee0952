package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// Snake is the player-controlled snake. Body is kept tail first so a move is an
// append plus a front trim; Positions exposes it head first.
type Snake struct {
	body       []types.Point
	direction  types.Direction
	pending    types.Direction
	growing    bool
	grid       types.Grid
	rng        *rand.Rand
	Color      types.Color
	resetCount int
}

// NewSnake places a one-cell snake in the middle of the grid moving in a random direction.
func NewSnake(grid types.Grid, rng *rand.Rand) *Snake {
	s := &Snake{
		grid:  grid,
		rng:   rng,
		Color: types.SnakeColor,
	}
	s.Reset()
	s.resetCount = 0
	return s
}

// Head returns the leading segment.
func (s *Snake) Head() types.Point {
	return s.body[len(s.body)-1]
}

// Tail returns the trailing segment.
func (s *Snake) Tail() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int                   { return len(s.body) }
func (s *Snake) Direction() types.Direction { return s.direction }
func (s *Snake) Pending() types.Direction   { return s.pending }
func (s *Snake) Growing() bool              { return s.growing }

// Resets counts how many times the snake was put back to its start state.
func (s *Snake) Resets() int { return s.resetCount }

// Positions returns a copy of the body, head first.
func (s *Snake) Positions() []types.Point {
	out := make([]types.Point, len(s.body))
	for i, p := range s.body {
		out[len(s.body)-1-i] = p
	}
	return out
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// SetPendingDirection buffers a turn for the next tick. Reversals and repeats of the
// committed direction are dropped.
func (s *Snake) SetPendingDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.direction || dir == s.direction.Opposite() {
		return false
	}
	s.pending = dir
	return true
}

// ClearPending drops any buffered turn.
func (s *Snake) ClearPending() {
	s.pending = types.None
}

// CommitDirection applies the buffered turn, if any.
func (s *Snake) CommitDirection() {
	if s.pending != types.None {
		s.direction = s.pending
		s.pending = types.None
	}
}

// Advance moves the head one cell. If the next cell is already part of the body the
// snake is reset instead and SelfCollision is returned.
func (s *Snake) Advance() types.CollisionType {
	newHead := s.grid.Step(s.Head(), s.direction)
	if s.Occupies(newHead) {
		s.Reset()
		return types.SelfCollision
	}

	s.body = append(s.body, newHead)
	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[1:]
	}
	return types.NoCollision
}

// Reset shrinks the snake back to one centered cell with a fresh random direction.
func (s *Snake) Reset() {
	s.body = []types.Point{s.grid.Center()}
	s.direction = types.RandomDirection(s.rng)
	s.pending = types.None
	s.growing = false
	s.resetCount++
}

// MarkGrowth makes the next move keep the tail.
func (s *Snake) MarkGrowth() {
	s.growing = true
}

func (s *Snake) Draw(surface Surface) {
	for i := len(s.body) - 1; i >= 0; i-- {
		surface.DrawCell(s.body[i], s.Color)
	}
}

package game

import (
	"context"
	"time"

	"the-snake/game/entity"
	"the-snake/game/types"
	"the-snake/input"
)

// Frontend is the display and keyboard the loop runs against.
type Frontend interface {
	entity.Surface
	BeginFrame(background types.Color)
	DrawText(text string, x, y int, color types.Color)
	EndFrame()
	// PollKeys drains the keys pressed since the last call without blocking.
	PollKeys() []input.Key
	ShouldClose() bool
	Close()
}

// Steerer picks the snake's next direction instead of the keyboard.
type Steerer interface {
	Steer(snake *entity.Snake, target types.Point) types.Direction
}

// Loop drives a Game at a fixed tick interval while rendering every frame.
type Loop struct {
	Game      *Game
	Frontend  Frontend
	Input     *input.Handler
	Autopilot Steerer
	Interval  time.Duration

	now      func() time.Time
	lastTick time.Time
	frames   int
}

func NewLoop(g *Game, fe Frontend, handler *input.Handler, interval time.Duration) *Loop {
	return &Loop{
		Game:     g,
		Frontend: fe,
		Input:    handler,
		Interval: interval,
		now:      time.Now,
	}
}

// Run loops until a quit key, the frontend closing, or ctx being done.
// Quitting is not an error: Run returns nil in every case but a cancelled context.
func (l *Loop) Run(ctx context.Context) error {
	l.lastTick = l.now()
	for {
		if l.Input.Drain(l.Frontend.PollKeys(), l.Game.Snake) {
			return nil
		}
		if l.Frontend.ShouldClose() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if now := l.now(); now.Sub(l.lastTick) >= l.Interval {
			if l.Autopilot != nil {
				l.Autopilot.Steer(l.Game.Snake, l.Game.Apple.Position)
			}
			l.Game.Update()
			l.lastTick = now
		}

		l.draw()
	}
}

func (l *Loop) draw() {
	l.frames++
	l.Frontend.BeginFrame(types.BoardBackgroundColor)
	l.Game.Draw(l.Frontend)
	l.Frontend.DrawText(l.Game.StatusLine(), 4, 4, types.TextColor)
	l.Frontend.EndFrame()
}

package game

import (
	"fmt"
	"log"
	"time"

	"the-snake/audio"
	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"
	"the-snake/stats"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Options tune a new Game. Zero values pick sane defaults.
type Options struct {
	Seed    uint64 // 0 seeds from the clock
	Sounds  audio.Player
	History *stats.History
	Now     func() time.Time
}

// Game is one play session: it owns the board, the snake, the apple and everything
// needed to advance them.
type Game struct {
	UUID      string
	Grid      types.Grid
	Snake     *entity.Snake
	Apple     *entity.Apple
	Steps     int
	StartTime time.Time

	rng          *rand.Rand
	sounds       audio.Player
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

func NewGame(grid types.Grid, opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = audio.NopPlayer{}
	}

	rng := rand.New(rand.NewSource(seed))
	collisionMgr := manager.NewCollisionManager(grid)
	gameUUID := uuid.New().String()

	g := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		Snake:        entity.NewSnake(grid, rng),
		Apple:        entity.NewApple(),
		StartTime:    now(),
		rng:          rng,
		sounds:       sounds,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(gameUUID, opts.History, now),
	}

	// Generate initial apple
	g.foodMgr.Respawn(g.Apple, g.Snake)

	log.Printf("session %s started, seed=%d", gameUUID, seed)
	return g
}

// Update advances the game by one tick.
func (g *Game) Update() {
	g.Steps++

	g.Snake.CommitDirection()
	if g.Snake.Advance() == types.SelfCollision {
		g.stateMgr.GameOver()
		g.sounds.Play(audio.SoundCrash)
	}

	if g.collisionMgr.IsFoodCollision(g.Snake, g.Apple) {
		g.Snake.MarkGrowth()
		g.stateMgr.AddPoint()
		g.sounds.Play(audio.SoundEat)

		if !g.foodMgr.Respawn(g.Apple, g.Snake) {
			// Nowhere left to put the apple: the board is full
			log.Printf("board full at length %d", g.Snake.Len())
			g.stateMgr.GameOver()
			g.Snake.Reset()
			g.foodMgr.Respawn(g.Apple, g.Snake)
		}
	}
}

// Draw paints the snake then the apple.
func (g *Game) Draw(s entity.Surface) {
	for _, d := range []entity.Drawable{g.Snake, g.Apple} {
		d.Draw(s)
	}
}

// StatusLine is the text shown above the board.
func (g *Game) StatusLine() string {
	return fmt.Sprintf("Score: %d  Best: %d", g.stateMgr.Score(), g.stateMgr.HighScore())
}

func (g *Game) Score() int     { return g.stateMgr.Score() }
func (g *Game) HighScore() int { return g.stateMgr.HighScore() }

// GamesPlayed counts games finished in this session.
func (g *Game) GamesPlayed() int { return g.stateMgr.GamesPlayed() }

// Finish records the game in progress, if it scored, and saves the history.
func (g *Game) Finish() error {
	if g.stateMgr.Score() > 0 {
		g.stateMgr.GameOver()
	}
	history := g.stateMgr.History()
	if history == nil {
		return nil
	}
	return history.Save()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"the-snake/ai"
	"the-snake/audio"
	"the-snake/config"
	"the-snake/game"
	"the-snake/game/types"
	"the-snake/input"
	"the-snake/stats"
	"the-snake/term"
	"the-snake/ui"

	"github.com/pkg/errors"
)

const (
	windowTitle = "Snake"
	frameRate   = 60
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	cfg := config.LoadFromEnv()
	fs := flag.NewFlagSet("the-snake", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	var history *stats.History
	if cfg.StatsFile != "" {
		h, err := stats.Load(cfg.StatsFile)
		if err != nil {
			log.Printf("starting with an empty history: %v", err)
		}
		history = h
	}

	var sounds audio.Player = audio.NopPlayer{}
	if cfg.Sound {
		player := audio.NewSoundPlayer(cfg.Volume)
		if err := player.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer player.Close()
			sounds = player
		}
	}

	grid := types.DefaultGrid()
	g := game.NewGame(grid, game.Options{
		Seed:    cfg.Seed,
		Sounds:  sounds,
		History: history,
	})

	fe, err := openFrontend(cfg, grid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	// Deferred before Close so the report prints on a restored terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Crashed: %v\n%s\n", r, debug.Stack())
			code = 1
		}
	}()
	defer fe.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := game.NewLoop(g, fe, input.NewHandler(), cfg.TickInterval())
	if cfg.Autoplay {
		loop.Autopilot = ai.NewAutopilot(grid)
	}

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("loop stopped: %v", err)
	}

	if err := g.Finish(); err != nil {
		log.Printf("%v", err)
		fmt.Fprintf(os.Stderr, "Failed to save stats: %v\n", err)
	}
	log.Printf("session %s ended after %d games, best %d", g.UUID, g.GamesPlayed(), g.HighScore())
	return 0
}

func openFrontend(cfg *config.Config, grid types.Grid) (game.Frontend, error) {
	if cfg.Terminal {
		screen, err := term.New(grid, frameRate)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open terminal")
		}
		return screen, nil
	}
	return ui.OpenWindow(grid, windowTitle), nil
}

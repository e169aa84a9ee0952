package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"the-snake/game/types"
	"the-snake/stats"

	"github.com/pkg/errors"
)

// Environment variables read by LoadFromEnv
const (
	EnvSpeed  = "THE_SNAKE_SPEED"
	EnvSeed   = "THE_SNAKE_SEED"
	EnvStats  = "THE_SNAKE_STATS"
	EnvSound  = "THE_SNAKE_SOUND"
	EnvVolume = "THE_SNAKE_VOLUME"
	EnvDebug  = "THE_SNAKE_DEBUG"
)

// Config holds the run options. Flags take precedence over the environment,
// which takes precedence over the defaults.
type Config struct {
	Speed     int    // ticks per second
	Seed      uint64 // 0 picks a random seed
	StatsFile string
	Terminal  bool
	Autoplay  bool
	Sound     bool
	Volume    float64
	Debug     bool
}

func Default() *Config {
	return &Config{
		Speed:     types.Speed,
		StatsFile: stats.DefaultFile,
		Volume:    0.5,
	}
}

// LoadFromEnv returns the defaults overridden by any valid environment variable.
// Unparseable values are ignored.
func LoadFromEnv() *Config {
	cfg := Default()

	if v := os.Getenv(EnvSpeed); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			cfg.Speed = val
		}
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if val, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = val
		}
	}
	if v := os.Getenv(EnvStats); v != "" {
		cfg.StatsFile = v
	}
	if v := os.Getenv(EnvSound); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			cfg.Sound = val
		}
	}
	if v := os.Getenv(EnvVolume); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Volume = val
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = val
		}
	}

	return cfg
}

// RegisterFlags binds the command line flags to cfg, using its current values as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "Snake moves per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = random)")
	fs.StringVar(&cfg.StatsFile, "stats", cfg.StatsFile, "Game history file (empty = don't keep history)")
	fs.BoolVar(&cfg.Terminal, "term", cfg.Terminal, "Play in the terminal instead of a window")
	fs.BoolVar(&cfg.Autoplay, "autoplay", cfg.Autoplay, "Let the computer steer")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play sound effects")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Sound volume from 0 to 1")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write a debug log to logs/")
}

func (cfg *Config) Validate() error {
	if cfg.Speed <= 0 {
		return errors.Errorf("speed must be positive, got %d", cfg.Speed)
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return errors.Errorf("volume must be between 0 and 1, got %g", cfg.Volume)
	}
	return nil
}

// TickInterval is the time between two snake moves.
func (cfg *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(cfg.Speed)
}

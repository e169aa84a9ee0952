package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a game sound effect
type Sound int

const (
	SoundEat Sound = iota
	SoundCrash
)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[Sound]tone{
	SoundEat:   {freq: 880, duration: 50 * time.Millisecond},
	SoundCrash: {freq: 220, duration: 200 * time.Millisecond},
}

// Player plays game sounds.
type Player interface {
	Play(s Sound)
}

// NopPlayer discards every sound.
type NopPlayer struct{}

func (NopPlayer) Play(Sound) {}

// SoundPlayer renders sounds as short sine tones through the system speaker.
type SoundPlayer struct {
	volume      float64
	initialized bool
}

// NewSoundPlayer creates a player with master volume in [0, 1].
func NewSoundPlayer(volume float64) *SoundPlayer {
	return &SoundPlayer{volume: math.Max(0, math.Min(1, volume))}
}

// Init opens the speaker. Without it Play is a no-op.
func (p *SoundPlayer) Init() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "failed to initialize speaker")
	}
	p.initialized = true
	return nil
}

func (p *SoundPlayer) Play(s Sound) {
	if !p.initialized {
		return
	}
	streamer, err := p.streamer(s)
	if err != nil {
		return
	}
	speaker.Play(streamer)
}

// streamer builds the finite stream for a sound at the player's volume.
func (p *SoundPlayer) streamer(s Sound) (beep.Streamer, error) {
	t, ok := tones[s]
	if !ok {
		return nil, errors.Errorf("unknown sound %d", s)
	}

	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tone")
	}

	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.duration), sine),
		Base:     2,
		Volume:   math.Log2(math.Max(p.volume, 1e-3)),
		Silent:   p.volume == 0,
	}, nil
}

// Close releases the speaker.
func (p *SoundPlayer) Close() {
	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

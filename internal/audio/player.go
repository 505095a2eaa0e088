// Package audio plays helix-drop sound cues through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
)

// Player is a core.AudioSink backed by a beep mixer.
// Cues are queued on the mixer and never block the caller's tick.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before cues are audible.
func NewPlayer(cfg config.AudioConfig) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.ComboCues <= 0 {
		cfg.ComboCues = 1
	}
	if cfg.BaseFrequency <= 0 {
		cfg.BaseFrequency = 392
	}
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences all queued cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// ComboSound plays combo cue i, clamped to the configured cue count.
func (p *Player) ComboSound(i int) {
	i = core.Clamp(i, 0, p.cfg.ComboCues-1)
	p.play(ComboCue(p.cfg.BaseFrequency, i, p.rate))
}

// BounceCue plays the sound for a bounce kind.
func (p *Player) BounceCue(kind core.BounceKind) {
	p.play(BounceCue(p.cfg.BaseFrequency, kind, p.rate))
}

// GameOverCue plays the game over phrase.
func (p *Player) GameOverCue() {
	p.play(GameOverCue(p.cfg.BaseFrequency, p.rate))
}

// GameWinCue plays the level complete phrase.
func (p *Player) GameWinCue() {
	p.play(GameWinCue(p.cfg.BaseFrequency, p.rate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.cfg.Volume))
	speaker.Unlock()
}

// Open returns an initialized Player when audio is enabled, and a silent
// sink otherwise. When the speaker cannot be opened the silent sink is
// returned together with the error so callers can log it and keep going.
func Open(cfg config.AudioConfig) (core.AudioSink, func(), error) {
	if !cfg.Enabled {
		return core.SilentAudio{}, func() {}, nil
	}
	p := NewPlayer(cfg)
	if err := p.Init(); err != nil {
		return core.SilentAudio{}, func() {}, err
	}
	return p, p.Close, nil
}

var _ core.AudioSink = (*Player)(nil)

// Package helix implements the helix-drop game modes on top of the sim core:
// input to shaft rotation, level flow, HUD and terminal rendering.
package helix

import (
	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/games/helix/sim"
	"github.com/vovakirdan/helix-drop/internal/registry"
)

// Game phases
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateLost     = "lost"
	StateWon      = "won"
	StateAdvance  = "advance" // Endless mode: level won, next one starts shortly
	StateNoLayout = "nolayout"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Levels scored separately, Enter for the next one
	ModeEndless                  // Levels chain automatically, score accumulates
)

const (
	advanceDelay = 60 // Ticks between a win and the next endless level
	deltaTicks   = 90 // Ticks the +delta HUD hint stays visible
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game for helix-drop.
type Game struct {
	mode GameMode

	runtime core.RuntimeConfig
	cfg     config.HelixConfig

	session *sim.LevelSession
	stepper *sim.SimulationStepper
	audio   core.AudioSink

	firstLevel int
	firstColor sim.ColorID

	state      string
	level      int
	levelColor sim.ColorID // Ball color the current level started with
	carried    int         // Endless: score banked from finished levels
	lastDelta  int
	deltaLeft  int
	advanceIn  int
	autopilot  bool

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign, audio: core.SilentAudio{}}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, audio: core.SilentAudio{}}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "helix_endless"
	}
	return "helix"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Helix Drop (Endless)"
	}
	return "Helix Drop"
}

// SetAudioSink routes sound cues to sink.
func (g *Game) SetAudioSink(sink core.AudioSink) {
	if sink == nil {
		sink = core.SilentAudio{}
	}
	g.audio = sink
}

// StartAt sets the level and ball color new runs start with. An empty color
// keeps the default. Returns false for colors outside the palette.
func (g *Game) StartAt(level int, color string) bool {
	g.firstLevel = max(level, 1)
	if color == "" {
		g.firstColor = sim.ColorNone
		return true
	}
	c, ok := sim.ParseColor(color)
	if ok {
		g.firstColor = c
	}
	return ok
}

// SetAutopilot lets the game steer itself.
func (g *Game) SetAutopilot(on bool) {
	g.autopilot = on
}

// Reset loads the config and starts the configured first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHelix(configPath)
	if err != nil {
		cfg = config.DefaultHelixConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHelixPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.minScreenW = 30
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.carried = 0
	g.startLevel(max(g.firstLevel, 1), g.firstColor)
}

// Resize adapts to a new screen size keeping the level running.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// startLevel builds a fresh session for level carrying the ball color.
func (g *Game) startLevel(level int, color sim.ColorID) {
	g.level = level
	g.levelColor = color
	g.lastDelta = 0
	g.deltaLeft = 0
	g.advanceIn = 0

	session, err := NewSession(g.cfg, g.runtime.Seed, sim.Params{Level: level, LastColor: color})
	if err != nil {
		g.session = nil
		g.state = StateNoLayout
		return
	}
	g.session = session
	g.stepper = sim.NewSimulationStepper(SimSettings(g.cfg), sim.FixedClock(g.runtime.TickSeconds()))
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateWon && in.Has(core.ActionConfirm) {
		g.startLevel(g.level+1, g.session.Ball.Color)
		return core.StepResult{State: g.State()}
	}
	if g.state == StateAdvance {
		g.advanceIn--
		if g.advanceIn <= 0 {
			g.carried += g.session.Score
			g.startLevel(g.level+1, g.session.Ball.Color)
			return core.StepResult{State: g.State()}
		}
	}

	if g.state == StatePlaying {
		g.session.Rotate(g.rotation(in))
	}

	res := g.stepper.Tick(g.session)
	g.handleEvents(res.Events)
	sim.Dispatch(res.Events, g.audio)

	if g.deltaLeft > 0 {
		g.deltaLeft--
	}

	return core.StepResult{State: g.State()}
}

// rotation converts keys, pointer drag or the autopilot into a rotation delta.
func (g *Game) rotation(in core.InputFrame) float64 {
	speed := g.cfg.Input.KeyRotateSpeed
	if g.autopilot {
		return Steer(g.session, speed)
	}

	var delta float64
	if in.Has(core.ActionRotateLeft) {
		delta -= speed
	}
	if in.Has(core.ActionRotateRight) {
		delta += speed
	}
	return delta + in.DragDelta*g.cfg.Input.DragSensitivity
}

func (g *Game) handleEvents(events []sim.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case sim.ScoreFinalized:
			if e.Delta > 0 {
				g.lastDelta = e.Delta
				g.deltaLeft = deltaTicks
			}
		case sim.LevelEnded:
			switch {
			case e.Result == sim.GameOver:
				g.state = StateLost
			case g.mode == ModeEndless:
				g.state = StateAdvance
				g.advanceIn = advanceDelay
			default:
				g.state = StateWon
			}
		}
	}
}

// restart replays the current level (campaign) or the whole run (endless).
func (g *Game) restart() {
	if g.mode == ModeEndless {
		g.carried = 0
		g.startLevel(max(g.firstLevel, 1), g.firstColor)
		return
	}
	g.startLevel(g.level, g.levelColor)
}

// Score returns the score shown to the player.
func (g *Game) Score() int {
	if g.session == nil {
		return g.carried
	}
	return g.carried + g.session.Score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Level:    g.level,
		GameOver: g.state == StateLost || g.state == StateWon,
		Won:      g.state == StateWon,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the current game phase.
func (g *Game) Phase() string {
	return g.state
}

// Session exposes the running level.
func (g *Game) Session() *sim.LevelSession {
	return g.session
}

// Snapshot captures the running level for determinism checks.
func (g *Game) Snapshot() sim.Snapshot {
	if g.session == nil {
		return sim.Snapshot{}
	}
	return g.session.Snapshot()
}

func init() {
	registry.Register("helix", func() registry.Game {
		return New()
	})
	registry.Register("helix_endless", func() registry.Game {
		return NewEndless()
	})
}

package helix

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/games/helix/sim"
	"github.com/vovakirdan/helix-drop/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

// newOpenGame returns a game whose level has no chunks, so the ball drops
// straight onto the base.
func newOpenGame(mode GameMode) *Game {
	g := &Game{mode: mode, audio: core.SilentAudio{}}
	g.Reset(testRuntime())

	layout := sim.Layout{
		Base:    core.BoxAround(core.V3(0, -5, 0), core.V3(10, 1, 10)),
		Tiers:   1,
		TierGap: 12,
	}
	g.session = sim.NewLevelSession(layout, sim.Params{Level: 1, LastColor: sim.ColorBlue}, SimSettings(g.cfg), nil)
	return g
}

type recordingSink struct {
	combos  []int
	bounces []core.BounceKind
	wins    int
	losses  int
}

func (r *recordingSink) ComboSound(i int)            { r.combos = append(r.combos, i) }
func (r *recordingSink) BounceCue(k core.BounceKind) { r.bounces = append(r.bounces, k) }
func (r *recordingSink) GameOverCue()                { r.losses++ }
func (r *recordingSink) GameWinCue()                 { r.wins++ }

func stepUntil(g *Game, phase string, limit int) bool {
	for range limit {
		g.Step(core.NewInputFrame())
		if g.Phase() == phase {
			return true
		}
	}
	return false
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"helix", "helix_endless"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q should be registered", id)
		}
	}
	if New().ID() != "helix" || NewEndless().ID() != "helix_endless" {
		t.Error("unexpected mode IDs")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (sim.Snapshot, core.GameState) {
		g := New()
		g.SetAutopilot(true)
		g.Reset(testRuntime())
		for range 900 {
			g.Step(core.NewInputFrame())
		}
		return g.Snapshot(), g.State()
	}

	snap1, state1 := run()
	snap2, state2 := run()

	h1, h2 := snap1.Hash(), snap2.Hash()
	if h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
	if state1 != state2 {
		t.Errorf("States differ: %+v vs %+v", state1, state2)
	}
}

func TestRotationInput(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	speed := g.cfg.Input.KeyRotateSpeed

	in := core.NewInputFrame()
	in.Set(core.ActionRotateRight)
	g.Step(in)
	if math.Abs(g.Session().Rotation-speed) > 1e-9 {
		t.Errorf("Rotation after right = %v, want %v", g.Session().Rotation, speed)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionRotateLeft)
	in.Drag(2)
	g.Step(in)
	want := 2 * g.cfg.Input.DragSensitivity
	if math.Abs(g.Session().Rotation-want) > 1e-9 {
		t.Errorf("Rotation after left+drag = %v, want %v", g.Session().Rotation, want)
	}
}

func TestPauseFreezesSession(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	ticks := g.Session().Ticks
	y := g.Session().Ball.Position.Y
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Ticks != ticks || g.Session().Ball.Position.Y != y {
		t.Error("paused game should not advance")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestCampaignWinAndNextLevel(t *testing.T) {
	g := newOpenGame(ModeCampaign)
	sink := &recordingSink{}
	g.SetAudioSink(sink)

	if !stepUntil(g, StateWon, 600) {
		t.Fatalf("ball never reached the base, phase %q", g.Phase())
	}
	st := g.State()
	if !st.GameOver || !st.Won {
		t.Errorf("State after win = %+v", st)
	}
	if sink.wins != 1 {
		t.Errorf("win cues = %d, want 1", sink.wins)
	}

	// Without Confirm the level stays finished.
	g.Step(core.NewInputFrame())
	if g.Phase() != StateWon {
		t.Fatal("win should wait for confirm")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.Phase() != StatePlaying || g.State().Level != 2 {
		t.Fatalf("after confirm phase=%q level=%d", g.Phase(), g.State().Level)
	}
	if g.Session().Ball.Color != sim.ColorBlue {
		t.Errorf("ball color should carry over, got %v", g.Session().Ball.Color)
	}
	if g.State().Score != 0 {
		t.Errorf("campaign levels are scored separately, got %d", g.State().Score)
	}
}

func TestEndlessAdvancesAutomatically(t *testing.T) {
	g := newOpenGame(ModeEndless)

	if !stepUntil(g, StateAdvance, 600) {
		t.Fatalf("ball never reached the base, phase %q", g.Phase())
	}
	if g.State().GameOver {
		t.Error("endless win should not end the run")
	}
	won := g.Session().Score

	if !stepUntil(g, StatePlaying, advanceDelay+1) {
		t.Fatal("endless mode should start the next level")
	}
	if g.State().Level != 2 {
		t.Errorf("Level = %d, want 2", g.State().Level)
	}
	if g.State().Score != won {
		t.Errorf("Score = %d, want carried %d", g.State().Score, won)
	}
}

func TestRestartReplaysLevel(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionRotateRight)
	for range 5 {
		g.Step(in)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.Session().Ticks != 0 || g.Session().Rotation != 0 {
		t.Errorf("restart should build a fresh session, ticks=%d rotation=%v", g.Session().Ticks, g.Session().Rotation)
	}
	if g.Phase() != StatePlaying {
		t.Errorf("phase after restart = %q", g.Phase())
	}
}

func TestRenderShowsHUDAndOverlay(t *testing.T) {
	g := newOpenGame(ModeCampaign)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Score:") || !strings.Contains(out, "Level 1") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("ball not drawn")
	}

	stepUntil(g, StateWon, 600)
	g.Render(scr)
	if !strings.Contains(scr.String(), "LEVEL 1 CLEAR") {
		t.Errorf("win overlay missing:\n%s", scr.String())
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	g.Step(core.NewInputFrame())
	if g.Session().Ticks != 0 {
		t.Error("small screen should not advance the level")
	}

	scr := core.NewScreen(20, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected size hint")
	}
}

func TestResizeKeepsLevel(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	for range 5 {
		g.Step(core.NewInputFrame())
	}

	g.Resize(20, 10)
	g.Step(core.NewInputFrame())
	if g.Session().Ticks != 5 {
		t.Errorf("Ticks = %d, want 5 while too small", g.Session().Ticks)
	}

	g.Resize(100, 30)
	g.Step(core.NewInputFrame())
	if g.Session().Ticks != 6 {
		t.Errorf("Ticks = %d, want 6 after growing back", g.Session().Ticks)
	}
}

func TestStartLevelAndColor(t *testing.T) {
	g := New()
	if !g.StartAt(3, "amber") {
		t.Fatal("amber should be a valid start color")
	}
	g.Reset(testRuntime())
	if g.State().Level != 3 {
		t.Errorf("Level = %d, want 3", g.State().Level)
	}
	if g.Session().Ball.Color != sim.ColorAmber {
		t.Errorf("Ball color = %v, want amber", g.Session().Ball.Color)
	}
	if g.StartAt(1, "black") {
		t.Error("destroy tint should not be a start color")
	}
}

func TestLevelScalingFromConfig(t *testing.T) {
	cfg := config.DefaultHelixConfig()
	s1, err := NewSession(cfg, 1, sim.Params{Level: 1})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s3, err := NewSession(cfg, 1, sim.Params{Level: 3})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if s3.Tiers <= s1.Tiers {
		t.Errorf("level 3 should have more tiers: %d vs %d", s3.Tiers, s1.Tiers)
	}

	cfg.Difficulty.Enabled = false
	fixed, _ := NewSession(cfg, 1, sim.Params{Level: 3})
	if fixed.Tiers != cfg.Shaft.Tiers {
		t.Errorf("fixed difficulty tiers = %d, want %d", fixed.Tiers, cfg.Shaft.Tiers)
	}
}

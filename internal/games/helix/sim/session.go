package sim

import "github.com/vovakirdan/helix-drop/internal/core"

// Settings are the physics and rule constants of a level.
type Settings struct {
	Gravity     float64 // Downward acceleration, units/s^2
	FixedStep   float64 // Internal physics step, seconds
	TimeScale   float64 // Multiplier applied to tick time before stepping physics
	MaxSubSteps int

	BallStart  core.Vec3
	BallRadius float64

	Resolver ResolverConfig

	DecayRate float64   // Breaking chunk opacity lost per second
	Drift     core.Vec3 // Breaking chunk drift per second

	ComboCues int // Number of available combo sounds
}

// DefaultSettings returns the stock tuning. The game replaces these with
// values from helix.yaml, which starts the ball higher above tier 0.
func DefaultSettings() Settings {
	return Settings{
		Gravity:     20,
		FixedStep:   1.0 / 60.0,
		TimeScale:   2,
		MaxSubSteps: 10,
		BallStart:   core.V3(0, 4, 5),
		BallRadius:  1,
		Resolver: ResolverConfig{
			BounceVelocity:        12,
			HighVelocityBounce:    12,
			HighVelocityThreshold: 40,
			GameOverNudge:         2,
		},
		DecayRate: 3,
		Drift:     core.V3(0, -4, 0),
		ComboCues: 22,
	}
}

// Params are the startup parameters of one level.
type Params struct {
	Level     int
	LastColor ColorID // Carried ball color; ColorNone picks the first palette color
}

// LevelSession owns all mutable state of one level.
type LevelSession struct {
	Level    int
	Ball     Ball
	Chunks   *ChunkRegistry
	Base     core.Box
	TierGap  float64
	Tiers    int
	Rotation float64

	Score    int
	Combo    *ComboTracker
	Terminal Terminal
	Ticks    uint64

	world    Oracle
	detector *CollisionDetector
}

// NewLevelSession builds a session from a level layout. When world is nil a
// KinematicWorld is created from the settings. The base box is registered as
// a static body and the ball as a dynamic sphere.
func NewLevelSession(layout Layout, params Params, settings Settings, world World) *LevelSession {
	if world == nil {
		world = NewKinematicWorld(settings.Gravity, settings.FixedStep)
	}
	world.AddStaticBox(layout.Base)

	color := params.LastColor
	if color == ColorNone || color == ColorDestroyTint {
		color = palette[0]
	}
	ball := Ball{
		Body:     world.AddSphere(settings.BallStart, settings.BallRadius, core.Vec3{}),
		Position: settings.BallStart,
		Color:    color,
		Radius:   settings.BallRadius,
	}

	return &LevelSession{
		Level:    params.Level,
		Ball:     ball,
		Chunks:   NewChunkRegistry(layout.Chunks),
		Base:     layout.Base,
		TierGap:  layout.TierGap,
		Tiers:    layout.Tiers,
		Combo:    NewComboTracker(layout.TierGap, topHeight(layout), settings.ComboCues),
		world:    world,
		detector: NewCollisionDetector(),
	}
}

// topHeight is the height of the highest tier, where the first combo starts counting.
func topHeight(layout Layout) float64 {
	if len(layout.Chunks) == 0 {
		return 0
	}
	top := layout.Chunks[0].Box.Center().Y
	for _, d := range layout.Chunks[1:] {
		top = max(top, d.Box.Center().Y)
	}
	return top
}

// Rotate turns the chunk group about the shaft axis by delta radians.
func (s *LevelSession) Rotate(delta float64) {
	s.Rotation = core.WrapAngle(s.Rotation + delta)
}

// Done reports whether the level reached a terminal state.
func (s *LevelSession) Done() bool {
	return s.Terminal != Running
}

// Detector exposes the session's overlap tracker.
func (s *LevelSession) Detector() *CollisionDetector {
	return s.detector
}

// syncBall reads the ball body back from the physics world.
func (s *LevelSession) syncBall() {
	s.Ball.Position = s.world.Transform(s.Ball.Body).Position
	s.Ball.Velocity = s.world.LinearVelocity(s.Ball.Body)
}

func (s *LevelSession) setBallVelocity(v core.Vec3) {
	s.world.SetLinearVelocity(s.Ball.Body, v)
	s.Ball.Velocity = v
}

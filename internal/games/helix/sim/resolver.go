package sim

import "github.com/vovakirdan/helix-drop/internal/core"

// Terminal is the end state of a level.
type Terminal int

const (
	Running Terminal = iota
	GameOver
	GameWin
)

func (t Terminal) String() string {
	switch t {
	case GameOver:
		return "game-over"
	case GameWin:
		return "game-win"
	default:
		return "running"
	}
}

// ResolverConfig holds the bounce rules.
type ResolverConfig struct {
	BounceVelocity        float64 // Upward speed after a normal bounce
	HighVelocityBounce    float64 // Upward speed after punching through a destroy chunk
	HighVelocityThreshold float64 // Downward speed at which destroy chunks break
	GameOverNudge         float64 // Upward speed left on the ball at game over
}

// Outcome is the decision for one collision. It carries no side effects;
// the stepper applies it to the session.
type Outcome struct {
	Velocity    core.Vec3
	Color       ColorID // New ball color, ColorNone keeps the current one
	Bounce      core.BounceKind
	HasBounce   bool
	Finalize    bool    // Convert the live combo into score
	ResetAt     float64 // Combo baseline after finalize
	Break       bool    // Move the chunk to Breaking
	AddModifier bool    // Raise the score modifier by one
	Terminal    Terminal
}

// CollisionResolver applies chunk rules to collisions.
type CollisionResolver struct {
	cfg ResolverConfig
}

// NewCollisionResolver creates a resolver for the given rules.
func NewCollisionResolver(cfg ResolverConfig) CollisionResolver {
	return CollisionResolver{cfg: cfg}
}

// Resolve decides what a ball/chunk collision does.
func (r CollisionResolver) Resolve(c *Chunk, ball *Ball) Outcome {
	bounce := core.V3(0, r.cfg.BounceVelocity, 0)
	switch c.Kind.Tag() {
	case KindDestroy:
		if ball.Velocity.Y <= -r.cfg.HighVelocityThreshold {
			return Outcome{
				Velocity:  core.V3(0, r.cfg.HighVelocityBounce, 0),
				Bounce:    core.BounceHighVelocity,
				HasBounce: true,
				Break:     true,
			}
		}
		return Outcome{
			Velocity: core.V3(0, r.cfg.GameOverNudge, 0),
			Color:    ColorDestroyTint,
			Finalize: true,
			ResetAt:  c.Height(),
			Terminal: GameOver,
		}
	case KindDoubleCombo:
		return Outcome{
			Velocity:    bounce,
			Bounce:      core.BounceDoubleCombo,
			HasBounce:   true,
			Break:       true,
			AddModifier: true,
		}
	default:
		if c.Kind.Color() == ball.Color {
			return Outcome{
				Velocity:  bounce,
				Bounce:    core.BounceSameColor,
				HasBounce: true,
			}
		}
		return Outcome{
			Velocity:  bounce,
			Color:     c.Kind.Color(),
			Bounce:    core.BounceColorChange,
			HasBounce: true,
			Finalize:  true,
			ResetAt:   c.Height(),
			Break:     true,
		}
	}
}

// ResolveBase decides what reaching the base volume does.
func (r CollisionResolver) ResolveBase(base core.Box, ball *Ball) Outcome {
	return Outcome{
		Velocity: ball.Velocity,
		Finalize: true,
		ResetAt:  base.Center().Y,
		Terminal: GameWin,
	}
}

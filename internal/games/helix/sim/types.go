// Package sim is the per-tick gameplay simulation for helix-drop: ball
// physics stepping, ball/chunk collision detection, collision resolution,
// combo scoring and the chunk break lifecycle.
//
// The package is single-threaded by contract. A LevelSession must only be
// touched from the goroutine that ticks it.
package sim

import (
	"strings"

	"github.com/vovakirdan/helix-drop/internal/core"
)

// ColorID identifies a palette color for chunks and the ball.
type ColorID int

const (
	ColorNone ColorID = iota
	ColorRed
	ColorBlue
	ColorAmber
	ColorPurple
	ColorDestroyTint // Ball tint after hitting a destroy chunk
)

// palette lists the regular chunk colors in selection order.
var palette = []ColorID{ColorRed, ColorBlue, ColorAmber, ColorPurple}

// Palette returns the first n regular colors (all of them if n is out of range).
func Palette(n int) []ColorID {
	if n <= 0 || n > len(palette) {
		n = len(palette)
	}
	out := make([]ColorID, n)
	copy(out, palette[:n])
	return out
}

// String returns the lowercase color name.
func (c ColorID) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorAmber:
		return "amber"
	case ColorPurple:
		return "purple"
	case ColorDestroyTint:
		return "black"
	default:
		return "none"
	}
}

// ParseColor converts a color name into a regular palette color.
// The destroy tint is not accepted since it never carries over.
func ParseColor(name string) (ColorID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range palette {
		if c.String() == name {
			return c, true
		}
	}
	return ColorNone, false
}

// KindTag discriminates the ChunkKind variants.
type KindTag int

const (
	KindRegular KindTag = iota
	KindDestroy
	KindDoubleCombo
)

// ChunkKind is the tagged variant Regular(color) | Destroy | DoubleCombo.
// The zero value is not a valid kind; build one with Regular, Destroy or DoubleCombo.
type ChunkKind struct {
	tag   KindTag
	color ColorID
}

// Regular builds a regular palette chunk kind.
func Regular(c ColorID) ChunkKind {
	return ChunkKind{tag: KindRegular, color: c}
}

// Destroy builds the run-ending chunk kind.
func Destroy() ChunkKind {
	return ChunkKind{tag: KindDestroy}
}

// DoubleCombo builds the score-modifier chunk kind.
func DoubleCombo() ChunkKind {
	return ChunkKind{tag: KindDoubleCombo}
}

// Tag returns the variant discriminator.
func (k ChunkKind) Tag() KindTag {
	return k.tag
}

// Color returns the palette color of a Regular kind and ColorNone otherwise.
func (k ChunkKind) Color() ColorID {
	if k.tag != KindRegular {
		return ColorNone
	}
	return k.color
}

func (k ChunkKind) String() string {
	switch k.tag {
	case KindDestroy:
		return "destroy"
	case KindDoubleCombo:
		return "double-combo"
	default:
		return "regular(" + k.color.String() + ")"
	}
}

// Lifecycle is the state of a chunk. Transitions only move forward:
// Active -> Breaking -> Removed.
type Lifecycle int

const (
	Active Lifecycle = iota
	Breaking
	Removed
)

func (l Lifecycle) String() string {
	switch l {
	case Active:
		return "active"
	case Breaking:
		return "breaking"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// ChunkID indexes a chunk inside its registry.
type ChunkID int

// Chunk is one pie-slice segment of a platform tier.
type Chunk struct {
	ID    ChunkID
	Tier  int
	Angle float64 // Slot angle around the shaft axis, before group rotation
	Kind  ChunkKind

	// LocalBox is the collision box in shaft-group space.
	LocalBox core.Box
	// Bounds is LocalBox transformed by the current group rotation.
	Bounds core.Box

	State   Lifecycle
	Opacity float64
	Drift   core.Vec3 // Cosmetic offset applied while breaking
}

// Height returns the vertical center of the chunk.
func (c *Chunk) Height() float64 {
	return c.LocalBox.Center().Y
}

// ChunkDesc is one chunk produced by a level builder.
type ChunkDesc struct {
	Tier  int
	Angle float64
	Kind  ChunkKind
	Box   core.Box
}

// Layout is the complete level builder output consumed at level start.
type Layout struct {
	Chunks  []ChunkDesc
	Base    core.Box
	Tiers   int
	TierGap float64
}

// Ball is the player-controlled falling body.
type Ball struct {
	Body     BodyHandle
	Position core.Vec3
	Velocity core.Vec3
	Color    ColorID
	Radius   float64
}

// Bounds returns the ball's bounding sphere at its current position.
func (b *Ball) Bounds() core.Sphere {
	return core.Sphere{Center: b.Position, Radius: b.Radius}
}

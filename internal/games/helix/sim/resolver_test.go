package sim

import (
	"testing"

	"github.com/vovakirdan/helix-drop/internal/core"
)

func testResolver() CollisionResolver {
	return NewCollisionResolver(DefaultSettings().Resolver)
}

func newChunk(kind ChunkKind, y float64) *Chunk {
	r := NewChunkRegistry([]ChunkDesc{chunkAt(0, y, kind)})
	return r.Get(0)
}

func TestResolveColorMatch(t *testing.T) {
	ball := &Ball{Color: ColorRed, Velocity: core.V3(0, -8, 0)}
	out := testResolver().Resolve(newChunk(Regular(ColorRed), 0), ball)

	if out.Break || out.Finalize || out.Color != ColorNone || out.Terminal != Running {
		t.Errorf("same color should only bounce, got %+v", out)
	}
	if out.Velocity.Y != 12 || out.Bounce != core.BounceSameColor {
		t.Errorf("expected standard bounce, got %+v", out)
	}
}

func TestResolveColorMismatch(t *testing.T) {
	ball := &Ball{Color: ColorRed, Velocity: core.V3(0, -8, 0)}
	out := testResolver().Resolve(newChunk(Regular(ColorBlue), -10), ball)

	if !out.Break || !out.Finalize || out.ResetAt != -10 {
		t.Errorf("mismatch should break and finalize at chunk height, got %+v", out)
	}
	if out.Color != ColorBlue || out.Bounce != core.BounceColorChange {
		t.Errorf("mismatch should take the chunk color, got %+v", out)
	}
}

func TestResolveDoubleCombo(t *testing.T) {
	ball := &Ball{Color: ColorRed, Velocity: core.V3(0, -8, 0)}
	out := testResolver().Resolve(newChunk(DoubleCombo(), 0), ball)

	if !out.AddModifier || !out.Break || out.Finalize || out.Color != ColorNone {
		t.Errorf("double combo should break and raise modifier only, got %+v", out)
	}
}

func TestResolveDestroyThreshold(t *testing.T) {
	tests := []struct {
		name     string
		vy       float64
		gameOver bool
	}{
		{"slow", -10, true},
		{"just under threshold", -39.99, true},
		{"at threshold", -40, false},
		{"fast", -55, false},
		{"rising", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := &Ball{Color: ColorRed, Velocity: core.V3(0, tt.vy, 0)}
			out := testResolver().Resolve(newChunk(Destroy(), 0), ball)

			if got := out.Terminal == GameOver; got != tt.gameOver {
				t.Fatalf("game over = %v, expected %v", got, tt.gameOver)
			}
			if tt.gameOver {
				if out.Break || !out.Finalize || out.Color != ColorDestroyTint || out.Velocity.Y != 2 {
					t.Errorf("game over outcome = %+v", out)
				}
			} else {
				if !out.Break || out.Finalize || out.Bounce != core.BounceHighVelocity {
					t.Errorf("punch through outcome = %+v", out)
				}
			}
		})
	}
}

func TestResolveBase(t *testing.T) {
	base := core.BoxAround(core.V3(0, -100, 0), core.V3(10, 1, 10))
	out := testResolver().ResolveBase(base, &Ball{})

	if out.Terminal != GameWin || !out.Finalize || out.ResetAt != -100 {
		t.Errorf("base outcome = %+v", out)
	}
}

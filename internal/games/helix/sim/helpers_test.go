package sim

import (
	"math"

	"github.com/vovakirdan/helix-drop/internal/core"
)

// scriptedWorld is a physics oracle whose bodies only move when a test
// places them.
type scriptedWorld struct {
	pos   []core.Vec3
	vel   []core.Vec3
	steps int
}

func (w *scriptedWorld) StepSimulation(float64, int) { w.steps++ }

func (w *scriptedWorld) Transform(h BodyHandle) Transform {
	return Transform{Position: w.pos[h]}
}

func (w *scriptedWorld) LinearVelocity(h BodyHandle) core.Vec3 { return w.vel[h] }

func (w *scriptedWorld) SetLinearVelocity(h BodyHandle, v core.Vec3) { w.vel[h] = v }

func (w *scriptedWorld) AddSphere(pos core.Vec3, _ float64, vel core.Vec3) BodyHandle {
	w.pos = append(w.pos, pos)
	w.vel = append(w.vel, vel)
	return BodyHandle(len(w.pos) - 1)
}

func (w *scriptedWorld) AddStaticBox(box core.Box) BodyHandle {
	return w.AddSphere(box.Center(), 0, core.Vec3{})
}

func (w *scriptedWorld) place(h BodyHandle, pos, vel core.Vec3) {
	w.pos[h] = pos
	w.vel[h] = vel
}

// chunkAt builds a unit chunk on the ball's side of the shaft (angle 0).
func chunkAt(tier int, y float64, kind ChunkKind) ChunkDesc {
	return ChunkDesc{
		Tier: tier,
		Kind: kind,
		Box:  core.BoxAround(core.V3(0, y, 5), core.V3(1, 1, 1)),
	}
}

// farChunk builds a chunk on the opposite side of the shaft.
func farChunk(tier int, y float64, kind ChunkKind) ChunkDesc {
	return ChunkDesc{
		Tier:  tier,
		Angle: math.Pi,
		Kind:  kind,
		Box:   core.BoxAround(core.V3(0, y, -5), core.V3(1, 1, 1)),
	}
}

func testLayout(gap float64, chunks ...ChunkDesc) Layout {
	return Layout{
		Chunks:  chunks,
		Base:    core.BoxAround(core.V3(0, -100, 0), core.V3(10, 1, 10)),
		Tiers:   len(chunks),
		TierGap: gap,
	}
}

func newScripted(layout Layout, color ColorID) (*LevelSession, *SimulationStepper, *scriptedWorld) {
	w := &scriptedWorld{}
	settings := DefaultSettings()
	s := NewLevelSession(layout, Params{Level: 1, LastColor: color}, settings, w)
	return s, NewSimulationStepper(settings, FixedClock(1.0/60.0)), w
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func findEvent[T Event](events []Event) (T, bool) {
	for _, e := range events {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

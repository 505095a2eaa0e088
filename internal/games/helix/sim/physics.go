package sim

import "github.com/vovakirdan/helix-drop/internal/core"

// BodyHandle identifies a rigid body inside a physics world.
type BodyHandle int

// Transform is a body's world placement.
type Transform struct {
	Position core.Vec3
	Yaw      float64
}

// Oracle is the narrow physics surface the simulation drives each tick.
// Integration of gravity and motion is the oracle's business.
type Oracle interface {
	StepSimulation(dt float64, maxSubSteps int)
	Transform(h BodyHandle) Transform
	LinearVelocity(h BodyHandle) core.Vec3
	SetLinearVelocity(h BodyHandle, v core.Vec3)
}

// World is an Oracle that can also create bodies at level setup.
type World interface {
	Oracle
	AddSphere(pos core.Vec3, radius float64, vel core.Vec3) BodyHandle
	AddStaticBox(box core.Box) BodyHandle
}

type kinematicBody struct {
	pos     core.Vec3
	vel     core.Vec3
	radius  float64
	box     core.Box
	dynamic bool
}

// KinematicWorld is a deterministic fixed-step integrator used as the
// default physics world. Dynamic spheres fall under gravity and come to
// rest on top of static boxes; nothing else collides physically.
type KinematicWorld struct {
	gravity   float64
	fixedStep float64
	localTime float64
	bodies    []kinematicBody
}

// NewKinematicWorld creates a world with downward gravity (units/s^2) and
// the given internal fixed step in seconds.
func NewKinematicWorld(gravity, fixedStep float64) *KinematicWorld {
	if fixedStep <= 0 {
		fixedStep = 1.0 / 60.0
	}
	return &KinematicWorld{
		gravity:   gravity,
		fixedStep: fixedStep,
	}
}

// AddSphere registers a dynamic sphere.
func (w *KinematicWorld) AddSphere(pos core.Vec3, radius float64, vel core.Vec3) BodyHandle {
	w.bodies = append(w.bodies, kinematicBody{pos: pos, vel: vel, radius: radius, dynamic: true})
	return BodyHandle(len(w.bodies) - 1)
}

// AddStaticBox registers an immovable box.
func (w *KinematicWorld) AddStaticBox(box core.Box) BodyHandle {
	w.bodies = append(w.bodies, kinematicBody{pos: box.Center(), box: box})
	return BodyHandle(len(w.bodies) - 1)
}

// StepSimulation advances time by dt, running whole fixed steps only.
// Leftover time carries to the next call. At most maxSubSteps steps run;
// time beyond that is dropped.
func (w *KinematicWorld) StepSimulation(dt float64, maxSubSteps int) {
	if dt <= 0 {
		return
	}
	w.localTime += dt
	steps := int(w.localTime / w.fixedStep)
	w.localTime -= float64(steps) * w.fixedStep
	if maxSubSteps > 0 && steps > maxSubSteps {
		steps = maxSubSteps
	}
	for range steps {
		w.step()
	}
}

func (w *KinematicWorld) step() {
	h := w.fixedStep
	for i := range w.bodies {
		b := &w.bodies[i]
		if !b.dynamic {
			continue
		}
		b.vel.Y -= w.gravity * h
		b.pos = b.pos.Add(b.vel.Scale(h))
		w.restOnStatics(b)
	}
}

// restOnStatics stops a falling sphere on the top face of any static box it sinks into.
func (w *KinematicWorld) restOnStatics(b *kinematicBody) {
	for i := range w.bodies {
		s := &w.bodies[i]
		if s.dynamic {
			continue
		}
		sphere := core.Sphere{Center: b.pos, Radius: b.radius}
		if !sphere.IntersectsBox(s.box) || b.vel.Y > 0 {
			continue
		}
		if b.pos.Y >= s.box.Center().Y {
			b.pos.Y = s.box.Max.Y + b.radius
			b.vel.Y = 0
		}
	}
}

// Transform returns the current placement of a body.
func (w *KinematicWorld) Transform(h BodyHandle) Transform {
	if !w.valid(h) {
		return Transform{}
	}
	return Transform{Position: w.bodies[h].pos}
}

// LinearVelocity returns the current velocity of a body.
func (w *KinematicWorld) LinearVelocity(h BodyHandle) core.Vec3 {
	if !w.valid(h) {
		return core.Vec3{}
	}
	return w.bodies[h].vel
}

// SetLinearVelocity overwrites a dynamic body's velocity.
func (w *KinematicWorld) SetLinearVelocity(h BodyHandle, v core.Vec3) {
	if !w.valid(h) || !w.bodies[h].dynamic {
		return
	}
	w.bodies[h].vel = v
}

func (w *KinematicWorld) valid(h BodyHandle) bool {
	return h >= 0 && int(h) < len(w.bodies)
}

var _ World = (*KinematicWorld)(nil)

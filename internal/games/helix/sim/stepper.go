package sim

// TickResult reports what one tick did.
type TickResult struct {
	Tick     uint64
	Events   []Event
	Resolved int // Collisions resolved this tick, 0 or 1 (plus a base hit)
	Terminal Terminal
}

// SimulationStepper runs the per-tick pipeline over a LevelSession:
// physics, bounds refresh, detection, resolution, combo, break animation.
type SimulationStepper struct {
	clock       Clock
	resolver    CollisionResolver
	animator    BreakAnimator
	timeScale   float64
	maxSubSteps int
}

// NewSimulationStepper creates a stepper. A nil clock ticks at 1/60 s.
func NewSimulationStepper(settings Settings, clock Clock) *SimulationStepper {
	if clock == nil {
		clock = FixedClock(1.0 / 60.0)
	}
	scale := settings.TimeScale
	if scale <= 0 {
		scale = 1
	}
	return &SimulationStepper{
		clock:       clock,
		resolver:    NewCollisionResolver(settings.Resolver),
		animator:    BreakAnimator{DecayRate: settings.DecayRate, Drift: settings.Drift},
		timeScale:   scale,
		maxSubSteps: settings.MaxSubSteps,
	}
}

// Tick advances the session by the clock's delta.
func (st *SimulationStepper) Tick(s *LevelSession) TickResult {
	return st.Advance(s, st.clock.Delta())
}

// Advance advances the session by dt seconds.
//
// Once the session is terminal, physics, collisions and combo tracking are
// skipped; breaking chunks keep fading until removed.
func (st *SimulationStepper) Advance(s *LevelSession, dt float64) TickResult {
	res := TickResult{Tick: s.Ticks}
	s.Ticks++

	if s.Terminal == Running {
		s.world.StepSimulation(dt*st.timeScale, st.maxSubSteps)
		s.syncBall()
		s.Chunks.RefreshBounds(s.Rotation)

		ball := s.Ball.Bounds()
		if hit := s.detector.Scan(ball, s.Chunks.ActiveChunks()); hit != nil {
			st.apply(s, st.resolver.Resolve(hit, &s.Ball), hit, &res)
		}
		if s.Terminal == Running && s.detector.HitsBase(ball, s.Base) {
			st.apply(s, st.resolver.ResolveBase(s.Base, &s.Ball), nil, &res)
		}

		if s.Terminal == Running {
			if combo, cue, ok := s.Combo.Update(s.Ball.Position.Y); ok {
				res.Events = append(res.Events, ComboChanged{Combo: combo, Cue: cue})
			}
		}
	}

	for _, id := range st.animator.Advance(s.Chunks, dt) {
		res.Events = append(res.Events, ChunkRemoved{Chunk: id})
	}

	res.Terminal = s.Terminal
	return res
}

func (st *SimulationStepper) apply(s *LevelSession, out Outcome, c *Chunk, res *TickResult) {
	res.Resolved++
	s.setBallVelocity(out.Velocity)

	if out.Finalize {
		delta := s.Combo.Finalize(s.Ball.Position.Y, out.ResetAt)
		s.Score += delta
		res.Events = append(res.Events, ScoreFinalized{Delta: delta, Total: s.Score, Height: out.ResetAt})
	}
	if out.AddModifier {
		res.Events = append(res.Events, ModifierChanged{Modifier: s.Combo.IncrementModifier()})
	}
	if out.Color != ColorNone && out.Color != s.Ball.Color {
		res.Events = append(res.Events, ColorChanged{From: s.Ball.Color, To: out.Color})
		s.Ball.Color = out.Color
	}
	if c != nil && out.Break && s.Chunks.MarkBreaking(c.ID) {
		s.detector.Forget(c.ID)
		res.Events = append(res.Events, ChunkBreaking{Chunk: c.ID})
	}
	if out.HasBounce {
		id := ChunkID(-1)
		if c != nil {
			id = c.ID
		}
		res.Events = append(res.Events, Bounced{Chunk: id, Kind: out.Bounce})
	}
	if out.Terminal != Running && s.Terminal == Running {
		s.Terminal = out.Terminal
		res.Events = append(res.Events, LevelEnded{Result: out.Terminal, Score: s.Score})
	}
}

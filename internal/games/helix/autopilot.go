package helix

import (
	"math"

	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/games/helix/sim"
)

// slotCount is the number of chunk directions around a tier.
const slotCount = 8

// Steer returns the rotation delta, at most speed radians in either
// direction, that brings the most favorable slot of the next tier under
// the ball: a gap, then a double-combo chunk, then a chunk of the ball's
// color, then any other color. Destroy chunks are avoided. While the ball
// is passing through a tier the shaft is held still.
func Steer(s *sim.LevelSession, speed float64) float64 {
	if s == nil || s.Done() || speed <= 0 {
		return 0
	}
	ball := s.Ball
	tier, ok := nextTier(s)
	if !ok {
		return 0
	}

	ballAngle := math.Atan2(ball.Position.X, ball.Position.Z)
	best, bestRank, bestDist := 0.0, -1, math.Inf(1)
	for k := range slotCount {
		slot := float64(k) * 2 * math.Pi / slotCount
		rank := rankSlot(tier, slot, ball.Color)
		target := core.WrapAngle(ballAngle - slot)
		dist := math.Abs(core.WrapAngle(target - s.Rotation))
		if rank > bestRank || (rank == bestRank && dist < bestDist) {
			best, bestRank, bestDist = target, rank, dist
		}
	}

	return core.ClampF(core.WrapAngle(best-s.Rotation), -speed, speed)
}

// nextTier returns the active chunks of the highest tier fully below the
// ball. It reports false while the ball overlaps a tier vertically or when
// no tier is left.
func nextTier(s *sim.LevelSession) ([]*sim.Chunk, bool) {
	bottom := s.Ball.Position.Y - s.Ball.Radius
	top := s.Ball.Position.Y + s.Ball.Radius

	tier := -1
	height := math.Inf(-1)
	for _, c := range s.Chunks.ActiveChunks() {
		box := c.LocalBox
		if box.Max.Y >= bottom && box.Min.Y <= top {
			return nil, false
		}
		if box.Max.Y < bottom && c.Height() > height {
			tier, height = c.Tier, c.Height()
		}
	}
	if tier < 0 {
		return nil, false
	}

	var out []*sim.Chunk
	for _, c := range s.Chunks.ActiveChunks() {
		if c.Tier == tier {
			out = append(out, c)
		}
	}
	return out, true
}

// rankSlot scores the chunk occupying slot in a tier; higher is better.
func rankSlot(tier []*sim.Chunk, slot float64, ball sim.ColorID) int {
	for _, c := range tier {
		if math.Abs(core.WrapAngle(c.Angle-slot)) > 1e-6 {
			continue
		}
		switch c.Kind.Tag() {
		case sim.KindDestroy:
			return 0
		case sim.KindDoubleCombo:
			return 3
		default:
			if c.Kind.Color() == ball {
				return 2
			}
			return 1
		}
	}
	return 4
}

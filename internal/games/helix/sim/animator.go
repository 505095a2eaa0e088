package sim

import "github.com/vovakirdan/helix-drop/internal/core"

// BreakAnimator fades Breaking chunks out and drifts them while they fade.
type BreakAnimator struct {
	DecayRate float64   // Opacity lost per second
	Drift     core.Vec3 // Cosmetic drift per second
}

// Advance decays every Breaking chunk by dt seconds and returns the IDs of
// chunks that reached zero opacity and were removed.
func (a BreakAnimator) Advance(r *ChunkRegistry, dt float64) []ChunkID {
	if dt <= 0 {
		return nil
	}
	breaking := r.BreakingChunks()
	if len(breaking) == 0 {
		return nil
	}
	// Fade mutates the breaking list.
	ids := make([]ChunkID, len(breaking))
	for i, c := range breaking {
		ids[i] = c.ID
	}

	var removed []ChunkID
	for _, id := range ids {
		c := r.Get(id)
		c.Drift = c.Drift.Add(a.Drift.Scale(dt))
		if r.Fade(id, dt*a.DecayRate) {
			removed = append(removed, id)
		}
	}
	return removed
}

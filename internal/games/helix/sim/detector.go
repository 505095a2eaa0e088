package sim

import "github.com/vovakirdan/helix-drop/internal/core"

// CollisionDetector finds the chunk the ball newly touched this tick.
//
// It tracks overlap per chunk and only reports a chunk on the tick its
// overlap begins. A chunk must stop overlapping (or leave the Active set)
// before it can be reported again.
type CollisionDetector struct {
	overlapping map[ChunkID]bool
}

// NewCollisionDetector creates a detector with no tracked overlaps.
func NewCollisionDetector() *CollisionDetector {
	return &CollisionDetector{overlapping: make(map[ChunkID]bool)}
}

// Scan tests the ball against the Active chunks in order and returns the
// first chunk whose overlap started this tick, or nil.
// Overlap state of every scanned chunk is updated even after the first hit,
// so a chunk entered on the same tick as the reported one will not be
// reported later while it keeps overlapping.
func (d *CollisionDetector) Scan(ball core.Sphere, active []*Chunk) *Chunk {
	var hit *Chunk
	for _, c := range active {
		if c.State != Active {
			continue
		}
		touching := ball.IntersectsBox(c.Bounds)
		was := d.overlapping[c.ID]
		switch {
		case touching && !was:
			d.overlapping[c.ID] = true
			if hit == nil {
				hit = c
			}
		case !touching && was:
			delete(d.overlapping, c.ID)
		}
	}
	return hit
}

// HitsBase reports whether the ball touches the base volume.
func (d *CollisionDetector) HitsBase(ball core.Sphere, base core.Box) bool {
	return ball.IntersectsBox(base)
}

// Overlapping reports whether a chunk is currently tracked as overlapping.
func (d *CollisionDetector) Overlapping(id ChunkID) bool {
	return d.overlapping[id]
}

// Forget drops tracking for a chunk that left the Active set.
func (d *CollisionDetector) Forget(id ChunkID) {
	delete(d.overlapping, id)
}

// Reset clears all overlap tracking.
func (d *CollisionDetector) Reset() {
	clear(d.overlapping)
}

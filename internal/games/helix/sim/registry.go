package sim

// ChunkRegistry owns every chunk of a level and its lifecycle.
// Chunk IDs are dense indexes in creation order.
type ChunkRegistry struct {
	chunks   []*Chunk
	active   []*Chunk
	breaking []*Chunk
	removed  int
}

// NewChunkRegistry populates a registry from builder output. All chunks start Active.
func NewChunkRegistry(descs []ChunkDesc) *ChunkRegistry {
	r := &ChunkRegistry{
		chunks: make([]*Chunk, 0, len(descs)),
		active: make([]*Chunk, 0, len(descs)),
	}
	for i, d := range descs {
		c := &Chunk{
			ID:       ChunkID(i),
			Tier:     d.Tier,
			Angle:    d.Angle,
			Kind:     d.Kind,
			LocalBox: d.Box,
			Bounds:   d.Box,
			State:    Active,
			Opacity:  1,
		}
		r.chunks = append(r.chunks, c)
		r.active = append(r.active, c)
	}
	return r
}

// Get returns a chunk by ID, or nil.
func (r *ChunkRegistry) Get(id ChunkID) *Chunk {
	if id < 0 || int(id) >= len(r.chunks) {
		return nil
	}
	return r.chunks[id]
}

// All returns every chunk in creation order, including removed ones.
func (r *ChunkRegistry) All() []*Chunk {
	return r.chunks
}

// ActiveChunks returns Active chunks in creation order.
// The slice is owned by the registry and must not be modified.
func (r *ChunkRegistry) ActiveChunks() []*Chunk {
	return r.active
}

// BreakingChunks returns Breaking chunks in the order they started breaking.
// The slice is owned by the registry and must not be modified.
func (r *ChunkRegistry) BreakingChunks() []*Chunk {
	return r.breaking
}

// MarkBreaking moves an Active chunk to Breaking with full opacity.
// It reports false if the chunk was not Active.
func (r *ChunkRegistry) MarkBreaking(id ChunkID) bool {
	c := r.Get(id)
	if c == nil || c.State != Active {
		return false
	}
	r.active = removeChunk(r.active, c)
	c.State = Breaking
	c.Opacity = 1
	r.breaking = append(r.breaking, c)
	return true
}

// Fade lowers a Breaking chunk's opacity by amount and removes it once the
// opacity reaches zero. It reports whether the chunk was removed by this call.
func (r *ChunkRegistry) Fade(id ChunkID, amount float64) bool {
	c := r.Get(id)
	if c == nil || c.State != Breaking {
		return false
	}
	c.Opacity -= amount
	if c.Opacity > 0 {
		return false
	}
	c.Opacity = 0
	c.State = Removed
	r.breaking = removeChunk(r.breaking, c)
	r.removed++
	return true
}

// RefreshBounds recomputes the world box of every non-removed chunk for the
// given group rotation about the shaft axis.
func (r *ChunkRegistry) RefreshBounds(rotation float64) {
	for _, c := range r.active {
		c.Bounds = c.LocalBox.RotatedY(rotation)
	}
	for _, c := range r.breaking {
		c.Bounds = c.LocalBox.RotatedY(rotation)
	}
}

// Counts returns the number of chunks in each lifecycle state.
func (r *ChunkRegistry) Counts() (active, breaking, removed int) {
	return len(r.active), len(r.breaking), r.removed
}

// Len returns the total number of chunks ever registered.
func (r *ChunkRegistry) Len() int {
	return len(r.chunks)
}

func removeChunk(list []*Chunk, c *Chunk) []*Chunk {
	for i, x := range list {
		if x == c {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}

package sim

import "testing"

func TestRegistryStartsActive(t *testing.T) {
	r := NewChunkRegistry([]ChunkDesc{
		chunkAt(0, 0, Regular(ColorRed)),
		chunkAt(1, -12, Regular(ColorBlue)),
		chunkAt(2, -24, Destroy()),
	})

	active := r.ActiveChunks()
	if len(active) != 3 {
		t.Fatalf("expected 3 active chunks, got %d", len(active))
	}
	for i, c := range active {
		if c.ID != ChunkID(i) {
			t.Errorf("active[%d].ID = %d, expected creation order", i, c.ID)
		}
		if c.State != Active || c.Opacity != 1 {
			t.Errorf("chunk %d should start Active at full opacity", i)
		}
	}
}

func TestRegistryMarkBreakingKeepsOrder(t *testing.T) {
	r := NewChunkRegistry([]ChunkDesc{
		chunkAt(0, 0, Regular(ColorRed)),
		chunkAt(1, -12, Regular(ColorBlue)),
		chunkAt(2, -24, Regular(ColorAmber)),
	})

	if !r.MarkBreaking(1) {
		t.Fatal("MarkBreaking on an active chunk should succeed")
	}
	if r.MarkBreaking(1) {
		t.Error("MarkBreaking twice should fail")
	}

	active := r.ActiveChunks()
	if len(active) != 2 || active[0].ID != 0 || active[1].ID != 2 {
		t.Errorf("active order after break = %v", ids(active))
	}
	if got := r.BreakingChunks(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("breaking = %v, expected [1]", ids(got))
	}
}

func TestRegistryFadeRemovesOnce(t *testing.T) {
	r := NewChunkRegistry([]ChunkDesc{chunkAt(0, 0, Regular(ColorRed))})

	if r.Fade(0, 0.5) {
		t.Error("Fade should not act on Active chunks")
	}
	r.MarkBreaking(0)

	if r.Fade(0, 0.6) {
		t.Error("chunk should survive a partial fade")
	}
	if !r.Fade(0, 0.6) {
		t.Error("chunk should be removed once opacity reaches zero")
	}

	c := r.Get(0)
	if c.State != Removed || c.Opacity != 0 {
		t.Errorf("expected Removed at zero opacity, got %v %.2f", c.State, c.Opacity)
	}
	if r.Fade(0, 1) || r.MarkBreaking(0) {
		t.Error("removed chunks must never change state again")
	}

	active, breaking, removed := r.Counts()
	if active != 0 || breaking != 0 || removed != 1 {
		t.Errorf("Counts() = %d, %d, %d", active, breaking, removed)
	}
}

func TestRegistryRefreshBounds(t *testing.T) {
	r := NewChunkRegistry([]ChunkDesc{farChunk(0, 0, Regular(ColorRed))})

	r.RefreshBounds(3.141592653589793)
	c := r.Get(0).Bounds.Center()
	if c.Z < 4.99 || c.Z > 5.01 {
		t.Errorf("half turn should bring the far chunk to z=5, got %+v", c)
	}
}

func TestRegistryGetOutOfRange(t *testing.T) {
	r := NewChunkRegistry(nil)
	if r.Get(0) != nil || r.Get(-1) != nil {
		t.Error("Get out of range should return nil")
	}
}

func ids(cs []*Chunk) []ChunkID {
	out := make([]ChunkID, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

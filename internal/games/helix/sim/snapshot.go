package sim

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// ChunkSnapshot is the lifecycle state of one chunk.
type ChunkSnapshot struct {
	ID      int     `msgpack:"id"`
	State   int     `msgpack:"state"`
	Opacity float64 `msgpack:"opacity"`
}

// Snapshot is the complete observable state of a session.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64  `msgpack:"tick"`
	Level    int     `msgpack:"level"`
	Rotation float64 `msgpack:"rotation"`

	BallPosition [3]float64 `msgpack:"ball_pos"`
	BallVelocity [3]float64 `msgpack:"ball_vel"`
	BallColor    int        `msgpack:"ball_color"`

	Score    int     `msgpack:"score"`
	Combo    int     `msgpack:"combo"`
	Modifier int     `msgpack:"modifier"`
	Baseline float64 `msgpack:"baseline"`
	Terminal int     `msgpack:"terminal"`

	Chunks []ChunkSnapshot `msgpack:"chunks"`
}

// Snapshot captures the session state.
func (s *LevelSession) Snapshot() Snapshot {
	all := s.Chunks.All()
	chunks := make([]ChunkSnapshot, len(all))
	for i, c := range all {
		chunks[i] = ChunkSnapshot{ID: int(c.ID), State: int(c.State), Opacity: c.Opacity}
	}
	p, v := s.Ball.Position, s.Ball.Velocity
	return Snapshot{
		Tick:         s.Ticks,
		Level:        s.Level,
		Rotation:     s.Rotation,
		BallPosition: [3]float64{p.X, p.Y, p.Z},
		BallVelocity: [3]float64{v.X, v.Y, v.Z},
		BallColor:    int(s.Ball.Color),
		Score:        s.Score,
		Combo:        s.Combo.Combo(),
		Modifier:     s.Combo.Modifier(),
		Baseline:     s.Combo.Baseline(),
		Terminal:     int(s.Terminal),
		Chunks:       chunks,
	}
}

// Encode serializes the snapshot with MessagePack.
func (snap *Snapshot) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("sim: cannot encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("sim: cannot decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	b, err := snap.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

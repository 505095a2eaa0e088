package sim

import "github.com/vovakirdan/helix-drop/internal/core"

// Event is something that happened during a tick.
type Event interface {
	simEvent()
}

// ComboChanged is emitted when the live combo rises to a positive value.
type ComboChanged struct {
	Combo int
	Cue   int
}

// Bounced is emitted when a collision bounced the ball.
type Bounced struct {
	Chunk ChunkID
	Kind  core.BounceKind
}

// ColorChanged is emitted when the ball took a new color.
type ColorChanged struct {
	From, To ColorID
}

// ModifierChanged is emitted when a double-combo chunk raised the multiplier.
type ModifierChanged struct {
	Modifier int
}

// ScoreFinalized is emitted when a combo was converted into score.
type ScoreFinalized struct {
	Delta  int
	Total  int
	Height float64
}

// ChunkBreaking is emitted when a chunk starts breaking.
type ChunkBreaking struct {
	Chunk ChunkID
}

// ChunkRemoved is emitted when a breaking chunk finished fading.
type ChunkRemoved struct {
	Chunk ChunkID
}

// LevelEnded is emitted once, on the tick the level reached a terminal state.
type LevelEnded struct {
	Result Terminal
	Score  int
}

func (ComboChanged) simEvent()    {}
func (Bounced) simEvent()         {}
func (ColorChanged) simEvent()    {}
func (ModifierChanged) simEvent() {}
func (ScoreFinalized) simEvent()  {}
func (ChunkBreaking) simEvent()   {}
func (ChunkRemoved) simEvent()    {}
func (LevelEnded) simEvent()      {}

// Dispatch forwards the sound-relevant events to an audio sink.
func Dispatch(events []Event, sink core.AudioSink) {
	if sink == nil {
		return
	}
	for _, ev := range events {
		switch e := ev.(type) {
		case ComboChanged:
			sink.ComboSound(e.Cue)
		case Bounced:
			sink.BounceCue(e.Kind)
		case LevelEnded:
			if e.Result == GameWin {
				sink.GameWinCue()
			} else {
				sink.GameOverCue()
			}
		}
	}
}

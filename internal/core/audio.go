package core

// BounceKind classifies a resolved ball bounce for sound selection.
type BounceKind int

const (
	BounceSameColor    BounceKind = iota // Ball matched the chunk color
	BounceColorChange                    // Ball took the chunk's color
	BounceDoubleCombo                    // Ball hit a modifier chunk
	BounceHighVelocity                   // Ball punched through a destroy chunk
)

// String returns a short name for the bounce kind.
func (k BounceKind) String() string {
	switch k {
	case BounceSameColor:
		return "same-color"
	case BounceColorChange:
		return "color-change"
	case BounceDoubleCombo:
		return "double-combo"
	case BounceHighVelocity:
		return "high-velocity"
	default:
		return "unknown"
	}
}

// AudioSink receives fire-and-forget sound cues from a game.
// Implementations must never block the tick loop.
type AudioSink interface {
	ComboSound(index int)
	BounceCue(kind BounceKind)
	GameOverCue()
	GameWinCue()
}

// SilentAudio is an AudioSink that drops every cue.
type SilentAudio struct{}

func (SilentAudio) ComboSound(int)       {}
func (SilentAudio) BounceCue(BounceKind) {}
func (SilentAudio) GameOverCue()         {}
func (SilentAudio) GameWinCue()          {}

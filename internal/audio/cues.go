package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/helix-drop/internal/core"
)

// Cue lengths.
const (
	comboDuration  = 140 * time.Millisecond
	bounceDuration = 70 * time.Millisecond
	noteDuration   = 120 * time.Millisecond
	release        = 40 * time.Millisecond
)

// ComboCue builds the sound for combo index i. Each step climbs one semitone.
func ComboCue(base float64, i int, rate beep.SampleRate) beep.Streamer {
	f := semitone(base, max(i, 0))
	return beep.Mix(
		withVolume(NewTone(f, comboDuration, release, WaveSine, rate), 0.7),
		withVolume(NewTone(2*f, comboDuration, release, WaveSine, rate), 0.2),
	)
}

// BounceCue builds the sound for a bounce kind.
func BounceCue(base float64, kind core.BounceKind, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case core.BounceColorChange:
		return beep.Seq(
			NewTone(base/2, bounceDuration, release/2, WaveTriangle, rate),
			NewTone(semitone(base/2, 7), bounceDuration, release/2, WaveTriangle, rate),
		)
	case core.BounceDoubleCombo:
		return beep.Seq(
			NewTone(semitone(base, 12), bounceDuration, release/2, WaveSine, rate),
			NewTone(semitone(base, 19), bounceDuration, release/2, WaveSine, rate),
		)
	case core.BounceHighVelocity:
		return withVolume(NewTone(base/4, 2*bounceDuration, release, WaveSquare, rate), 0.5)
	default:
		return NewTone(base/2, bounceDuration, release/2, WaveTriangle, rate)
	}
}

// GameOverCue builds a falling three-note phrase.
func GameOverCue(base float64, rate beep.SampleRate) beep.Streamer {
	return phrase(base/2, []int{0, -3, -7}, WaveSquare, rate)
}

// GameWinCue builds a rising arpeggio.
func GameWinCue(base float64, rate beep.SampleRate) beep.Streamer {
	return phrase(base, []int{0, 4, 7, 12}, WaveSine, rate)
}

func phrase(base float64, steps []int, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(steps))
	for i, n := range steps {
		notes[i] = NewTone(semitone(base, n), noteDuration, release, wave, rate)
	}
	return withVolume(beep.Seq(notes...), 0.6)
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	wave     WaveType
	rate     beep.SampleRate
	position int
	duration int
	release  int
}

// NewTone creates a tone that fades out linearly over its last release span.
func NewTone(freq float64, duration, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		wave:     wave,
		rate:     rate,
		duration: rate.N(duration),
		release:  rate.N(release),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		if remaining := o.duration - o.position; o.release > 0 && remaining < o.release {
			val *= float64(remaining) / float64(o.release)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// withVolume scales a streamer by a linear gain.
// math.Log2(0) is -Inf, so zero gain is handled as silence.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// semitone returns base raised by n equal-tempered semitones.
func semitone(base float64, n int) float64 {
	return base * math.Pow(2, float64(n)/12)
}

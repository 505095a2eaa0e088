package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 1000 {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestToneLengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		n, peak := drain(t, NewTone(440, 100*time.Millisecond, 20*time.Millisecond, wave, testRate))
		if n != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, expected %d", wave, n, testRate.N(100*time.Millisecond))
		}
		if peak > 1 || peak == 0 {
			t.Errorf("wave %d: peak %v out of range", wave, peak)
		}
	}
}

func TestCuesTerminate(t *testing.T) {
	cues := map[string]beep.Streamer{
		"combo":    ComboCue(392, 5, testRate),
		"bounce":   BounceCue(392, core.BounceSameColor, testRate),
		"change":   BounceCue(392, core.BounceColorChange, testRate),
		"double":   BounceCue(392, core.BounceDoubleCombo, testRate),
		"punch":    BounceCue(392, core.BounceHighVelocity, testRate),
		"gameover": GameOverCue(392, testRate),
		"win":      GameWinCue(392, testRate),
	}
	for name, s := range cues {
		if n, _ := drain(t, s); n == 0 {
			t.Errorf("%s cue produced no samples", name)
		}
	}
}

func TestSemitone(t *testing.T) {
	if got := semitone(440, 12); math.Abs(got-880) > 1e-9 {
		t.Errorf("octave = %v, expected 880", got)
	}
	if semitone(440, 1) <= 440 {
		t.Error("semitone up should raise pitch")
	}
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer(config.AudioConfig{ComboCues: 3})

	// Not initialized: every cue is dropped without touching the speaker.
	p.ComboSound(10)
	p.BounceCue(core.BounceDoubleCombo)
	p.GameOverCue()
	p.GameWinCue()
	p.Close()
}

func TestOpenDisabled(t *testing.T) {
	sink, closeFn, err := Open(config.AudioConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := sink.(core.SilentAudio); !ok {
		t.Errorf("disabled audio should return a silent sink, got %T", sink)
	}
	closeFn()
}

package sim

import "math"

// ComboCount returns the live combo for a ball height measured against the
// last reset height: max(0, 1 + floor((lastReset - height) / tierGap)).
func ComboCount(ballHeight, lastResetHeight, tierGap float64) int {
	if tierGap <= 0 {
		return 0
	}
	n := 1 + int(math.Floor((lastResetHeight-ballHeight)/tierGap))
	return max(n, 0)
}

// ComboTracker keeps the score modifier, the combo baseline height and the
// previous combo value used for change detection.
type ComboTracker struct {
	tierGap  float64
	baseline float64
	combo    int
	modifier int
	cues     int
}

// NewComboTracker starts a tracker with its baseline at startHeight.
// cues is the number of available combo sounds.
func NewComboTracker(tierGap, startHeight float64, cues int) *ComboTracker {
	return &ComboTracker{
		tierGap:  tierGap,
		baseline: startHeight,
		modifier: 1,
		cues:     cues,
	}
}

// Update recomputes the combo for the current ball height.
// When the combo changed to a positive value it returns the sound cue
// index to play and ok=true; the index is clamped to the last cue.
// Calling Update again with the same height never yields a cue.
func (t *ComboTracker) Update(ballHeight float64) (combo, cue int, ok bool) {
	combo = ComboCount(ballHeight, t.baseline, t.tierGap)
	if combo == t.combo {
		return combo, 0, false
	}
	t.combo = combo
	if combo <= 0 || t.cues <= 0 {
		return combo, 0, false
	}
	return combo, min(combo-1, t.cues-1), true
}

// Finalize converts the combo at ballHeight into a score delta
// (combo * modifier), resets the modifier to 1 and moves the baseline to
// resetHeight.
func (t *ComboTracker) Finalize(ballHeight, resetHeight float64) int {
	delta := ComboCount(ballHeight, t.baseline, t.tierGap) * t.modifier
	t.modifier = 1
	t.baseline = resetHeight
	return delta
}

// IncrementModifier raises the score multiplier by one and returns it.
func (t *ComboTracker) IncrementModifier() int {
	t.modifier++
	return t.modifier
}

// Combo returns the combo computed by the last Update.
func (t *ComboTracker) Combo() int { return t.combo }

// Modifier returns the current score multiplier.
func (t *ComboTracker) Modifier() int { return t.modifier }

// Baseline returns the height the combo last restarted from.
func (t *ComboTracker) Baseline() float64 { return t.baseline }

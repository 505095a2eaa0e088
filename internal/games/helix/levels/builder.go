// Package levels generates helix-drop shaft layouts: platform tiers made of
// pie-slice chunks around the shaft, with random gaps, palette colors and
// special chunks placed outside the protected top tiers.
package levels

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/games/helix/sim"
)

// Slots is the number of chunk positions around one tier.
const Slots = 8

// StartSlot is the slot directly under the ball's starting position.
// It is never removed from the top tier.
const StartSlot = 6

// anchors are the (x, z) chunk centers of a tier in ring order.
var anchors = [Slots][2]float64{
	{5, 0}, {5, -5}, {0, -5}, {-5, -5},
	{-5, 0}, {-5, 5}, {0, 5}, {5, 5},
}

// SlotAngle returns the angle of a slot around the shaft axis, measured so
// that the ball side (positive Z) is zero.
func SlotAngle(slot int) float64 {
	a := anchors[slot%Slots]
	return math.Atan2(a[0], a[1])
}

// Params controls layout generation for one level.
type Params struct {
	Tiers   int
	TierGap float64

	DestroyChunks        int
	DoubleComboChunks    int
	DestroySafeTiers     int // Tiers from the top that never hold a destroy chunk
	DoubleComboSafeTiers int // Tiers from the top that never hold a double-combo chunk

	MinGaps, MaxGaps int // Slots removed from every tier
	PaletteSize      int

	ChunkHalfExtent float64
	BaseHalfExtents core.Vec3
}

// DefaultParams returns the level 1 layout parameters.
func DefaultParams() Params {
	return Params{
		Tiers:                20,
		TierGap:              12,
		DestroyChunks:        2,
		DoubleComboChunks:    4,
		DestroySafeTiers:     3,
		DoubleComboSafeTiers: 5,
		MinGaps:              3,
		MaxGaps:              6,
		PaletteSize:          3,
		ChunkHalfExtent:      1,
		BaseHalfExtents:      core.V3(10, 1, 10),
	}
}

// Errors returned by Validate and Check.
var (
	ErrNoTiers      = errors.New("levels: at least one tier is required")
	ErrBadGap       = errors.New("levels: tier gap must be positive")
	ErrBadGapRange  = errors.New("levels: gap range must satisfy 0 <= min <= max <= 6")
	ErrBadPalette   = errors.New("levels: palette size out of range")
	ErrBadChunkSize = errors.New("levels: chunk half extent must be positive")
)

// Validate reports whether the parameters can produce a layout.
func (p Params) Validate() error {
	switch {
	case p.Tiers <= 0:
		return ErrNoTiers
	case p.TierGap <= 0:
		return ErrBadGap
	case p.MinGaps < 0 || p.MinGaps > p.MaxGaps || p.MaxGaps > Slots-2:
		return ErrBadGapRange
	case p.PaletteSize <= 0 || p.PaletteSize > len(sim.Palette(0)):
		return ErrBadPalette
	case p.ChunkHalfExtent <= 0:
		return ErrBadChunkSize
	}
	return nil
}

// TierHeight returns the vertical center of a tier.
func (p Params) TierHeight(tier int) float64 {
	return -float64(tier) * p.TierGap
}

// Build generates a layout from a seed. The same parameters and seed
// always produce the same layout.
func Build(p Params, seed int64) (sim.Layout, error) {
	if err := p.Validate(); err != nil {
		return sim.Layout{}, err
	}

	rng := NewRNG(seed)
	destroy := pickTiers(rng, p.DestroyChunks, p.DestroySafeTiers, p.Tiers)
	double := pickTiers(rng, p.DoubleComboChunks, p.DoubleComboSafeTiers, p.Tiers)
	palette := sim.Palette(p.PaletteSize)

	var chunks []sim.ChunkDesc
	for tier := range p.Tiers {
		slots := openSlots(rng, p, tier)

		kinds := make([]sim.ChunkKind, 0, len(slots))
		if destroy[tier] {
			kinds = append(kinds, sim.Destroy())
		}
		if double[tier] {
			kinds = append(kinds, sim.DoubleCombo())
		}
		for len(kinds) < len(slots) {
			kinds = append(kinds, sim.Regular(palette[rng.Intn(len(palette))]))
		}
		rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

		y := p.TierHeight(tier)
		h := p.ChunkHalfExtent
		for i, slot := range slots {
			a := anchors[slot]
			chunks = append(chunks, sim.ChunkDesc{
				Tier:  tier,
				Angle: SlotAngle(slot),
				Kind:  kinds[i],
				Box:   core.BoxAround(core.V3(a[0], y, a[1]), core.V3(h, h, h)),
			})
		}
	}

	return sim.Layout{
		Chunks:  chunks,
		Base:    core.BoxAround(core.V3(0, p.TierHeight(p.Tiers), 0), p.BaseHalfExtents),
		Tiers:   p.Tiers,
		TierGap: p.TierGap,
	}, nil
}

// openSlots removes a random number of gaps from a full ring and returns
// the remaining slot indexes in ring order.
func openSlots(rng *RNG, p Params, tier int) []int {
	slots := make([]int, Slots)
	for i := range slots {
		slots[i] = i
	}
	for gaps := rng.Range(p.MinGaps, p.MaxGaps); gaps > 0; {
		i := rng.Intn(len(slots))
		if tier == 0 && slots[i] == StartSlot {
			continue
		}
		slots = append(slots[:i], slots[i+1:]...)
		gaps--
	}
	return slots
}

// pickTiers chooses up to n distinct tiers in [safe, tiers).
func pickTiers(rng *RNG, n, safe, tiers int) map[int]bool {
	picked := make(map[int]bool, n)
	var pool []int
	for t := max(safe, 0); t < tiers; t++ {
		pool = append(pool, t)
	}
	n = min(n, len(pool))
	for i := range n {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		picked[pool[i]] = true
	}
	return picked
}

// Check verifies the placement guarantees of a layout: special chunks stay
// out of the protected tiers, each tier holds at most one of each special,
// tier sizes respect the gap range and the start slot is solid.
func Check(layout sim.Layout, p Params) error {
	perTier := make([]int, layout.Tiers)
	destroy := make([]int, layout.Tiers)
	double := make([]int, layout.Tiers)
	startSolid := false

	for _, c := range layout.Chunks {
		if c.Tier < 0 || c.Tier >= layout.Tiers {
			return fmt.Errorf("levels: chunk tier %d outside [0, %d)", c.Tier, layout.Tiers)
		}
		perTier[c.Tier]++
		switch c.Kind.Tag() {
		case sim.KindDestroy:
			if c.Tier < p.DestroySafeTiers {
				return fmt.Errorf("levels: destroy chunk in protected tier %d", c.Tier)
			}
			destroy[c.Tier]++
		case sim.KindDoubleCombo:
			if c.Tier < p.DoubleComboSafeTiers {
				return fmt.Errorf("levels: double-combo chunk in protected tier %d", c.Tier)
			}
			double[c.Tier]++
		}
		if c.Tier == 0 && math.Abs(c.Angle-SlotAngle(StartSlot)) < 1e-9 {
			startSolid = true
		}
	}

	for t := range layout.Tiers {
		if n := perTier[t]; n < Slots-p.MaxGaps || n > Slots-p.MinGaps {
			return fmt.Errorf("levels: tier %d has %d chunks", t, n)
		}
		if destroy[t] > 1 || double[t] > 1 {
			return fmt.Errorf("levels: tier %d repeats a special chunk", t)
		}
	}
	if !startSolid {
		return errors.New("levels: no chunk under the starting ball")
	}
	return nil
}

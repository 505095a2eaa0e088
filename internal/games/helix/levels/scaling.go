package levels

// Scaling grows layout difficulty with the level number.
type Scaling struct {
	Enabled             bool
	TiersPerLevel       int
	MaxTiers            int // 0 means unbounded
	DestroyPerLevel     int
	DoubleComboBase     int
	DoubleComboPerLevel int
}

// ForLevel returns the parameters for a level. Level 1 and below use the
// base tier count; special chunk counts follow the scaling formulas and are
// later clamped by Build to the eligible tiers.
func ForLevel(base Params, s Scaling, level int) Params {
	if !s.Enabled {
		return base
	}
	level = max(level, 1)

	p := base
	p.Tiers = base.Tiers + (level-1)*s.TiersPerLevel
	if s.MaxTiers > 0 {
		p.Tiers = min(p.Tiers, s.MaxTiers)
	}
	p.DestroyChunks = s.DestroyPerLevel * level
	p.DoubleComboChunks = s.DoubleComboBase + s.DoubleComboPerLevel*level
	return p
}

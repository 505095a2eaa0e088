package helix

import (
	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/games/helix/levels"
	"github.com/vovakirdan/helix-drop/internal/games/helix/sim"
)

// SimSettings converts the physics, animation and audio sections of a config
// into simulation settings.
func SimSettings(cfg config.HelixConfig) sim.Settings {
	s := sim.DefaultSettings()
	p := cfg.Physics

	if p.Gravity > 0 {
		s.Gravity = p.Gravity
	}
	if p.FixedStep > 0 {
		s.FixedStep = p.FixedStep
	}
	if p.TimeScale > 0 {
		s.TimeScale = p.TimeScale
	}
	if p.MaxSubSteps > 0 {
		s.MaxSubSteps = p.MaxSubSteps
	}
	if p.BallRadius > 0 {
		s.BallRadius = p.BallRadius
	}
	s.BallStart = core.V3(0, p.BallStartHeight, p.BallStartDistance)

	s.Resolver = sim.ResolverConfig{
		BounceVelocity:        p.BounceVelocity,
		HighVelocityBounce:    p.HighVelocityBounce,
		HighVelocityThreshold: p.HighVelocityThreshold,
		GameOverNudge:         p.GameOverNudge,
	}

	if cfg.Animation.DecayRate > 0 {
		s.DecayRate = cfg.Animation.DecayRate
	}
	s.Drift = core.V3(cfg.Animation.DriftX, cfg.Animation.DriftY, 0)

	if cfg.Audio.ComboCues > 0 {
		s.ComboCues = cfg.Audio.ComboCues
	}
	return s
}

// LayoutParams converts the shaft and spawn sections into level 1 builder
// parameters.
func LayoutParams(cfg config.HelixConfig) levels.Params {
	p := levels.DefaultParams()
	sh, sp := cfg.Shaft, cfg.Spawn

	p.Tiers = sh.Tiers
	p.TierGap = sh.TierGap
	p.ChunkHalfExtent = sh.ChunkHalfExtent
	p.PaletteSize = sh.PaletteSize
	p.BaseHalfExtents = core.V3(sh.BaseHalfWidth, sh.BaseHalfHeight, sh.BaseHalfWidth)

	p.MinGaps = sp.MinGaps
	p.MaxGaps = sp.MaxGaps
	p.DestroyChunks = sp.DestroyChunks
	p.DoubleComboChunks = sp.DoubleComboChunks
	p.DestroySafeTiers = sp.DestroySafeTiers
	p.DoubleComboSafeTiers = sp.DoubleComboSafeTiers
	return p
}

// LevelScaling converts the difficulty section into builder scaling.
func LevelScaling(cfg config.HelixConfig) levels.Scaling {
	sc := cfg.Difficulty.Scaling
	return levels.Scaling{
		Enabled:             cfg.Difficulty.Enabled,
		TiersPerLevel:       sc.TiersPerLevel,
		MaxTiers:            sc.MaxTiers,
		DestroyPerLevel:     sc.DestroyPerLevel,
		DoubleComboBase:     sc.DoubleComboBase,
		DoubleComboPerLevel: sc.DoubleComboPerLevel,
	}
}

// LevelSeed derives the layout seed of a level from the run seed.
func LevelSeed(seed int64, level int) int64 {
	return seed + int64(level)*7919
}

// NewSession builds the layout for a level and starts a session on it.
func NewSession(cfg config.HelixConfig, seed int64, params sim.Params) (*sim.LevelSession, error) {
	lp := levels.ForLevel(LayoutParams(cfg), LevelScaling(cfg), params.Level)
	layout, err := levels.Build(lp, LevelSeed(seed, params.Level))
	if err != nil {
		return nil, err
	}
	return sim.NewLevelSession(layout, params, SimSettings(cfg), nil), nil
}

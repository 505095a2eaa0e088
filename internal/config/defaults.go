package config

import (
	_ "embed"
)

//go:embed defaults/helix.yaml
var defaultHelixYAML []byte

// DefaultHelixConfig returns the default helix configuration.
// It mirrors defaults/helix.yaml.
func DefaultHelixConfig() HelixConfig {
	return HelixConfig{
		Physics: HelixPhysics{
			Gravity:               20,
			TimeScale:             2,
			FixedStep:             1.0 / 60.0,
			MaxSubSteps:           10,
			BallRadius:            1,
			BallStartHeight:       10,
			BallStartDistance:     5,
			BounceVelocity:        12,
			HighVelocityBounce:    12,
			HighVelocityThreshold: 40,
			GameOverNudge:         2,
		},
		Shaft: HelixShaft{
			Tiers:           20,
			TierGap:         12,
			ChunkHalfExtent: 1,
			BaseHalfWidth:   10,
			BaseHalfHeight:  1,
			PaletteSize:     3,
		},
		Spawn: HelixSpawn{
			MinGaps:              3,
			MaxGaps:              6,
			DestroyChunks:        2,
			DoubleComboChunks:    4,
			DestroySafeTiers:     3,
			DoubleComboSafeTiers: 5,
		},
		Animation: HelixAnimation{
			DecayRate: 3,
			DriftX:    0,
			DriftY:    -4,
		},
		Audio: AudioConfig{
			Enabled:       true,
			Volume:        0.4,
			SampleRate:    44100,
			ComboCues:     22,
			BaseFrequency: 392,
		},
		Input: HelixInput{
			KeyRotateSpeed:  0.12,
			DragSensitivity: 0.08,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Scaling: LevelScaling{
				TiersPerLevel:       10,
				MaxTiers:            120,
				DestroyPerLevel:     2,
				DoubleComboBase:     3,
				DoubleComboPerLevel: 1,
			},
		},
	}
}

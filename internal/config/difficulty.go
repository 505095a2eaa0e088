package config

import "fmt"

// ParseDifficulty converts a preset name into a DifficultyPreset.
// An empty name selects normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ScalingForPreset returns the level scaling for a preset.
// Normal keeps the configured scaling.
func ScalingForPreset(preset DifficultyPreset, base LevelScaling) LevelScaling {
	s := base
	switch preset {
	case DifficultyEasy:
		s.TiersPerLevel = max(base.TiersPerLevel/2, 1)
		s.DestroyPerLevel = max(base.DestroyPerLevel-1, 1)
		s.DoubleComboPerLevel = base.DoubleComboPerLevel + 1
	case DifficultyHard:
		s.TiersPerLevel = base.TiersPerLevel + base.TiersPerLevel/2
		s.DestroyPerLevel = base.DestroyPerLevel + 1
		s.DoubleComboPerLevel = max(base.DoubleComboPerLevel-1, 0)
	}
	return s
}

// Package config provides YAML-based configuration loading and difficulty
// presets for helix-drop.
package config

// HelixConfig contains all configuration for the helix game.
type HelixConfig struct {
	Physics    HelixPhysics     `yaml:"physics"`
	Shaft      HelixShaft       `yaml:"shaft"`
	Spawn      HelixSpawn       `yaml:"spawn"`
	Animation  HelixAnimation   `yaml:"animation"`
	Audio      AudioConfig      `yaml:"audio"`
	Input      HelixInput       `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HelixPhysics defines ball physics and bounce rules.
type HelixPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	TimeScale   float64 `yaml:"time_scale"`
	FixedStep   float64 `yaml:"fixed_step"`
	MaxSubSteps int     `yaml:"max_sub_steps"`

	BallRadius        float64 `yaml:"ball_radius"`
	BallStartHeight   float64 `yaml:"ball_start_height"`
	BallStartDistance float64 `yaml:"ball_start_distance"` // Distance from the shaft axis

	BounceVelocity        float64 `yaml:"bounce_velocity"`
	HighVelocityBounce    float64 `yaml:"high_velocity_bounce"`
	HighVelocityThreshold float64 `yaml:"high_velocity_threshold"` // Downward speed that punches through destroy chunks
	GameOverNudge         float64 `yaml:"game_over_nudge"`
}

// HelixShaft defines shaft geometry.
type HelixShaft struct {
	Tiers           int     `yaml:"tiers"`
	TierGap         float64 `yaml:"tier_gap"`
	ChunkHalfExtent float64 `yaml:"chunk_half_extent"`
	BaseHalfWidth   float64 `yaml:"base_half_width"`
	BaseHalfHeight  float64 `yaml:"base_half_height"`
	PaletteSize     int     `yaml:"palette_size"`
}

// HelixSpawn defines gap and special chunk placement.
type HelixSpawn struct {
	MinGaps              int `yaml:"min_gaps"`
	MaxGaps              int `yaml:"max_gaps"`
	DestroyChunks        int `yaml:"destroy_chunks"`
	DoubleComboChunks    int `yaml:"double_combo_chunks"`
	DestroySafeTiers     int `yaml:"destroy_safe_tiers"`
	DoubleComboSafeTiers int `yaml:"double_combo_safe_tiers"`
}

// HelixAnimation defines the break effect.
type HelixAnimation struct {
	DecayRate float64 `yaml:"decay_rate"` // Opacity lost per second
	DriftX    float64 `yaml:"drift_x"`
	DriftY    float64 `yaml:"drift_y"`
}

// AudioConfig defines the procedural sound cues.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Volume        float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate    int     `yaml:"sample_rate"`
	ComboCues     int     `yaml:"combo_cues"`
	BaseFrequency float64 `yaml:"base_frequency"` // Pitch of the first combo cue, Hz
}

// HelixInput defines how input maps to shaft rotation.
type HelixInput struct {
	KeyRotateSpeed  float64 `yaml:"key_rotate_speed"` // Radians per tick while a key is held
	DragSensitivity float64 `yaml:"drag_sensitivity"` // Radians per dragged cell
}

// DifficultyConfig defines how levels grow harder.
type DifficultyConfig struct {
	Enabled bool         `yaml:"enabled"`
	Scaling LevelScaling `yaml:"scaling"`
}

// LevelScaling defines per-level growth of the shaft.
type LevelScaling struct {
	TiersPerLevel       int `yaml:"tiers_per_level"`
	MaxTiers            int `yaml:"max_tiers"`
	DestroyPerLevel     int `yaml:"destroy_per_level"`
	DoubleComboBase     int `yaml:"double_combo_base"`
	DoubleComboPerLevel int `yaml:"double_combo_per_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables level scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

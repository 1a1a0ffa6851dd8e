// Package config provides YAML-based game configuration loading and
// difficulty management for both variants.
package config

// FlappyConfig contains all configuration for the cell-based variant.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the vertical physics and scroll speed. Units are
// screen cells per tick.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines obstacle pair generation parameters.
type FlappyObstacles struct {
	PipeWidth     int `yaml:"pipe_width"`
	SpawnInterval int `yaml:"spawn_interval"` // Ticks between spawns
	MinGapSize    int `yaml:"min_gap_size"`
	MaxGapSize    int `yaml:"max_gap_size"`
	TopMargin     int `yaml:"top_margin"`
	BottomMargin  int `yaml:"bottom_margin"`
}

// FlappyPlayer defines the player box position and size.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PixelConfig contains all configuration for the pixel-canvas variant.
// Vertical units are canvas pixels, which are half a cell tall, so the
// vertical physics values run at twice the cell-based ones.
type PixelConfig struct {
	Physics    PixelPhysics     `yaml:"physics"`
	Obstacles  PixelObstacles   `yaml:"obstacles"`
	Player     PixelPlayer      `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PixelPhysics defines physics for the pixel-canvas variant.
type PixelPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// PixelObstacles defines obstacle pair generation for the pixel-canvas
// variant. Gap sizes and margins are in canvas pixels.
type PixelObstacles struct {
	PipeWidth     int `yaml:"pipe_width"`
	SpawnInterval int `yaml:"spawn_interval"`
	MinGapSize    int `yaml:"min_gap_size"`
	MaxGapSize    int `yaml:"max_gap_size"`
	TopMargin     int `yaml:"top_margin"`
	BottomMargin  int `yaml:"bottom_margin"`
}

// PixelPlayer defines the player box for the pixel-canvas variant.
type PixelPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig defines the optional difficulty progression system.
// With Enabled false the scroll speed and gap sizes stay constant for
// the whole run.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	GapReduction      int     `yaml:"gap_reduction"`      // Gap size reduction at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

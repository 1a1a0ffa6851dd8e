package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/pixel.yaml
var defaultPixelYAML []byte

// DefaultFlappyConfig returns the default cell-based configuration.
// Difficulty progression is off by default so the scroll speed stays
// constant; presets turn it on.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			BaseSpeed:    0.8,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:     5,
			SpawnInterval: 50,
			MinGapSize:    8,
			MaxGapSize:    12,
			TopMargin:     3,
			BottomMargin:  3,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				GapReduction:      4,
				IntervalReduction: 15,
			},
		},
	}
}

// DefaultPixelConfig returns the default pixel-canvas configuration.
// Vertical values are doubled relative to the cell-based variant since
// canvas pixels are half a cell tall.
func DefaultPixelConfig() PixelConfig {
	return PixelConfig{
		Physics: PixelPhysics{
			Gravity:      0.5,
			JumpImpulse:  -3.6,
			MaxFallSpeed: 6.0,
			BaseSpeed:    0.8,
		},
		Obstacles: PixelObstacles{
			PipeWidth:     5,
			SpawnInterval: 50,
			MinGapSize:    16,
			MaxGapSize:    24,
			TopMargin:     6,
			BottomMargin:  6,
		},
		Player: PixelPlayer{
			X:      10,
			Width:  3,
			Height: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				GapReduction:      8,
				IntervalReduction: 15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "pixel":
		return defaultPixelYAML
	default:
		return nil
	}
}

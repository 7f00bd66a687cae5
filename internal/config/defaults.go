package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultMaxScoreKey is the storage key of the persisted high score.
const DefaultMaxScoreKey = "flappy-bird.max-score"

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Timing: Timing{
			FPS:           60,
			MaxFrameDelta: 1.0,
		},
		Physics: Physics{
			Gravity:  9.8,
			Impulse:  450,
			MaxSpeed: 300,
		},
		Player: Player{
			X:      50,
			Width:  50,
			Height: 50,
		},
		Pipes: Pipes{
			Count:           10,
			UnitHeight:      60,
			Speed:           300,
			Width:           100,
			SpawnIntervalMS: 2000,
			SpawnJitterMS:   0,
		},
		Storage: Storage{
			MaxScoreKey: DefaultMaxScoreKey,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				IntervalReductionMS: 800,
				MinIntervalMS:       1000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

// Package config provides YAML-based game configuration loading,
// validation and difficulty management.
package config

import "time"

// FlappyConfig contains all configuration for the game.
// It is loaded once at startup and passed by value afterwards.
type FlappyConfig struct {
	Playfield  Playfield        `yaml:"playfield"`
	Timing     Timing           `yaml:"timing"`
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Pipes      Pipes            `yaml:"pipes"`
	Storage    Storage          `yaml:"storage"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Playfield defines the logical drawing surface in playfield units.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Timing defines the fixed simulation step.
type Timing struct {
	FPS           int     `yaml:"fps"`             // Simulation ticks per second
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Seconds of real time a single frame may bank
}

// UpdateInterval returns the fixed step size in seconds.
func (t Timing) UpdateInterval() float64 {
	return 1 / float64(t.FPS)
}

// Physics defines the player's kinematics.
type Physics struct {
	Gravity  float64 `yaml:"gravity"`   // Downward acceleration added every tick
	Impulse  float64 `yaml:"impulse"`   // Upward acceleration on a flap tick
	MaxSpeed float64 `yaml:"max_speed"` // Speed magnitude clamp
}

// Player defines the player's placement and hitbox.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Pipes defines obstacle geometry and spawning.
type Pipes struct {
	Count           int     `yaml:"count"`             // Height units the playfield is divided into
	UnitHeight      float64 `yaml:"unit_height"`       // Height of one unit
	Speed           float64 `yaml:"speed"`             // Horizontal speed, units per second
	Width           float64 `yaml:"width"`             // Pipe width
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Base delay between spawns
	SpawnJitterMS   int     `yaml:"spawn_jitter_ms"`   // Random extra delay in [0, jitter]
}

// SpawnInterval returns the base spawn delay.
func (p Pipes) SpawnInterval() time.Duration {
	return time.Duration(p.SpawnIntervalMS) * time.Millisecond
}

// Storage defines persistence parameters.
type Storage struct {
	MaxScoreKey string `yaml:"max_score_key"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReductionMS int `yaml:"interval_reduction_ms"` // Spawn interval reduction at max difficulty
	MinIntervalMS       int `yaml:"min_interval_ms"`       // Floor for the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown and empty values yield "" which means "use the config as is".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

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

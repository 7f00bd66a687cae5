package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadFlappy loads and validates the game configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Keys missing from a file keep their built-in default values.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

func load(customPath string) (FlappyConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		return cfg, "configs/flappy.yaml", nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), "built-in defaults", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded defaults", nil
}

func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// Validate reports configuration that would make the simulation meaningless.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield must have positive dimensions, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	check(c.Timing.FPS > 0, "timing.fps must be positive, got %d", c.Timing.FPS)
	check(c.Timing.MaxFrameDelta > 0, "timing.max_frame_delta must be positive, got %g", c.Timing.MaxFrameDelta)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %g", c.Physics.Gravity)
	check(c.Physics.Impulse >= 0, "physics.impulse must not be negative, got %g", c.Physics.Impulse)
	check(c.Physics.MaxSpeed > 0, "physics.max_speed must be positive, got %g", c.Physics.MaxSpeed)
	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player must have positive dimensions, got %gx%g", c.Player.Width, c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X+c.Player.Width <= c.Playfield.Width,
		"player must fit horizontally inside the playfield")
	check(c.Player.Height < c.Playfield.Height, "player must be shorter than the playfield")
	check(c.Pipes.Count >= 4, "pipes.count must be at least 4, got %d", c.Pipes.Count)
	check(c.Pipes.UnitHeight > 0, "pipes.unit_height must be positive, got %g", c.Pipes.UnitHeight)
	check(float64(c.Pipes.Count)*c.Pipes.UnitHeight == c.Playfield.Height,
		"pipes.count * pipes.unit_height (%g) must equal playfield.height (%g)",
		float64(c.Pipes.Count)*c.Pipes.UnitHeight, c.Playfield.Height)
	check(c.Pipes.Speed > 0, "pipes.speed must be positive, got %g", c.Pipes.Speed)
	check(c.Pipes.Width > 0, "pipes.width must be positive, got %g", c.Pipes.Width)
	check(c.Pipes.SpawnIntervalMS > 0, "pipes.spawn_interval_ms must be positive, got %d", c.Pipes.SpawnIntervalMS)
	check(c.Pipes.SpawnJitterMS >= 0, "pipes.spawn_jitter_ms must not be negative, got %d", c.Pipes.SpawnJitterMS)
	check(c.Storage.MaxScoreKey != "", "storage.max_score_key must not be empty")

	minInterval := c.Pipes.SpawnIntervalMS
	if c.Difficulty.Enabled {
		minInterval = c.Difficulty.Scaling.MinIntervalMS
		check(minInterval > 0, "difficulty.scaling.min_interval_ms must be positive, got %d", minInterval)
		switch c.Difficulty.Progression.Type {
		case "score", "time", "none":
		default:
			check(false, "difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type)
		}
	}
	// Only the head pipe is tested for hits, and it stays at the head until it
	// has fully left the playfield. The next pipe must not reach the player before then.
	spacing := float64(minInterval) / 1000 * c.Pipes.Speed
	reach := c.Pipes.Width + c.Player.X + c.Player.Width
	check(spacing >= reach,
		"pipes spawned %dms apart at speed %g are %g apart, would overlap the head pipe (need %g)",
		minInterval, c.Pipes.Speed, spacing, reach)

	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset and validates
// the result, since a preset can enable a difficulty block the loaded file
// never had checked.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Later pipes arrive less predictably on harder presets
	switch preset {
	case DifficultyEasy:
		cfg.Pipes.SpawnJitterMS = 0
	case DifficultyNormal:
		cfg.Pipes.SpawnJitterMS = 250
	case DifficultyHard:
		cfg.Pipes.SpawnJitterMS = 500
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return nil
}

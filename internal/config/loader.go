package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "runner.yaml"

// Load loads the runner configuration and validates it.
// Search order: customPath -> ~/.picorex/runner.yaml -> ./configs/runner.yaml -> embedded default
// Keys missing from a file keep their default values.
func Load(customPath string) (RunnerConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRunnerConfig(), err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".picorex", filename)
}

// Validate checks that the values describe a playable game.
// All problems are reported together.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0,
		"screen: size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)

	check(c.Trex.MinY < c.Trex.GroundY,
		"trex: min_y (%d) must be above ground_y (%d)", c.Trex.MinY, c.Trex.GroundY)
	check(c.Trex.JumpVelocity < 0,
		"trex: jump_velocity must be negative, got %d", c.Trex.JumpVelocity)
	check(c.Trex.Gravity > 0,
		"trex: gravity must be positive, got %d", c.Trex.Gravity)

	check(c.Obstacles.Velocity < 0,
		"obstacles: velocity must be negative, got %d", c.Obstacles.Velocity)
	check(c.Obstacles.Gap > 0,
		"obstacles: gap must be positive, got %d", c.Obstacles.Gap)
	check(c.Obstacles.Capacity >= 2,
		"obstacles: capacity must hold at least 2 obstacles, got %d", c.Obstacles.Capacity)

	check(c.Ground.StripLength > c.Screen.Width,
		"ground: strip_length (%d) must exceed screen width (%d)", c.Ground.StripLength, c.Screen.Width)

	check(c.Timing.Frame >= 0 && c.Timing.Poll >= 0 && c.Timing.GameOverHold >= 0 && c.Timing.ResetHold >= 0,
		"timing: waits must not be negative")

	check(c.Reset.HoldPolls >= 0,
		"reset: hold_polls must not be negative, got %d", c.Reset.HoldPolls)

	return errors.Join(errs...)
}

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is the fallback if the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:  128,
			Height: 64,
		},
		Trex: TrexConfig{
			X:            10,
			GroundY:      29,
			MinY:         3,
			JumpVelocity: -10,
			Gravity:      15,
		},
		Obstacles: ObstacleConfig{
			Y:        35,
			Velocity: -25,
			Gap:      100,
			Capacity: 4,
		},
		Ground: GroundConfig{
			Y:           54,
			StripLength: 1200,
		},
		Score: ScoreConfig{
			X: 60,
			Y: 5,
		},
		Timing: TimingConfig{
			Frame:        40 * time.Millisecond,
			Poll:         50 * time.Millisecond,
			GameOverHold: 500 * time.Millisecond,
			ResetHold:    500 * time.Millisecond,
		},
		Reset: ResetConfig{
			HoldPolls: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

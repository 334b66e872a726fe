// Package config provides YAML-based configuration loading for the runner
// engine and its hosts.
package config

import "time"

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Trex      TrexConfig     `yaml:"trex"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Ground    GroundConfig   `yaml:"ground"`
	Score     ScoreConfig    `yaml:"score"`
	Timing    TimingConfig   `yaml:"timing"`
	Reset     ResetConfig    `yaml:"reset"`
}

// ScreenConfig defines the display size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TrexConfig defines the character's column and jump arc.
type TrexConfig struct {
	X            int `yaml:"x"`
	GroundY      int `yaml:"ground_y"`
	MinY         int `yaml:"min_y"`
	JumpVelocity int `yaml:"jump_velocity"` // Negative, moves up
	Gravity      int `yaml:"gravity"`       // Positive, moves down
}

// ObstacleConfig defines the cactus line and the recycling queue.
type ObstacleConfig struct {
	Y        int `yaml:"y"`
	Velocity int `yaml:"velocity"` // Negative, scrolls left
	Gap      int `yaml:"gap"`      // Spawn offset past the right screen edge
	Capacity int `yaml:"capacity"`
}

// GroundConfig defines the scrolling ground strip.
type GroundConfig struct {
	Y           int `yaml:"y"`
	StripLength int `yaml:"strip_length"`
}

// ScoreConfig defines where the score board is drawn.
type ScoreConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines the waits between ticks for each phase.
type TimingConfig struct {
	Frame        time.Duration `yaml:"frame"`          // Between playing frames
	Poll         time.Duration `yaml:"poll"`           // Between reset polls while game over
	GameOverHold time.Duration `yaml:"game_over_hold"` // After the frame that ends the game
	ResetHold    time.Duration `yaml:"reset_hold"`     // After the poll that restarts the game
}

// ResetConfig defines the restart gesture.
type ResetConfig struct {
	// HoldPolls is exceeded when the input has been active on more than this
	// many consecutive polls.
	HoldPolls int `yaml:"hold_polls"`
}

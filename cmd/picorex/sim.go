package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ImplFerris/pico-rex/internal/config"
	"github.com/ImplFerris/pico-rex/internal/core"
	"github.com/ImplFerris/pico-rex/internal/games/dino"
)

var (
	flagFrames    int
	flagLookAhead int
	flagRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Run the game without a terminal UI. An autopilot presses jump when the
next cactus comes within reach. The run stops at game over or after
--frames frames, then prints the last presented frame and the score.

Examples:
  picorex sim
  picorex sim --frames 200 --seed 7
  picorex sim --look-ahead 10 --debug
  picorex sim --realtime`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 1000, "Maximum number of frames to play")
	simCmd.Flags().IntVar(&flagLookAhead, "look-ahead", -1, "Autopilot reach in pixels (-1 = obstacle speed)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Sleep between frames as the game asks")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rng, seed := newRNG()
	lookAhead := flagLookAhead
	if lookAhead < 0 {
		lookAhead = core.Abs(cfg.Obstacles.Velocity)
	}

	var clock core.Clock = core.InstantClock{}
	if flagRealtime {
		clock = core.SleepClock{}
	}

	screen := core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
	game, err := simulate(ctx, cfg, screen, rng, clock, lookAhead, flagFrames, dino.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), screen.String())
	logger.Info("simulation finished",
		"seed", seed,
		"frames", game.Frames(),
		"score", game.Score(),
		"state", game.State(),
	)
	return nil
}

// simulate plays one autopilot game until it ends or maxFrames frames ran.
func simulate(ctx context.Context, cfg config.RunnerConfig, surface core.Surface, rng core.Random,
	clock core.Clock, lookAhead, maxFrames int, opts ...dino.Option) (*dino.Game, error) {
	pilot := dino.NewAutopilot(lookAhead)
	game := dino.NewGame(cfg, surface, pilot, rng, opts...)
	pilot.Watch(game)

	for game.State() == dino.Playing && game.Frames() < maxFrames {
		if err := dino.RunFrames(ctx, game, clock, 1); err != nil {
			return game, err
		}
	}
	return game, nil
}

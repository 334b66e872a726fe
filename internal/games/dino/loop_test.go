package dino

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/ImplFerris/pico-rex/internal/config"
	"github.com/ImplFerris/pico-rex/internal/core"
)

// fakeClock records requested waits instead of sleeping.
type fakeClock struct {
	waits  []time.Duration
	err    error
	cancel context.CancelFunc
	after  int // Cancel once this many waits are recorded
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.waits = append(c.waits, d)
	if c.cancel != nil && len(c.waits) == c.after {
		c.cancel()
	}
	if c.err != nil {
		return c.err
	}
	return ctx.Err()
}

func TestRunFramesWaits(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	g, _ := newTestGame(core.Released)
	clock := &fakeClock{}

	if err := RunFrames(context.Background(), g, clock, 6); err != nil {
		t.Fatalf("RunFrames() failed: %v", err)
	}

	timing := cfg.Timing
	want := []time.Duration{timing.Frame, timing.Frame, timing.Frame, timing.GameOverHold, timing.Poll, timing.Poll}
	if !slices.Equal(clock.waits, want) {
		t.Errorf("waits = %v, expected %v", clock.waits, want)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, _ := newTestGame(core.Released)
	clock := &fakeClock{cancel: cancel, after: 2}

	err := Run(ctx, g, clock)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled", err)
	}
	if g.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", g.Frames())
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := newTestGame(core.Released)
	if err := Run(ctx, g, &fakeClock{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled", err)
	}
	if g.Frames() != 0 {
		t.Errorf("Frames() = %d, expected no ticks", g.Frames())
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("clock", func(t *testing.T) {
		g, _ := newTestGame(core.Released)
		err := RunFrames(context.Background(), g, &fakeClock{err: boom}, 10)
		if !errors.Is(err, boom) {
			t.Fatalf("RunFrames() error = %v, expected to wrap %v", err, boom)
		}
		if g.Frames() != 1 {
			t.Errorf("Frames() = %d, expected the loop to stop after 1", g.Frames())
		}
	})

	t.Run("surface", func(t *testing.T) {
		cfg := config.DefaultRunnerConfig()
		surface := &failingSurface{
			Screen: core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
			failOn: "flush",
			err:    boom,
		}
		g := NewGame(cfg, surface, core.Released, &seqRandom{})
		clock := &fakeClock{}
		err := RunFrames(context.Background(), g, clock, 10)
		if !errors.Is(err, boom) {
			t.Fatalf("RunFrames() error = %v, expected to wrap %v", err, boom)
		}
		if len(clock.waits) != 0 {
			t.Errorf("waited %v after a failed frame", clock.waits)
		}
	})
}

func TestAutopilotSurvives(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	screen := core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
	pilot := NewAutopilot(core.Abs(cfg.Obstacles.Velocity))
	g := NewGame(cfg, screen, pilot, rand.New(rand.NewSource(42)))
	pilot.Watch(g)

	for frame := 1; frame <= 2000; frame++ {
		res := mustTick(t, g)
		if res.Event != EventFrame {
			t.Fatalf("frame %d: event = %v with score %d", frame, res.Event, g.Score())
		}
	}
	if g.Score() < 400 {
		t.Errorf("Score() = %d after 2000 frames, expected at least 400", g.Score())
	}
}

func TestAutopilotIdleWhenClear(t *testing.T) {
	g, _ := newTestGame(core.Released)
	pilot := NewAutopilot(25)

	if pilot.Active() {
		t.Error("an unattached autopilot must not press")
	}
	pilot.Watch(g)
	if pilot.Active() {
		t.Error("obstacles at 128 are out of reach and must not trigger a jump")
	}

	for g.State() == Playing {
		mustTick(t, g)
	}
	if pilot.Active() {
		t.Error("the autopilot must not press while the game is over")
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() ([]ObstacleKind, uint32) {
		cfg := config.DefaultRunnerConfig()
		screen := core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
		pilot := NewAutopilot(core.Abs(cfg.Obstacles.Velocity))
		g := NewGame(cfg, screen, pilot, rand.New(rand.NewSource(3)))
		pilot.Watch(g)

		var kinds []ObstacleKind
		for range 200 {
			mustTick(t, g)
			for o := range g.Obstacles().All() {
				kinds = append(kinds, o.Kind)
			}
		}
		return kinds, g.Score()
	}

	kinds1, score1 := run()
	kinds2, score2 := run()
	if !slices.Equal(kinds1, kinds2) || score1 != score2 {
		t.Error("two runs with the same seed diverged")
	}
}

func TestAutopilotIdleWhileAirborne(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	screen := core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
	pilot := NewAutopilot(core.Abs(cfg.Obstacles.Velocity))
	g := NewGame(cfg, screen, pilot, &seqRandom{})
	pilot.Watch(g)

	for g.Frames() < 4 {
		mustTick(t, g)
	}
	// The cactus at x=28 is within reach, but the trex jumped this frame.
	if !g.Trex().Airborne() {
		t.Fatalf("trex should be airborne after frame 4, state %v", g.Trex().State())
	}
	if pilot.Active() {
		t.Error("the autopilot must not press while the trex is in the air")
	}
}

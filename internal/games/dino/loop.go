package dino

import (
	"context"
	"fmt"

	"github.com/ImplFerris/pico-rex/internal/core"
)

// Run ticks the game forever, sleeping on clock between ticks. It returns the
// first surface or clock error, or ctx.Err() once the context is done.
func Run(ctx context.Context, g *Game, clock core.Clock) error {
	return RunFrames(ctx, g, clock, -1)
}

// RunFrames is Run limited to n ticks. A negative n means no limit.
func RunFrames(ctx context.Context, g *Game, clock core.Clock, n int) error {
	for i := 0; n < 0 || i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := g.Tick()
		if err != nil {
			return err
		}

		if err := clock.Sleep(ctx, res.Wait); err != nil {
			return fmt.Errorf("dino: wait after %v: %w", res.Event, err)
		}
	}
	return nil
}

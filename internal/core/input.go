package core

import (
	"context"
	"time"
)

// Button is a single digital input, debounced by whoever provides it.
// Active is sampled once per poll.
type Button interface {
	Active() bool
}

// ButtonFunc adapts a function to the Button interface.
type ButtonFunc func() bool

// Active calls f.
func (f ButtonFunc) Active() bool {
	return f()
}

// Released is a Button that is never active.
var Released Button = ButtonFunc(func() bool { return false })

// Random is a source of unsigned 32-bit values.
// *math/rand.Rand satisfies it.
type Random interface {
	Uint32() uint32
}

// Clock suspends the caller between frames.
type Clock interface {
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// SleepClock is a Clock backed by the runtime timer.
type SleepClock struct{}

// Sleep waits for d. A non-positive d only checks ctx.
func (SleepClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InstantClock is a Clock that never waits. Headless runs use it to
// simulate as fast as possible.
type InstantClock struct{}

// Sleep only checks ctx.
func (InstantClock) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
